package game

import (
	"github.com/chuch3/sparrow/config"
	"github.com/chuch3/sparrow/sim"
)

// SimConfig resolves the loaded application config into the flat
// parameter set the simulation core consumes.
func SimConfig(cfg *config.Config) sim.Config {
	return sim.Config{
		SpeedMin:      cfg.Simulation.SpeedMin,
		SpeedMax:      cfg.Simulation.SpeedMax,
		SpeedAccel:    cfg.Simulation.SpeedAccel,
		RotationAccel: cfg.Simulation.RotationAccel,

		MutationChance:    float32(cfg.Simulation.MutationChance),
		MutationMagnitude: float32(cfg.Simulation.MutationMagnitude),
		GenerationLength:  cfg.Simulation.GenerationLength,

		Animals:         cfg.World.Animals,
		Foods:           cfg.World.Foods,
		InitialSpeed:    cfg.World.InitialSpeed,
		CollisionRadius: cfg.World.CollisionRadius,

		FovRange: cfg.Eye.FovRange,
		FovAngle: cfg.Eye.FovAngle,
		Cells:    cfg.Eye.Cells,

		CoherenceWeight:    cfg.Flocking.CoherenceWeight,
		SeparationWeight:   cfg.Flocking.SeparationWeight,
		AlignmentWeight:    cfg.Flocking.AlignmentWeight,
		SeparationDistance: cfg.Flocking.SeparationDistance,
	}
}
