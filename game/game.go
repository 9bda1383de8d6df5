package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/chuch3/sparrow/config"
	"github.com/chuch3/sparrow/genetics"
	"github.com/chuch3/sparrow/sim"
	"github.com/chuch3/sparrow/telemetry"
)

// Options holds the run parameters that come from flags rather than
// the config file.
type Options struct {
	Seed      int64
	OutputDir string // empty disables CSV output
	LogStats  bool
}

// Game wraps a simulation with the state the viewer and the headless
// runner share: the seeded rng, tick counting, pause and speed
// controls, and telemetry.
type Game struct {
	cfg    *config.Config
	sim    *sim.Simulation
	rng    *rand.Rand
	output *telemetry.OutputManager

	tick           int
	paused         bool
	stepsPerUpdate int

	logStats bool
}

// New builds a game from the loaded config and run options.
func New(cfg *config.Config, opts Options) (*Game, error) {
	rng := rand.New(rand.NewSource(opts.Seed))

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	if err := output.WriteConfig(cfg); err != nil {
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	g := &Game{
		cfg:            cfg,
		sim:            sim.New(rng, SimConfig(cfg)),
		rng:            rng,
		output:         output,
		stepsPerUpdate: 1,
		logStats:       opts.LogStats && cfg.Telemetry.StatsLog,
	}

	slog.Info("game initialized",
		"seed", opts.Seed,
		"animals", cfg.World.Animals,
		"foods", cfg.World.Foods,
		"generation_length", cfg.Simulation.GenerationLength)

	return g, nil
}

// Sim exposes the underlying simulation for snapshots.
func (g *Game) Sim() *sim.Simulation { return g.sim }

// Tick returns the total tick count across all generations.
func (g *Game) Tick() int { return g.tick }

// Paused reports whether stepping is suspended.
func (g *Game) Paused() bool { return g.paused }

// SetPaused suspends or resumes stepping.
func (g *Game) SetPaused(p bool) { g.paused = p }

// Step advances the simulation one tick and handles the generation
// boundary when it hits one.
func (g *Game) Step() {
	stats, done := g.sim.Step(g.rng)
	g.tick++
	if done {
		g.onGeneration(stats)
	}
}

// Update runs one frame's worth of simulation, honoring pause and the
// steps-per-update multiplier. The graphical loop calls this once per
// frame after handleInput.
func (g *Game) Update() {
	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.Step()
	}
}

// FastForward skips to the end of the current generation.
func (g *Game) FastForward() {
	for {
		stats, done := g.sim.Step(g.rng)
		g.tick++
		if done {
			g.onGeneration(stats)
			return
		}
	}
}

// RunHeadless steps through the given number of generations without
// rendering, then returns the last generation's statistics.
func (g *Game) RunHeadless(generations int) genetics.Statistics {
	var last genetics.Statistics
	for g.sim.Generation() < generations {
		stats, done := g.sim.Step(g.rng)
		g.tick++
		if done {
			g.onGeneration(stats)
			last = stats
		}
	}
	return last
}

// onGeneration logs and records statistics for a finished generation.
func (g *Game) onGeneration(stats genetics.Statistics) {
	generation := g.sim.Generation()

	if g.logStats {
		slog.Info("generation complete",
			"generation", generation,
			"min_fitness", stats.MinFitness,
			"max_fitness", stats.MaxFitness,
			"avg_fitness", stats.AvgFitness,
			"std_fitness", stats.StdFitness,
			"best", stats.Best)
	}

	if err := g.output.WriteGeneration(telemetry.NewGenerationRecord(generation, g.tick, stats)); err != nil {
		slog.Error("writing generation record", "error", err)
	}
}

// Close flushes and closes telemetry output.
func (g *Game) Close() error {
	return g.output.Close()
}
