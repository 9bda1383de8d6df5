// Package sim implements the closed sensing, decision, motion,
// collision and evolution loop: animals sense food through discretized
// eyes, feedforward brains turn vision into motion deltas, flocking
// forces and collisions play out on a toroidal unit square, and a
// genetic algorithm replaces the population each generation.
package sim

import (
	"math/rand"

	"github.com/chuch3/sparrow/genetics"

	"gonum.org/v1/gonum/spatial/r2"
)

// Simulation drives the world one tick at a time and evolves the
// population whenever a generation runs out. All randomness flows
// through the *rand.Rand passed into each call, so a fixed seed
// reproduces a run exactly.
type Simulation struct {
	world      *World
	ga         *genetics.GeneticAlgorithm[animalIndividual]
	age        int
	generation int
	cfg        Config
}

// New creates a simulation with a randomized initial population.
func New(rng *rand.Rand, cfg Config) *Simulation {
	ga := genetics.New(
		genetics.RouletteWheel{},
		genetics.UniformCrossover{},
		genetics.NewGaussianMutation(cfg.MutationChance, cfg.MutationMagnitude),
		newAnimalIndividual,
	)

	return &Simulation{
		world: randomWorld(rng, cfg),
		ga:    ga,
		cfg:   cfg,
	}
}

// World exposes the live world for snapshots and rendering.
func (s *Simulation) World() *World { return s.world }

// Age returns the tick count within the current generation.
func (s *Simulation) Age() int { return s.age }

// Generation returns how many evolve cycles have completed.
func (s *Simulation) Generation() int { return s.generation }

// Config returns the simulation's resolved parameters.
func (s *Simulation) Config() Config { return s.cfg }

// Step advances one tick: movement, brains, collisions, aging. On the
// tick that ends a generation it evolves the population and returns
// that generation's statistics with ok=true.
func (s *Simulation) Step(rng *rand.Rand) (stats genetics.Statistics, ok bool) {
	s.stepMovement()
	s.stepBrains()
	s.stepCollisions(rng)
	s.age++

	if s.age > s.cfg.GenerationLength {
		return s.evolve(rng), true
	}
	return genetics.Statistics{}, false
}

// FastForward steps until the current generation ends and returns its
// statistics. A positive generation length guarantees termination.
func (s *Simulation) FastForward(rng *rand.Rand) genetics.Statistics {
	for {
		if stats, ok := s.Step(rng); ok {
			return stats
		}
	}
}

// stepMovement applies flocking forces and advances every animal along
// its heading. Forces are computed for the whole population before any
// position changes.
func (s *Simulation) stepMovement() {
	deltas := s.world.flockingDeltas(s.cfg)

	for i, a := range s.world.animals {
		velocity := r2.Add(deltas[i], a.velocity())

		// Flocking must not push an animal faster than it can swim.
		if norm := r2.Norm(velocity); norm > a.speed {
			velocity = r2.Scale(a.speed/norm, velocity)
		}

		a.position = r2.Add(a.position, velocity)
		a.position.X = wrapUnit(a.position.X)
		a.position.Y = wrapUnit(a.position.Y)
	}
}

// stepBrains runs each animal's eye and brain and applies the motion
// deltas within the configured acceleration limits.
func (s *Simulation) stepBrains() {
	for _, a := range s.world.animals {
		vision := a.eye.Vision(a.position, a.rotation, s.world.foods)
		response := a.brain.propagate(vision)

		speedDelta := clamp(float64(response[0]), -s.cfg.SpeedAccel, s.cfg.SpeedAccel)
		rotationDelta := clamp(float64(response[1]), -s.cfg.RotationAccel, s.cfg.RotationAccel)

		a.speed = clamp(a.speed+speedDelta, s.cfg.SpeedMin, s.cfg.SpeedMax)
		a.rotation = wrapAngle(a.rotation + rotationDelta)
	}
}

// stepCollisions feeds animals and respawns eaten food. The nested
// order is fixed: an animal can eat several foods in one tick, and a
// food eaten by an earlier animal has already moved by the time a
// later animal is checked against it.
func (s *Simulation) stepCollisions(rng *rand.Rand) {
	for _, a := range s.world.animals {
		for i := range s.world.foods {
			distance := r2.Norm(r2.Sub(a.position, s.world.foods[i].position))
			if distance <= s.cfg.CollisionRadius {
				a.hunger++
				s.world.foods[i].position = randomPoint(rng)
			}
		}
	}
}

// evolve closes a generation: it scores the outgoing population by
// hunger, breeds the next one, rebuilds the animals at fresh random
// poses, respawns all food, and resets the age counter.
func (s *Simulation) evolve(rng *rand.Rand) genetics.Statistics {
	s.age = 0
	s.generation++

	population := make([]animalIndividual, len(s.world.animals))
	for i, a := range s.world.animals {
		population[i] = individualFromAnimal(a)
	}

	next, stats := s.ga.Evolve(rng, population)

	for i, indiv := range next {
		s.world.animals[i] = indiv.intoAnimal(rng, s.cfg)
	}

	for i := range s.world.foods {
		s.world.foods[i].position = randomPoint(rng)
	}

	return stats
}
