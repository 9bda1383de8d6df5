package sim

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/chuch3/sparrow/genetics"

	"gonum.org/v1/gonum/spatial/r2"
)

// Animal is one agent: an eye, a brain, and motion state. Hunger counts
// the food eaten this generation and doubles as the fitness signal.
// Animals are identified by their slot in the world's animal slice.
type Animal struct {
	eye   Eye
	brain *Brain

	position r2.Vec
	rotation float64
	speed    float64
	hunger   int
}

func newAnimal(rng *rand.Rand, cfg Config, eye Eye, brain *Brain) *Animal {
	return &Animal{
		eye:      eye,
		brain:    brain,
		position: randomPoint(rng),
		rotation: wrapAngle(rng.Float64() * 2 * math.Pi),
		speed:    cfg.InitialSpeed,
	}
}

func randomAnimal(rng *rand.Rand, cfg Config) *Animal {
	eye := NewEye(cfg.FovRange, cfg.FovAngle, cfg.Cells)
	brain := randomBrain(rng, eye)
	return newAnimal(rng, cfg, eye, brain)
}

// animalFromGenome rebuilds an animal from an evolved genome with fresh
// random position and rotation. The genome comes from crossover of two
// same-topology parents, so a length mismatch is a corruption bug.
func animalFromGenome(rng *rand.Rand, cfg Config, genome genetics.Genome) *Animal {
	eye := NewEye(cfg.FovRange, cfg.FovAngle, cfg.Cells)
	brain, err := brainFromGenome(genome, eye)
	if err != nil {
		panic(fmt.Sprintf("sim: rebuilding animal: %v", err))
	}
	return newAnimal(rng, cfg, eye, brain)
}

// genome flattens the animal's brain for the genetic algorithm.
func (a *Animal) genome() genetics.Genome {
	return a.brain.Genome()
}

// Position returns the animal's location on the unit square.
func (a *Animal) Position() r2.Vec { return a.position }

// Rotation returns the animal's orientation in radians; 0 faces +Y.
func (a *Animal) Rotation() float64 { return a.rotation }

// Speed returns the animal's current scalar speed.
func (a *Animal) Speed() float64 { return a.speed }

// Hunger returns the food eaten this generation.
func (a *Animal) Hunger() int { return a.hunger }

// velocity is the animal's heading scaled by its speed.
func (a *Animal) velocity() r2.Vec {
	return heading(a.rotation, a.speed)
}
