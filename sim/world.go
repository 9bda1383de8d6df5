package sim

import (
	"math/rand"
)

// World owns the ordered animal and food collections. It is exclusively
// owned and mutated by its Simulation; callers get read access through
// the accessors.
type World struct {
	animals []*Animal
	foods   []Food
}

func randomWorld(rng *rand.Rand, cfg Config) *World {
	animals := make([]*Animal, cfg.Animals)
	for i := range animals {
		animals[i] = randomAnimal(rng, cfg)
	}
	foods := make([]Food, cfg.Foods)
	for i := range foods {
		foods[i] = randomFood(rng)
	}
	return &World{animals: animals, foods: foods}
}

// Animals returns the ordered animal list.
func (w *World) Animals() []*Animal { return w.animals }

// Foods returns the ordered food list.
func (w *World) Foods() []Food { return w.foods }
