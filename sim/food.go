package sim

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Food is a consumable resource at a point on the unit square. Eaten
// food respawns in place at a fresh random position.
type Food struct {
	position r2.Vec
}

func randomFood(rng *rand.Rand) Food {
	return Food{position: randomPoint(rng)}
}

// Position returns the food's location.
func (f Food) Position() r2.Vec { return f.position }
