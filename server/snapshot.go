package server

import "github.com/chuch3/sparrow/sim"

// Snapshot is one JSON frame of world state sent to viewers.
type Snapshot struct {
	Type       string           `json:"type"`
	Generation int              `json:"generation"`
	Age        int              `json:"age"`
	Tick       int              `json:"tick"`
	Animals    []AnimalSnapshot `json:"animals"`
	Foods      []FoodSnapshot   `json:"foods"`
}

// AnimalSnapshot carries one animal's pose in unit-square coordinates.
type AnimalSnapshot struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
	Speed    float64 `json:"speed"`
	Hunger   int     `json:"hunger"`
}

// FoodSnapshot carries one food's position.
type FoodSnapshot struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TakeSnapshot captures the simulation's current state. Call it from
// the goroutine that steps the simulation; the result is safe to hand
// to other goroutines.
func TakeSnapshot(s *sim.Simulation, tick int) Snapshot {
	world := s.World()

	animals := make([]AnimalSnapshot, len(world.Animals()))
	for i, a := range world.Animals() {
		p := a.Position()
		animals[i] = AnimalSnapshot{
			X:        p.X,
			Y:        p.Y,
			Rotation: a.Rotation(),
			Speed:    a.Speed(),
			Hunger:   a.Hunger(),
		}
	}

	foods := make([]FoodSnapshot, len(world.Foods()))
	for i, f := range world.Foods() {
		p := f.Position()
		foods[i] = FoodSnapshot{X: p.X, Y: p.Y}
	}

	return Snapshot{
		Type:       "snapshot",
		Generation: s.Generation(),
		Age:        s.Age(),
		Tick:       tick,
		Animals:    animals,
		Foods:      foods,
	}
}
