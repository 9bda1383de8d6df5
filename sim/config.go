package sim

// Config is the resolved numeric parameter set the simulation core
// consumes. It is immutable for the lifetime of one Simulation; loading
// and validation happen outside this package.
type Config struct {
	// Motion limits per tick.
	SpeedMin      float64
	SpeedMax      float64
	SpeedAccel    float64
	RotationAccel float64

	// Evolution.
	MutationChance    float32
	MutationMagnitude float32
	GenerationLength  int

	// World.
	Animals         int
	Foods           int
	InitialSpeed    float64
	CollisionRadius float64

	// Eye geometry.
	FovRange float64
	FovAngle float64
	Cells    int

	// Flocking weights.
	CoherenceWeight    float64
	SeparationWeight   float64
	AlignmentWeight    float64
	SeparationDistance float64
}
