package genetics

import (
	"math/rand"
	"testing"
)

// testIndividual carries a fixed fitness and genome for exercising the
// algorithm without the simulation on top.
type testIndividual struct {
	fitness float32
	genome  Genome
}

func (t testIndividual) Fitness() float32 { return t.fitness }
func (t testIndividual) Genome() Genome   { return t.genome }

func newTestIndividual(genome Genome) testIndividual {
	var sum float32
	for _, g := range genome {
		sum += g
	}
	return testIndividual{fitness: sum, genome: genome}
}

func TestRouletteWheelDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	fitnesses := []float32{1, 2, 3, 4}

	const draws = 10000
	histogram := make([]int, len(fitnesses))
	for i := 0; i < draws; i++ {
		histogram[RouletteWheel{}.Select(rng, fitnesses)]++
	}

	// Expected shares are fitness/10: 10%, 20%, 30%, 40%.
	for i, count := range histogram {
		want := float64(fitnesses[i]) / 10 * draws
		got := float64(count)
		if got < want*0.85 || got > want*1.15 {
			t.Errorf("index %d selected %d times, want ~%.0f", i, count, want)
		}
	}
}

func TestRouletteWheelSkipsZeroFitness(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	fitnesses := []float32{0, 5, 0}

	for i := 0; i < 100; i++ {
		if got := (RouletteWheel{}).Select(rng, fitnesses); got != 1 {
			t.Fatalf("selected index %d with zero fitness", got)
		}
	}
}

func TestRouletteWheelPanics(t *testing.T) {
	tests := []struct {
		name      string
		fitnesses []float32
	}{
		{"empty population", nil},
		{"all zero fitness", []float32{0, 0, 0}},
		{"all negative fitness", []float32{-1, -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			RouletteWheel{}.Select(rand.New(rand.NewSource(1)), tt.fitnesses)
		})
	}
}

func TestUniformCrossoverBalance(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	const length = 100
	parentA := make(Genome, length)
	parentB := make(Genome, length)
	for i := 0; i < length; i++ {
		parentA[i] = float32(i + 1)
		parentB[i] = -float32(i + 1)
	}

	child := UniformCrossover{}.Crossover(rng, parentA, parentB)

	fromA := 0
	for i, gene := range child {
		if gene == parentA[i] {
			fromA++
		}
	}

	// A fixed seed won't split exactly 50/50, but it should be close.
	if fromA < 35 || fromA > 65 {
		t.Errorf("child took %d/%d genes from parent A, want a near-even split", fromA, length)
	}
}

func TestUniformCrossoverLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on mismatched genome lengths")
		}
	}()
	UniformCrossover{}.Crossover(rand.New(rand.NewSource(1)), make(Genome, 3), make(Genome, 4))
}

func TestGaussianMutation(t *testing.T) {
	base := Genome{1, 2, 3, 4, 5}

	tests := []struct {
		name       string
		chance     float32
		magnitude  float32
		wantChange string // "none" or "all"
	}{
		{"zero chance, zero magnitude", 0, 0, "none"},
		{"zero chance, full magnitude", 0, 1, "none"},
		{"full chance, zero magnitude", 1, 0, "none"},
		{"full chance, full magnitude", 1, 1, "all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			child := base.Clone()
			NewGaussianMutation(tt.chance, tt.magnitude).Mutate(rng, child)

			changed := 0
			for i := range child {
				if child[i] != base[i] {
					changed++
				}
			}

			switch tt.wantChange {
			case "none":
				if changed != 0 {
					t.Errorf("%d genes changed, want 0", changed)
				}
			case "all":
				if changed != len(base) {
					t.Errorf("%d genes changed, want %d", changed, len(base))
				}
			}
		})
	}
}

func TestGaussianMutationChanceOutOfRange(t *testing.T) {
	for _, chance := range []float32{-0.1, 1.1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("chance %v: expected panic", chance)
				}
			}()
			NewGaussianMutation(chance, 0.5)
		}()
	}
}

func TestGaussianMutationDrawOrderIsStable(t *testing.T) {
	// The per-gene draws (sign, chance, step) are consumed whether or
	// not the gene ends up perturbed, so two runs with different chance
	// parameters leave a seeded source in the same state.
	rngA := rand.New(rand.NewSource(7))
	rngB := rand.New(rand.NewSource(7))

	childA := Genome{1, 2, 3, 4, 5, 6, 7, 8}
	childB := childA.Clone()

	NewGaussianMutation(0, 0.5).Mutate(rngA, childA)
	NewGaussianMutation(1, 0.5).Mutate(rngB, childB)

	if rngA.Int63() != rngB.Int63() {
		t.Error("mutation consumed a different number of draws depending on chance")
	}
}

func TestEvolve(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	ga := New(RouletteWheel{}, UniformCrossover{}, NewGaussianMutation(0.5, 0.5),
		func(g Genome) testIndividual { return newTestIndividual(g) })

	population := []testIndividual{
		newTestIndividual(Genome{1, 1, 1}),
		newTestIndividual(Genome{1, 2, 1}),
		newTestIndividual(Genome{1, 2, 4}),
		newTestIndividual(Genome{5, 2, 4}),
	}

	next, stats := ga.Evolve(rng, population)

	if len(next) != len(population) {
		t.Fatalf("evolve returned %d individuals, want %d", len(next), len(population))
	}
	for i, indiv := range next {
		if len(indiv.Genome()) != 3 {
			t.Errorf("child %d has genome length %d, want 3", i, len(indiv.Genome()))
		}
	}

	if stats.MinFitness != 3 || stats.MaxFitness != 11 {
		t.Errorf("stats min/max = %v/%v, want 3/11", stats.MinFitness, stats.MaxFitness)
	}
	if stats.AvgFitness < stats.MinFitness || stats.AvgFitness > stats.MaxFitness {
		t.Errorf("avg %v outside [min, max]", stats.AvgFitness)
	}
	if stats.Best != 3 {
		t.Errorf("best index = %d, want 3", stats.Best)
	}
}

func TestEvolveImprovesFitness(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	ga := New(RouletteWheel{}, UniformCrossover{}, NewGaussianMutation(0.5, 0.5),
		func(g Genome) testIndividual { return newTestIndividual(g) })

	population := []testIndividual{
		newTestIndividual(Genome{1, 1, 1}),
		newTestIndividual(Genome{1, 2, 1}),
		newTestIndividual(Genome{1, 2, 4}),
		newTestIndividual(Genome{1, 3, 4}),
	}

	first := NewStatistics([]float32{3, 4, 7, 8})
	var last Statistics
	for i := 0; i < 20; i++ {
		population, last = ga.Evolve(rng, population)
	}

	// Selection pressure plus additive mutation should push the average
	// fitness up over a couple of dozen generations.
	if last.AvgFitness <= first.AvgFitness {
		t.Errorf("average fitness did not improve: first %v, last %v",
			first.AvgFitness, last.AvgFitness)
	}
}

func TestEvolveEmptyPopulationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on empty population")
		}
	}()
	ga := New(RouletteWheel{}, UniformCrossover{}, NewGaussianMutation(0, 0),
		func(g Genome) testIndividual { return newTestIndividual(g) })
	ga.Evolve(rand.New(rand.NewSource(1)), nil)
}
