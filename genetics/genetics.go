// Package genetics implements the generational genetic algorithm that
// evolves brain genomes: fitness-proportionate selection, uniform
// crossover and Gaussian mutation, each behind a small interface so a
// strategy can be swapped without touching the evolve loop.
package genetics

import (
	"math/rand"
)

// Genome is a flat ordered sequence of genes. A network's parameters
// flatten into one and are rebuilt from one at every generation boundary.
type Genome []float32

// Clone returns an independent copy of the genome.
func (g Genome) Clone() Genome {
	out := make(Genome, len(g))
	copy(out, g)
	return out
}

// Individual is one member of an evolvable population.
type Individual interface {
	Fitness() float32
	Genome() Genome
}

// Selection picks one individual, by index, from a population described
// by its fitness values.
type Selection interface {
	Select(rng *rand.Rand, fitnesses []float32) int
}

// Crossover combines two parent genomes into a child genome.
type Crossover interface {
	Crossover(rng *rand.Rand, a, b Genome) Genome
}

// Mutation perturbs a child genome in place.
type Mutation interface {
	Mutate(rng *rand.Rand, child Genome)
}

// RouletteWheel selects individuals with probability proportional to
// their fitness relative to the population total.
type RouletteWheel struct{}

// Select panics if the population is empty or carries no positive
// fitness mass; both are caller bugs, not recoverable states.
func (RouletteWheel) Select(rng *rand.Rand, fitnesses []float32) int {
	if len(fitnesses) == 0 {
		panic("genetics: selection over empty population")
	}

	var total float32
	for _, f := range fitnesses {
		if f > 0 {
			total += f
		}
	}
	if total <= 0 {
		panic("genetics: selection over population with no positive fitness")
	}

	mark := rng.Float32() * total
	var acc float32
	for i, f := range fitnesses {
		if f <= 0 {
			continue
		}
		acc += f
		if mark < acc {
			return i
		}
	}
	// Float accumulation can leave mark a hair past acc; the last
	// positive-fitness slot absorbs it.
	for i := len(fitnesses) - 1; i >= 0; i-- {
		if fitnesses[i] > 0 {
			return i
		}
	}
	panic("unreachable")
}

// UniformCrossover builds a child by taking each gene from either parent
// with equal probability, one random draw per gene.
type UniformCrossover struct{}

func (UniformCrossover) Crossover(rng *rand.Rand, a, b Genome) Genome {
	if len(a) != len(b) {
		panic("genetics: crossover of genomes with different lengths")
	}

	child := make(Genome, len(a))
	for i := range child {
		if rng.Intn(2) == 0 {
			child[i] = a[i]
		} else {
			child[i] = b[i]
		}
	}
	return child
}

// GaussianMutation perturbs each gene with probability Chance by a
// uniform step of up to Magnitude in a random direction.
type GaussianMutation struct {
	chance    float32
	magnitude float32
}

// NewGaussianMutation panics if chance is outside [0, 1].
func NewGaussianMutation(chance, magnitude float32) GaussianMutation {
	if chance < 0 || chance > 1 {
		panic("genetics: mutation chance outside [0, 1]")
	}
	return GaussianMutation{chance: chance, magnitude: magnitude}
}

// Mutate consumes three draws per gene (sign, chance, step) in a fixed
// order whether or not the gene ends up perturbed, so a seeded run stays
// reproducible when the chance parameter changes.
func (m GaussianMutation) Mutate(rng *rand.Rand, child Genome) {
	for i := range child {
		sign := float32(1)
		if rng.Intn(2) == 0 {
			sign = -1
		}
		perturb := rng.Float32() < m.chance
		step := rng.Float32()
		if perturb {
			child[i] += m.magnitude * sign * step
		}
	}
}

// GeneticAlgorithm combines the three strategies with a constructor that
// turns a child genome back into a domain individual.
type GeneticAlgorithm[I Individual] struct {
	selection Selection
	crossover Crossover
	mutation  Mutation
	create    func(Genome) I
}

// New creates a genetic algorithm from its strategy parts.
func New[I Individual](s Selection, c Crossover, m Mutation, create func(Genome) I) *GeneticAlgorithm[I] {
	return &GeneticAlgorithm[I]{
		selection: s,
		crossover: c,
		mutation:  m,
		create:    create,
	}
}

// Evolve replaces a population with the same number of offspring. For
// each slot it independently selects two parents from the unmodified
// input population, crosses them, and mutates the child. Statistics are
// computed over the input population, before replacement.
func (ga *GeneticAlgorithm[I]) Evolve(rng *rand.Rand, population []I) ([]I, Statistics) {
	if len(population) == 0 {
		panic("genetics: evolve over empty population")
	}

	fitnesses := make([]float32, len(population))
	for i, indiv := range population {
		fitnesses[i] = indiv.Fitness()
	}
	stats := NewStatistics(fitnesses)

	next := make([]I, len(population))
	for i := range next {
		parentA := population[ga.selection.Select(rng, fitnesses)].Genome()
		parentB := population[ga.selection.Select(rng, fitnesses)].Genome()

		child := ga.crossover.Crossover(rng, parentA, parentB)
		ga.mutation.Mutate(rng, child)
		next[i] = ga.create(child)
	}

	return next, stats
}
