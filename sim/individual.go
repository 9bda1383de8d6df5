package sim

import (
	"math/rand"

	"github.com/chuch3/sparrow/genetics"
)

// animalIndividual is an animal reduced to what the genetic algorithm
// needs: a fitness score and a genome. Offspring produced by Evolve
// start with zero fitness and only gain a body via intoAnimal.
type animalIndividual struct {
	fitness float32
	genome  genetics.Genome
}

func individualFromAnimal(a *Animal) animalIndividual {
	return animalIndividual{
		fitness: float32(a.hunger),
		genome:  a.genome(),
	}
}

func newAnimalIndividual(genome genetics.Genome) animalIndividual {
	return animalIndividual{genome: genome}
}

func (ai animalIndividual) intoAnimal(rng *rand.Rand, cfg Config) *Animal {
	return animalFromGenome(rng, cfg, ai.genome)
}

func (ai animalIndividual) Fitness() float32        { return ai.fitness }
func (ai animalIndividual) Genome() genetics.Genome { return ai.genome }
