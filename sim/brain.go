package sim

import (
	"math/rand"

	"github.com/chuch3/sparrow/genetics"
	"github.com/chuch3/sparrow/neural"
)

// Brain outputs: speed delta and rotation delta.
const brainOutputs = 2

// Brain wraps the feedforward network that maps an eye's vision vector
// to motion deltas.
type Brain struct {
	net *neural.Network
}

// brainTopology derives the network shape from the eye resolution: one
// input per vision cell, a hidden layer twice that wide, two outputs.
func brainTopology(cells int) []neural.LayerTopology {
	return []neural.LayerTopology{
		{Neurons: cells},
		{Neurons: 2 * cells},
		{Neurons: brainOutputs},
	}
}

func randomBrain(rng *rand.Rand, eye Eye) *Brain {
	return &Brain{net: neural.Random(rng, brainTopology(eye.Cells()))}
}

func brainFromGenome(genome genetics.Genome, eye Eye) (*Brain, error) {
	net, err := neural.FromWeights(brainTopology(eye.Cells()), genome)
	if err != nil {
		return nil, err
	}
	return &Brain{net: net}, nil
}

// Genome flattens the brain's parameters for the genetic algorithm.
func (b *Brain) Genome() genetics.Genome {
	return genetics.Genome(b.net.Weights())
}

func (b *Brain) propagate(vision []float32) []float32 {
	return b.net.Propagate(vision)
}
