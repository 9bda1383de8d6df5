// Package neural provides the fixed-topology feedforward networks that
// act as animal brains. A network is a pure function from a sensory
// input vector to an output vector; all learning happens outside it,
// through the genetic algorithm operating on its flattened weights.
package neural

import (
	"fmt"
	"math/rand"
)

// LayerTopology is the neuron count of one layer.
type LayerTopology struct {
	Neurons int
}

// Network is an ordered stack of fully connected layers.
type Network struct {
	layers []layer
}

type layer struct {
	neurons []neuron
}

type neuron struct {
	bias    float32
	weights []float32
}

func checkTopology(topology []LayerTopology) {
	if len(topology) < 2 {
		panic("neural: topology needs at least two layers")
	}
	for _, lt := range topology {
		if lt.Neurons < 1 {
			panic("neural: layer with no neurons")
		}
	}
}

// Random creates a network with every bias and weight drawn uniformly
// from [-1, 1]. Draw order is bias first, then weights, neuron by
// neuron, layer by layer; Weights flattens in the same order.
func Random(rng *rand.Rand, topology []LayerTopology) *Network {
	checkTopology(topology)

	layers := make([]layer, len(topology)-1)
	for i := range layers {
		layers[i] = randomLayer(rng, topology[i].Neurons, topology[i+1].Neurons)
	}
	return &Network{layers: layers}
}

func randomLayer(rng *rand.Rand, inputs, outputs int) layer {
	neurons := make([]neuron, outputs)
	for i := range neurons {
		neurons[i] = randomNeuron(rng, inputs)
	}
	return layer{neurons: neurons}
}

func randomNeuron(rng *rand.Rand, inputs int) neuron {
	n := neuron{
		bias:    rng.Float32()*2 - 1,
		weights: make([]float32, inputs),
	}
	for i := range n.weights {
		n.weights[i] = rng.Float32()*2 - 1
	}
	return n
}

// FromWeights rebuilds a network from a flat weight sequence in the
// ordering produced by Weights. The sequence length must match the
// topology exactly; both underrun and leftover weights are errors.
func FromWeights(topology []LayerTopology, weights []float32) (*Network, error) {
	checkTopology(topology)

	layers := make([]layer, len(topology)-1)
	cursor := 0
	for i := range layers {
		inputs, outputs := topology[i].Neurons, topology[i+1].Neurons

		neurons := make([]neuron, outputs)
		for j := range neurons {
			need := 1 + inputs
			if cursor+need > len(weights) {
				return nil, fmt.Errorf("neural: not enough weights: have %d, need %d",
					len(weights), WeightCount(topology))
			}
			neurons[j] = neuron{
				bias:    weights[cursor],
				weights: append([]float32(nil), weights[cursor+1:cursor+need]...),
			}
			cursor += need
		}
		layers[i] = layer{neurons: neurons}
	}

	if cursor != len(weights) {
		return nil, fmt.Errorf("neural: %d weights left over after building the network",
			len(weights)-cursor)
	}
	return &Network{layers: layers}, nil
}

// WeightCount returns the flat weight length a topology requires.
func WeightCount(topology []LayerTopology) int {
	count := 0
	for i := 0; i+1 < len(topology); i++ {
		count += (1 + topology[i].Neurons) * topology[i+1].Neurons
	}
	return count
}

// Weights flattens the network back into a single gene-ordered slice.
// FromWeights(topology, net.Weights()) reproduces the network exactly.
func (n *Network) Weights() []float32 {
	out := make([]float32, 0, 64)
	for _, l := range n.layers {
		for _, nr := range l.neurons {
			out = append(out, nr.bias)
			out = append(out, nr.weights...)
		}
	}
	return out
}

// Propagate runs one forward pass. Each neuron computes the rectified
// weighted sum of its inputs plus bias. Panics if the input length does
// not match the first layer's weight count.
func (n *Network) Propagate(inputs []float32) []float32 {
	for _, l := range n.layers {
		inputs = l.propagate(inputs)
	}
	return inputs
}

func (l layer) propagate(inputs []float32) []float32 {
	outputs := make([]float32, len(l.neurons))
	for i, nr := range l.neurons {
		outputs[i] = nr.propagate(inputs)
	}
	return outputs
}

func (nr neuron) propagate(inputs []float32) float32 {
	if len(inputs) != len(nr.weights) {
		panic(fmt.Sprintf("neural: got %d inputs for %d weights", len(inputs), len(nr.weights)))
	}

	sum := nr.bias
	for i, in := range inputs {
		sum += in * nr.weights[i]
	}
	if sum < 0 {
		return 0
	}
	return sum
}
