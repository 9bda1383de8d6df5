package genetics

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Statistics summarizes one generation's fitness spread, captured from
// the outgoing population immediately before replacement.
type Statistics struct {
	MinFitness float32
	MaxFitness float32
	AvgFitness float32
	StdFitness float32
	Best       int // index of the fittest individual
}

// NewStatistics panics on an empty fitness slice.
func NewStatistics(fitnesses []float32) Statistics {
	if len(fitnesses) == 0 {
		panic("genetics: statistics over empty population")
	}

	values := make([]float64, len(fitnesses))
	for i, f := range fitnesses {
		values[i] = float64(f)
	}

	min, max := fitnesses[0], fitnesses[0]
	best := 0
	for i, f := range fitnesses {
		if f < min {
			min = f
		}
		if f > max {
			max = f
			best = i
		}
	}

	return Statistics{
		MinFitness: min,
		MaxFitness: max,
		AvgFitness: float32(stat.Mean(values, nil)),
		StdFitness: float32(stat.PopStdDev(values, nil)),
		Best:       best,
	}
}

func (s Statistics) String() string {
	return fmt.Sprintf("min=%.2f max=%.2f avg=%.2f std=%.2f",
		s.MinFitness, s.MaxFitness, s.AvgFitness, s.StdFitness)
}
