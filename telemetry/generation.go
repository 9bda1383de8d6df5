// Package telemetry records per-generation statistics as CSV for
// offline analysis.
package telemetry

import (
	"github.com/chuch3/sparrow/genetics"
)

// GenerationRecord is one CSV row: the fitness summary of a finished
// generation plus where in the run it happened.
type GenerationRecord struct {
	Generation int     `csv:"generation"`
	Tick       int     `csv:"tick"`
	MinFitness float32 `csv:"min_fitness"`
	MaxFitness float32 `csv:"max_fitness"`
	AvgFitness float32 `csv:"avg_fitness"`
	StdFitness float32 `csv:"std_fitness"`
	Best       int     `csv:"best_index"`
}

// NewGenerationRecord captures a statistics value into a CSV row.
func NewGenerationRecord(generation, tick int, stats genetics.Statistics) GenerationRecord {
	return GenerationRecord{
		Generation: generation,
		Tick:       tick,
		MinFitness: stats.MinFitness,
		MaxFitness: stats.MaxFitness,
		AvgFitness: stats.AvgFitness,
		StdFitness: stats.StdFitness,
		Best:       stats.Best,
	}
}
