// Package main provides CMA-ES optimization for evolution and flocking
// parameters, scored by how much food the evolved population eats.
package main

import (
	"github.com/chuch3/sparrow/config"
)

// ParamSpec defines a single optimizable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all optimizable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Evolution
			{Name: "mutation_chance", Path: "simulation.mutation_chance", Min: 0.001, Max: 0.3, Default: 0.01},
			{Name: "mutation_magnitude", Path: "simulation.mutation_magnitude", Min: 0.05, Max: 1.0, Default: 0.3},
			// Flocking
			{Name: "coherence_weight", Path: "flocking.coherence_weight", Min: 0.0, Max: 1.5, Default: 0.5},
			{Name: "separation_weight", Path: "flocking.separation_weight", Min: 0.0, Max: 1.5, Default: 0.55},
			{Name: "alignment_weight", Path: "flocking.alignment_weight", Min: 0.0, Max: 1.5, Default: 0.45},
			{Name: "separation_distance", Path: "flocking.separation_distance", Min: 0.01, Max: 0.2, Default: 0.05},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := v[i]
		if val < spec.Min {
			val = spec.Min
		}
		if val > spec.Max {
			val = spec.Max
		}
		clamped[i] = val
	}
	return clamped
}

// ApplyToConfig applies parameter values to a Config struct.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	clamped := pv.Clamp(values)

	cfg.Simulation.MutationChance = clamped[0]
	cfg.Simulation.MutationMagnitude = clamped[1]
	cfg.Flocking.CoherenceWeight = clamped[2]
	cfg.Flocking.SeparationWeight = clamped[3]
	cfg.Flocking.AlignmentWeight = clamped[4]
	cfg.Flocking.SeparationDistance = clamped[5]
}

// ExtractFromConfig extracts current parameter values from a Config struct.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Simulation.MutationChance,
		cfg.Simulation.MutationMagnitude,
		cfg.Flocking.CoherenceWeight,
		cfg.Flocking.SeparationWeight,
		cfg.Flocking.AlignmentWeight,
		cfg.Flocking.SeparationDistance,
	}
}
