package main

import (
	"sync"

	"github.com/chuch3/sparrow/config"
	"github.com/chuch3/sparrow/game"
)

// FitnessEvaluator runs headless simulations and computes fitness.
// Lower is better: fitness is the negated average food eaten per
// animal in the final generation, averaged across seeds.
type FitnessEvaluator struct {
	params      *ParamVector
	generations int
	seeds       []int64
	baseConfig  *config.Config

	mu          sync.Mutex
	lastAvgFood float64 // avg fitness of the final generation, most recent Evaluate
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, generations int, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		generations: generations,
		seeds:       seeds,
		baseConfig:  baseCfg,
	}
}

// LastAvgFood returns the average food eaten per animal from the most
// recent evaluation, for progress reporting.
func (fe *FitnessEvaluator) LastAvgFood() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastAvgFood
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	// Run all seeds in parallel; each run owns its rng and world.
	scores := make([]float64, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			scores[idx] = fe.runSimulation(cfg, s)
		}(i, seed)
	}
	wg.Wait()

	var total float64
	for _, s := range scores {
		total += s
	}
	avgFood := total / float64(len(fe.seeds))

	fe.mu.Lock()
	fe.lastAvgFood = avgFood
	fe.mu.Unlock()

	return -avgFood
}

// runSimulation runs one seeded headless simulation and returns the
// final generation's average food eaten per animal. A parameter set
// under which no animal ever eats has no selectable fitness and scores
// zero instead of aborting the search.
func (fe *FitnessEvaluator) runSimulation(cfg *config.Config, seed int64) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			score = 0
		}
	}()

	g, err := game.New(cfg, game.Options{Seed: seed})
	if err != nil {
		return 0
	}
	defer g.Close()

	stats := g.RunHeadless(fe.generations)
	return float64(stats.AvgFitness)
}

// copyConfig returns a private copy of the base config so parallel
// evaluations never share mutable state.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}
