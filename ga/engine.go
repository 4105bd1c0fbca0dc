// SPDX-License-Identifier: MIT
// Package: cliquega/ga
//
// engine.go - the generational loop.
//
// One generation:
//   Stage 1: elitism, clones of the top min(EliteCount, N) members.
//   Stage 2: offspring, rank-select two parents, crossover (CrossoverRate) or
//            clone parent1, mutate, evaluate, until N members exist.
//   Stage 3: replace the population and re-sort.
//   Stage 4: update the global best and the no-improvement counter.
//   Stage 5: diversity, history, collaborators.
//   Stage 6: stop checks (patience, then diversity; diversity's reason wins).
//
// The initial population counts as the origin of the global best, so with no
// further improvement and patience p the run stops after generation p-1.

package ga

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/cliquega/graph"
)

// Engine runs the search for one Graph and Config.
// Not safe for concurrent use: it owns a single random stream.
type Engine struct {
	g         *graph.Graph
	cfg       Config
	rng       *rand.Rand
	log       zerolog.Logger
	genLog    GenerationLog
	charts    ChartRenderer
	observers []Observer
	selector  *rankSelector
}

// NewEngine validates cfg and prepares an Engine.
//
// Errors:
//   - ErrNilGraph when g is nil.
//   - any Config.Validate sentinel.
func NewEngine(g *graph.Graph, cfg Config, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, fmt.Errorf("NewEngine: %w", ErrNilGraph)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("NewEngine: %w", err)
	}

	o := newEngineOptions(cfg.Seed, opts)

	return &Engine{
		g:         g,
		cfg:       cfg,
		rng:       o.rng,
		log:       o.logger,
		genLog:    o.genLog,
		charts:    o.charts,
		observers: o.observers,
		selector:  newRankSelector(cfg.PopulationSize),
	}, nil
}

// Config returns the validated configuration.
func (e *Engine) Config() Config { return e.cfg }

// Run executes one complete search from a fresh random population.
// Successive calls continue the same random stream.
func (e *Engine) Run() (*Result, error) {
	start := time.Now()
	cfg := e.cfg

	pop, err := NewPopulation(e.g, cfg.PopulationSize, e.rng)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	globalBest := pop.Best().Clone()
	noImprovement := 0
	history := make([]History, 0, cfg.MaxGenerations)

	res := &Result{
		Stop:       StopMaxGenerations,
		StopReason: maxGenerationsReason(cfg.MaxGenerations),
	}

	for gen := 0; gen < cfg.MaxGenerations; gen++ {
		genStart := time.Now()
		next := e.breed(pop)
		genTime := time.Since(genStart)

		pop.Replace(next)

		if pop.Best().Fitness() > globalBest.Fitness() {
			globalBest = pop.Best().Clone()
			noImprovement = 0
		} else {
			noImprovement++
		}

		diversity := pop.Diversity()
		history = append(history, History{
			Generation:     gen,
			BestFitness:    pop.Best().Fitness(),
			Diversity:      diversity,
			GenerationTime: genTime,
		})
		res.Generations = gen + 1
		res.FinalDiversity = diversity

		e.notify(GenerationStats{
			Generation:    gen,
			BestFitness:   pop.Best().Fitness(),
			GlobalBest:    globalBest.Fitness(),
			Diversity:     diversity,
			NoImprovement: noImprovement,
			Elapsed:       genTime,
		}, pop)

		stopped := false
		if cfg.Patience > 0 && noImprovement >= cfg.Patience {
			stopped = true
			res.Stop = StopPatience
			res.StopReason = patienceReason(cfg.Patience)
		}
		if cfg.DiversityThreshold > 0 && diversity < cfg.DiversityThreshold {
			stopped = true
			res.Stop = StopDiversity
			res.StopReason = diversityReason(diversity, cfg.DiversityThreshold)
		}
		if stopped {
			res.EarlyStopped = true
			e.log.Info().
				Int("generation", gen).
				Str("cause", res.Stop.String()).
				Msg(res.StopReason)
			break
		}
	}

	res.Best = globalBest
	res.History = history
	res.Elapsed = time.Since(start)

	e.finish(res)

	return res, nil
}

// breed produces the next generation's members (stages 1 and 2).
func (e *Engine) breed(pop *Population) []*Individual {
	cfg := e.cfg
	next := make([]*Individual, 0, cfg.PopulationSize)
	next = append(next, pop.Elite(cfg.EliteCount)...)

	for len(next) < cfg.PopulationSize {
		p1 := e.selector.selectParent(pop, cfg.IndexRange, e.rng)
		p2 := e.selector.selectParent(pop, cfg.IndexRange, e.rng)

		var child *Individual
		if e.rng.Float64() < cfg.CrossoverRate {
			child = Crossover(p1, p2, e.rng)
		} else {
			child = p1.Clone()
		}

		child.Mutate(mutationRate(cfg.MutationRate, child, cfg.IndexRange), e.rng)
		child.Evaluate(e.rng)
		next = append(next, child)
	}

	return next
}

// notify feeds one generation to the log, the observers and the debug logger.
func (e *Engine) notify(stats GenerationStats, pop *Population) {
	if e.cfg.EnableLogging {
		e.log.Debug().
			Int("generation", stats.Generation).
			Int("best", stats.BestFitness).
			Int("global_best", stats.GlobalBest).
			Float64("diversity", stats.Diversity).
			Int("no_improvement", stats.NoImprovement).
			Dur("elapsed", stats.Elapsed).
			Msg("generation complete")

		if e.genLog != nil {
			if err := e.genLog.LogGeneration(stats, pop); err != nil {
				e.log.Warn().Err(err).Int("generation", stats.Generation).Msg("generation log failed")
			}
		}
	}

	for _, obs := range e.observers {
		obs.OnGeneration(stats)
	}
}

// finish runs the end-of-run collaborators.
func (e *Engine) finish(res *Result) {
	if e.cfg.DrawCharts && e.charts != nil {
		if err := e.charts.RenderRun(res.History); err != nil {
			e.log.Warn().Err(err).Msg("chart rendering failed")
		}
	}

	for _, obs := range e.observers {
		obs.OnRunComplete(res)
	}

	e.log.Info().
		Int("best_fitness", res.Best.Fitness()).
		Int("generations", res.Generations).
		Bool("early_stopped", res.EarlyStopped).
		Dur("elapsed", res.Elapsed).
		Msg("run complete")
}
