package searcher

import (
	"context"
	"mills/experiments/metrics"
	"mills/game"
	"runtime"
	"time"
)

const (
	DefaultDepth = 4
	MaxCutoff    = 200 // Rollout plies before falling back to the evaluation
)

// Searcher picks the best successors of a position for player. All equally
// good successors are returned so the caller can choose among them.
type Searcher interface {
	Search(ctx context.Context, pos game.Position, player game.Color) ([]game.Position, metrics.SearchMetric, error)
}

type settings struct {
	goroutines int
	depth      int
	duration   time.Duration
	episodes   int
	cutoff     int
	evaluate   game.Evaluate
	table      *Table
	metrics    metrics.Collector
}

type Option func(s *settings)

func defaults() settings {
	return settings{
		goroutines: runtime.NumCPU(),
		depth:      DefaultDepth,
		cutoff:     MaxCutoff,
		evaluate:   game.EvaluateMills,
		metrics:    metrics.NewDummyCollector(),
	}
}

func WithGoroutines(goroutines int) Option {
	return func(s *settings) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

// WithDepth sets the deepest iteration of a negamax search.
func WithDepth(depth int) Option {
	return func(s *settings) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

// WithDuration bounds a search in time. Negamax stops deepening, MCTS stops
// running episodes.
func WithDuration(duration time.Duration) Option {
	return func(s *settings) {
		if duration > 0 {
			s.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(s *settings) {
		if episodes > 0 {
			s.episodes = episodes
		}
	}
}

func WithCutoff(depth int) Option {
	return func(s *settings) {
		if depth > 0 {
			s.cutoff = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *settings) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

// WithTable shares a transposition table between searches.
func WithTable(table *Table) Option {
	return func(s *settings) {
		if table != nil {
			s.table = table
		}
	}
}

func WithMetrics() Option {
	return func(s *settings) {
		s.metrics = metrics.NewCollector()
	}
}
