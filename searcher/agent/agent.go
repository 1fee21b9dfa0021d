package agent

import (
	"context"
	"mills/experiments/metrics"
	"mills/game"
	"mills/searcher"
	"sync"

	"golang.org/x/exp/rand"
)

type Agent interface {
	// FindMove returns the successor player chooses and the metrics of the search behind it
	FindMove(ctx context.Context, pos game.Position, player game.Color) (game.Position, metrics.SearchMetric, error)
}

type searchAgent struct {
	searcher searcher.Searcher
	mu       sync.Mutex
	rng      *rand.Rand
}

// NewSearchAgent returns an agent playing one of the best successors found by
// s, chosen uniformly at random.
func NewSearchAgent(s searcher.Searcher, seed uint64) Agent {
	return &searchAgent{searcher: s, rng: rand.New(rand.NewSource(seed))}
}

func (a *searchAgent) FindMove(ctx context.Context, pos game.Position, player game.Color) (game.Position, metrics.SearchMetric, error) {
	best, metric, err := a.searcher.Search(ctx, pos, player)
	if err != nil {
		return pos, metric, err
	}
	return a.choose(best), metric, nil
}

func (a *searchAgent) choose(candidates []game.Position) game.Position {
	a.mu.Lock()
	defer a.mu.Unlock()

	return candidates[a.rng.Intn(len(candidates))]
}

type randomAgent struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent playing any legal successor.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(ctx context.Context, pos game.Position, player game.Color) (game.Position, metrics.SearchMetric, error) {
	successors := pos.Expand(player)

	a.mu.Lock()
	defer a.mu.Unlock()
	return successors[a.rng.Intn(len(successors))], metrics.SearchMetric{Searcher: "random", Candidates: len(successors)}, nil
}
