package searcher

import (
	"context"
	"mills/experiments/metrics"
	"mills/game"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

// MCTS is a tree-parallel UCT search with virtual loss.
type MCTS struct {
	settings
}

func NewMCTS(goroutines int, options ...Option) *MCTS {
	m := &MCTS{settings: defaults()}
	m.goroutines = goroutines
	for _, option := range options {
		option(&m.settings)
	}
	if m.goroutines <= 0 {
		panic("Must run at least one goroutine")
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

func (m *MCTS) Search(ctx context.Context, pos game.Position, player game.Color) ([]game.Position, metrics.SearchMetric, error) {
	root := newNode(nil, pos, player)

	m.metrics.Start("mcts", m.goroutines)
	var err error
	if m.episodes > 0 {
		err = m.iterate(ctx, root)
	} else {
		err = m.countdown(ctx, root)
	}
	if err != nil {
		return nil, metrics.SearchMetric{}, err
	}

	best := root.mostVisited()
	metric := m.metrics.Complete(len(best))
	log.Debug().Int("episodes", metric.Nodes).Int("candidates", len(best)).Msg("mcts-complete")
	return best, metric, nil
}

func (m *MCTS) iterate(ctx context.Context, root *node) error {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < m.goroutines; i++ {
		g.Go(func() error {
			for range task {
				if err := ctx.Err(); err != nil {
					return err
				}
				m.simulate(root)
			}
			return nil
		})
	}
	return g.Wait()
}

func (m *MCTS) countdown(ctx context.Context, root *node) error {
	deadline, cancel := context.WithTimeout(ctx, m.duration)
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for deadline.Err() == nil {
				m.simulate(root)
			}
		}()
	}
	wg.Wait()

	// Running out of time is the normal end, only the caller cancelling is not
	return ctx.Err()
}

func (m *MCTS) simulate(root *node) {
	leaf := selectThenExpand(root)
	outcome := m.rollout(leaf.state, leaf.player)
	backup(leaf, outcome)
	m.metrics.AddNode()
}

func selectThenExpand(root *node) *node {
	parent := root
	child, expanded := parent.selectOrExpand()
	for !expanded && child != parent {
		parent = child
		child, expanded = parent.selectOrExpand()
	}
	return child
}

// rollout plays random successors until a player wins or the cutoff is
// reached, and returns the outcome from White's perspective.
func (m *MCTS) rollout(state game.Position, player game.Color) float64 {
	for depth := 0; ; depth++ {
		if state.IsWon(player.Opponent()) {
			m.metrics.AddFullPlayout()
			return Win * float64(player.Opponent())
		}
		if depth >= m.cutoff {
			break
		}
		successors := state.Expand(player)
		state = successors[rand.Intn(len(successors))]
		player = player.Opponent()
	}
	return squash(m.evaluate(state))
}

func backup(leaf *node, outcome float64) {
	for n := leaf; n != nil; {
		n = n.backup(outcome)
	}
}
