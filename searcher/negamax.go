package searcher

import (
	"context"
	"errors"
	"mills/experiments/metrics"
	"mills/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	WinScore = 10000
	infinity = 1 << 30
)

// Negamax is an alpha-beta search written for White to move only. Black
// searches swap the position first, and every child is swapped before the
// recursion, so both sides share one code path.
type Negamax struct {
	settings
}

func NewNegamax(options ...Option) *Negamax {
	n := &Negamax{settings: defaults()}
	for _, option := range options {
		option(&n.settings)
	}
	if n.table == nil {
		n.table = NewTable(DefaultCapacity)
	}
	return n
}

func (n *Negamax) Table() *Table {
	return n.table
}

// Search deepens iteratively up to the configured depth. When a duration is
// set and runs out, the last completed iteration is returned. The first
// iteration always completes unless ctx is cancelled.
func (n *Negamax) Search(ctx context.Context, pos game.Position, player game.Color) ([]game.Position, metrics.SearchMetric, error) {
	n.metrics.Start("negamax", n.goroutines)

	root := pos
	if player == game.Black {
		root.Swap()
	}
	children := root.Expand(game.White)

	deadline := ctx
	if n.duration > 0 {
		var cancel context.CancelFunc
		deadline, cancel = context.WithTimeout(ctx, n.duration)
		defer cancel()
	}

	var best []game.Position
	for depth := 1; depth <= n.depth; depth++ {
		iterCtx := deadline
		if depth == 1 {
			iterCtx = ctx
		}
		scores, err := n.searchRoot(iterCtx, children, depth)
		if err != nil {
			if ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
				log.Debug().Int("depth", depth).Msg("search-deadline")
				break
			}
			return nil, metrics.SearchMetric{}, err
		}
		var score int
		best, score = pickBest(children, scores)
		n.metrics.SetDepth(depth)
		log.Debug().Int("depth", depth).Int("candidates", len(best)).Int("score", score).Msg("deepening-iteratively")
	}

	if player == game.Black {
		for i := range best {
			best[i].Swap()
		}
	}
	return best, n.metrics.Complete(len(best)), nil
}

// searchRoot scores every root child with a full window, in parallel.
func (n *Negamax) searchRoot(ctx context.Context, children []game.Position, depth int) ([]int, error) {
	scores := make([]int, len(children))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(n.goroutines)
	for i, child := range children {
		i, child := i, child
		g.Go(func() error {
			score, err := n.negamax(ctx, child.Swapped(), depth-1, -infinity, infinity)
			scores[i] = -score
			return err
		})
	}
	return scores, g.Wait()
}

// negamax scores pos for White, the player to move.
func (n *Negamax) negamax(ctx context.Context, pos game.Position, depth int, alpha, beta int) (int, error) {
	n.metrics.AddNode()
	if pos.IsWon(game.Black) {
		// Faster wins for the opponent score lower
		return -(WinScore + depth), nil
	}
	if depth == 0 {
		return n.evaluate(pos), nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	key := pos.Canonical()
	alphaOrig := alpha
	if entry, ok := n.table.Probe(key); ok && entry.Depth >= depth {
		n.metrics.AddTableHit()
		switch entry.Flag {
		case Exact:
			return entry.Score, nil
		case Lower:
			alpha = max(alpha, entry.Score)
		case Upper:
			beta = min(beta, entry.Score)
		}
		if alpha >= beta {
			return entry.Score, nil
		}
	}

	best := -infinity
	for _, child := range pos.Expand(game.White) {
		score, err := n.negamax(ctx, child.Swapped(), depth-1, -beta, -alpha)
		if err != nil {
			return 0, err
		}
		best = max(best, -score)
		alpha = max(alpha, best)
		if alpha >= beta {
			break
		}
	}

	flag := Exact
	if best <= alphaOrig {
		flag = Upper
	} else if best >= beta {
		flag = Lower
	}
	n.table.Store(key, Entry{Depth: depth, Score: best, Flag: flag})
	return best, nil
}

func pickBest(children []game.Position, scores []int) ([]game.Position, int) {
	top := -infinity
	for _, score := range scores {
		top = max(top, score)
	}
	var best []game.Position
	for i, score := range scores {
		if score == top {
			best = append(best, children[i])
		}
	}
	return best, top
}
