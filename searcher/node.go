package searcher

import (
	"math"
	"mills/game"
	"sync"
)

// node is a position in the MCTS tree. Its rewards are kept from the
// perspective of the player who moved into it, so a parent always picks the
// child with the highest value.
type node struct {
	sync.Mutex
	parent     *node
	state      game.Position
	player     game.Color // To move
	unexplored []game.Position
	children   []*node
	terminal   bool
	rewards    float64
	visits     float64
}

func newNode(parent *node, state game.Position, player game.Color) *node {
	n := &node{
		parent: parent,
		state:  state,
		player: player,
	}
	if state.IsWon(player.Opponent()) {
		n.terminal = true
	} else {
		n.unexplored = state.Expand(player)
	}
	return n
}

// selectOrExpand adds the next unexplored successor as a child, or selects
// the best child of a fully expanded node. The returned child carries a
// virtual loss until backup. A terminal node returns itself.
func (n *node) selectOrExpand() (child *node, expanded bool) {
	n.Lock()
	defer n.Unlock()

	if n.terminal {
		return n, false
	}

	if len(n.unexplored) > 0 {
		state := n.unexplored[0]
		n.unexplored = n.unexplored[1:]
		child = newNode(n, state, n.player.Opponent())
		n.children = append(n.children, child)
		child.applyLoss()
		return child, true
	}

	child = n.children[n.pickChild()]
	child.applyLoss()
	return child, false
}

func (n *node) pickChild() int {
	// Visits of the parent may lag behind its children's virtual losses
	policy := newUCT(CSquared, math.Max(n.visits, 1))

	maxIndex := 0
	maxScore := math.Inf(-1)
	for i, child := range n.children {
		rewards, visits := child.stats()
		if score := policy.evaluate(rewards, visits); score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

func (n *node) applyLoss() {
	n.Lock()
	defer n.Unlock()

	n.rewards += Loss
	n.visits++
}

func (n *node) stats() (rewards, visits float64) {
	n.Lock()
	defer n.Unlock()

	return n.rewards, n.visits
}

// backup records a playout outcome given from White's perspective and
// returns the parent.
func (n *node) backup(outcome float64) *node {
	n.Lock()
	defer n.Unlock()

	if n.parent != nil { // Non-root nodes carry a virtual loss
		n.rewards -= Loss
		n.visits--
	}

	n.rewards += outcome * float64(n.player.Opponent())
	n.visits++

	return n.parent
}

// mostVisited returns the successors of the children with the most visits.
func (n *node) mostVisited() []game.Position {
	n.Lock()
	defer n.Unlock()

	if len(n.children) == 0 {
		if n.terminal {
			return []game.Position{n.state}
		}
		return n.unexplored
	}

	top := math.Inf(-1)
	var best []game.Position
	for _, child := range n.children {
		_, visits := child.stats()
		switch {
		case visits > top:
			top = visits
			best = []game.Position{child.state}
		case visits == top:
			best = append(best, child.state)
		}
	}
	return best
}
