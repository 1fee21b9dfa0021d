package engine

import (
	"context"
	"fmt"
	"mills/experiments/metrics"
	"mills/game"
	"mills/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type Engine struct {
	State    game.Position
	Player   game.Color // To move
	Agents   [2]agent.Agent
	History  []Update
	maxTurns int
}

// LocalEngine sets up a game from the opening between two agents, the first
// playing White. A non-positive maxTurns means MaxTurns.
func LocalEngine(agents [2]agent.Agent, maxTurns int) *Engine {
	if agents[0] == nil || agents[1] == nil {
		panic("need two agents")
	}
	if maxTurns <= 0 {
		maxTurns = MaxTurns
	}
	return &Engine{
		State:    game.NewPosition(),
		Player:   game.White,
		Agents:   agents,
		maxTurns: maxTurns,
	}
}

func agentIndex(player game.Color) int {
	if player == game.White {
		return 0
	}
	return 1
}

// Run plays until a player wins or the turn limit is reached, in which case
// the winner is game.Empty. An agent answering with anything but a successor
// of the current position stops the game with ErrIllegalMove.
func (e *Engine) Run(ctx context.Context) (game.Color, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Player,
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.Player)

	winner := game.Empty
	for turn := 1; turn <= e.maxTurns; turn++ {
		next, searchMetric, err := e.Agents[agentIndex(e.Player)].FindMove(ctx, e.State, e.Player)
		if err != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("turn %d: %w", turn, err)
		}

		successors := e.State.Expand(e.Player)
		if !slices.Contains(successors, next) {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("turn %d: %s played %s: %w", turn, e.Player, next.Notation(), ErrIllegalMove)
		}

		move := game.Diff(e.State, next, e.Player)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       e.Player,
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		e.History = append(e.History, Update{Step: turn, Player: e.Player, Move: move, State: next})
		log.Debug().Int("turn", turn).Str("player", e.Player.String()).Str("move", move.String()).Int("value", next.Value()).Msg("played")

		e.State = next
		gameMetric.TotalMoves = turn
		if e.State.IsWon(e.Player) {
			winner = e.Player
			break
		}
		e.Player = e.Player.Opponent()
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	if winner != game.Empty {
		log.Info().Msgf("game over after %d moves, winner: %s", gameMetric.TotalMoves, winner)
	} else {
		log.Info().Msgf("stopped after %d moves without a winner", gameMetric.TotalMoves)
	}
	return winner, gameMetric, moveMetrics, nil
}
