package engine

import (
	"errors"
	"mills/game"
)

const MaxTurns = 500

var ErrIllegalMove = errors.New("not a successor of the position")

// Update records one played turn.
type Update struct {
	Step   int
	Player game.Color
	Move   game.Move
	State  game.Position
}
