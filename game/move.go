package game

import "fmt"

// Move describes how a successor was reached. From == To is a placement,
// To == NoCell a pass, Capture is NoCell when no piece was removed.
type Move struct {
	From    int
	To      int
	Capture int
}

var Pass = Move{From: NoCell, To: NoCell, Capture: NoCell}

// Diff recovers the move player made to go from before to after.
func Diff(before, after Position, player Color) Move {
	move := Pass
	for cell := 0; cell < Cells; cell++ {
		b, a := before.Board[cell], after.Board[cell]
		switch {
		case b == Empty && a == player:
			move.To = cell
		case b == player && a == Empty:
			move.From = cell
		case b == player.Opponent() && a == Empty:
			move.Capture = cell
		}
	}
	if move.To != NoCell && move.From == NoCell {
		move.From = move.To
	}
	return move
}

func (m Move) IsPlacement() bool {
	return m.To != NoCell && m.From == m.To
}

func (m Move) String() string {
	var s string
	switch {
	case m.To == NoCell:
		return "pass"
	case m.IsPlacement():
		s = "place " + label(m.To)
	default:
		s = fmt.Sprintf("slide %s-%s", label(m.From), label(m.To))
	}
	if m.Capture != NoCell {
		s += " x" + label(m.Capture)
	}
	return s
}
