package game

// Expand returns every position player can reach in one move, in a fixed
// order: source cell, then slide destination in Adjacent order, then
// capture cell. While player has pieces in hand the moves are placements,
// afterwards they are slides to adjacent empty cells.
//
// A player without any legal move passes: the result is the unchanged
// position on its own, so it is never empty.
func (p Position) Expand(player Color) []Position {
	var successors []Position
	if p.Hand(player) > 0 {
		for cell := 0; cell < Cells; cell++ {
			if p.Board[cell] == Empty {
				successors = append(successors, p.play(player, cell, cell)...)
			}
		}
	} else {
		for from, neighbors := range Adjacent {
			if p.Board[from] != player {
				continue
			}
			for _, to := range neighbors {
				if p.Board[to] == Empty {
					successors = append(successors, p.play(player, from, to)...)
				}
			}
		}
	}
	if len(successors) == 0 {
		successors = append(successors, p)
	}
	return successors
}

// play moves a piece of player from one cell to another, from == to being a
// placement out of the hand. Closing a mill on the destination adds one
// successor per capturable opponent piece after the no-capture one.
func (p Position) play(player Color, from, to int) []Position {
	next := p
	if from == to {
		next.Hands[player.hand()]--
	}
	next.Board[from] = Empty
	next.Board[to] = player

	successors := []Position{next}
	if !next.InMill(to, player) {
		return successors
	}
	for cell, c := range next.Board {
		if c == player.Opponent() && next.Capturable(cell, player) {
			captured := next
			captured.Board[cell] = Empty
			successors = append(successors, captured)
		}
	}
	return successors
}

// Capturable reports whether player may remove the opponent piece at cell.
// Pieces standing in a formed mill are protected, even when every opponent
// piece is.
func (p Position) Capturable(cell int, player Color) bool {
	checkCell(cell)
	opponent := player.Opponent()
	return p.Board[cell] == opponent && !p.InMill(cell, opponent)
}

// IsWon reports whether player has won: the opponent has placed its whole
// hand and is left with fewer than three pieces on the board.
func (p Position) IsWon(player Color) bool {
	opponent := player.Opponent()
	return p.Hand(opponent) == 0 && p.Count(opponent) < 3
}
