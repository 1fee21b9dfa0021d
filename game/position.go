package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// Position is a board plus the pieces each player still holds in hand.
// It is a plain value: copying it copies everything, and it can be used
// as a map key.
type Position struct {
	Board [Cells]Color
	Hands [2]int // [White, Black]
}

// NewPosition returns the empty board with a full hand for both players.
func NewPosition() Position {
	return Position{Hands: [2]int{Pieces, Pieces}}
}

func (p Position) At(cell int) Color {
	checkCell(cell)
	return p.Board[cell]
}

// Hand returns how many pieces player has not placed yet.
func (p Position) Hand(player Color) int {
	return p.Hands[player.hand()]
}

// Count returns how many pieces player has on the board.
func (p Position) Count(player Color) int {
	n := 0
	for _, c := range p.Board {
		if c == player {
			n++
		}
	}
	return n
}

// Total counts the pieces player still owns, on board and in hand.
func (p Position) Total(player Color) int {
	return p.Count(player) + p.Hand(player)
}

// Formed reports whether every cell of mill belongs to player.
func (p Position) Formed(mill [3]int, player Color) bool {
	return p.Board[mill[0]] == player && p.Board[mill[1]] == player && p.Board[mill[2]] == player
}

// InMill reports whether the piece at cell is part of a mill formed by player.
func (p Position) InMill(cell int, player Color) bool {
	checkCell(cell)
	for _, mill := range MillsThrough[cell] {
		if p.Formed(mill, player) {
			return true
		}
	}
	return false
}

// Compare orders positions by board, cell by cell, then by hands.
func Compare(a, b Position) int {
	for i := range a.Board {
		if a.Board[i] != b.Board[i] {
			if a.Board[i] < b.Board[i] {
				return -1
			}
			return 1
		}
	}
	for i := range a.Hands {
		if a.Hands[i] != b.Hands[i] {
			if a.Hands[i] < b.Hands[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func (p Position) Hash() StateHash {
	hasher := fnv.New64a()

	var cells [Cells]byte
	for i, c := range p.Board {
		cells[i] = byte(c + 1)
	}
	hasher.Write(cells[:])

	for _, n := range p.Hands {
		binary.Write(hasher, binary.LittleEndian, int64(n))
	}
	return StateHash(hasher.Sum64())
}

var notationBytes = map[Color]byte{White: 'o', Black: 'x', Empty: '.'}

// Notation renders p compactly as "<24 cells>:<white hand>:<black hand>"
// with o for White, x for Black and . for an empty cell.
func (p Position) Notation() string {
	var sb strings.Builder
	for _, c := range p.Board {
		sb.WriteByte(notationBytes[c])
	}
	fmt.Fprintf(&sb, ":%d:%d", p.Hands[0], p.Hands[1])
	return sb.String()
}

// ParsePosition reads the form produced by Notation.
func ParsePosition(s string) (Position, error) {
	var p Position
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return p, fmt.Errorf("parse position %q: want <cells>:<hand>:<hand>", s)
	}
	if len(parts[0]) != Cells {
		return p, fmt.Errorf("parse position %q: want %d cells, got %d", s, Cells, len(parts[0]))
	}
	for i := 0; i < Cells; i++ {
		switch parts[0][i] {
		case 'o':
			p.Board[i] = White
		case 'x':
			p.Board[i] = Black
		case '.':
			p.Board[i] = Empty
		default:
			return p, fmt.Errorf("parse position %q: bad cell %q at %d", s, parts[0][i], i)
		}
	}
	for i, field := range parts[1:] {
		n, err := strconv.Atoi(field)
		if err != nil {
			return p, fmt.Errorf("parse position %q: hand: %w", s, err)
		}
		p.Hands[i] = n
	}
	for _, player := range []Color{White, Black} {
		if p.Hand(player) < 0 || p.Total(player) > Pieces {
			return p, fmt.Errorf("parse position %q: %s owns more than %d pieces", s, player, Pieces)
		}
	}
	return p, nil
}

// String draws the board with the hand counts on top.
func (p Position) String() string {
	const diagram = `       h+◎  h-◉
00─────01─────02
│ 08───09───10 │
│ │ 16 17 18 │ │
07─15─23   19─11─03
│ │ 22 21 20 │ │
│ 14───13───12 │
06─────05─────04`

	pairs := []string{"h+", strconv.Itoa(p.Hands[0]), "h-", strconv.Itoa(p.Hands[1])}
	for i, c := range p.Board {
		symbol := " "
		switch c {
		case White:
			symbol = "◎"
		case Black:
			symbol = "◉"
		}
		pairs = append(pairs, label(i), symbol)
	}
	return strings.NewReplacer(pairs...).Replace(diagram)
}
