package game

// Color is the occupant of a cell and doubles as the player tag.
// Negating a Color flips ownership, which is what lets every rule below be
// written once for the +1 side.
type Color int8

const (
	Black Color = -1
	Empty Color = 0
	White Color = 1
)

const (
	Cells  = 3 * 8
	Pieces = 9 // Starting allotment per player
	NoCell = -1
)

type StateHash uint64

// Evaluate scores a position from White's perspective, positive favoring White.
type Evaluate func(Position) int

func (c Color) Opponent() Color {
	return -c
}

// hand is the index of c in Position.Hands
func (c Color) hand() int {
	switch c {
	case White:
		return 0
	case Black:
		return 1
	default:
		panic("color is not a player")
	}
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "empty"
	}
}

func checkCell(cell int) {
	if cell < 0 || cell >= Cells {
		panic("cell out of range")
	}
}
