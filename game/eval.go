package game

// Weights per mill, indexed by [white pieces][black pieces] on its cells.
// An open two-in-a-row counts as much as a closed mill.
var millWeights = [4][4]int{
	{0, -1, -4, -4},
	{1, 0, 0, 0},
	{4, 0, 0, 0},
	{4, 0, 0, 0},
}

// collapse is added when a side has fewer than three pieces left overall.
const collapse = 100

// Value scores p from White's perspective by summing the mill weights and
// rewarding a material collapse of either side.
func (p Position) Value() int {
	value := 0
	for _, mill := range Mills {
		white, black := 0, 0
		for _, cell := range mill {
			switch p.Board[cell] {
			case White:
				white++
			case Black:
				black++
			}
		}
		value += millWeights[white][black]
	}
	return value + p.materialCollapse()
}

func (p Position) materialCollapse() int {
	value := 0
	if p.Total(Black) < 3 {
		value += collapse
	}
	if p.Total(White) < 3 {
		value -= collapse
	}
	return value
}

// EvaluateMills is the default heuristic, see Position.Value.
func EvaluateMills(p Position) int {
	return p.Value()
}

// EvaluateMaterial only counts pieces owned, weighted so that the collapse
// term still dominates.
func EvaluateMaterial(p Position) int {
	return 10*(p.Total(White)-p.Total(Black)) + p.materialCollapse()
}
