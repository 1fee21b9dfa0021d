package game

// Board layout, cells labeled clockwise from the top-left corner of each square:
//
//	00       01       02
//	   08    09    10
//	      16 17 18
//	07 15 23    19 11 03
//	      22 21 20
//	   14    13    12
//	06       05       04

// Point is the position of a cell on the diagram, origin at the center.
type Point struct {
	X, Y int
}

var Coordinates = [Cells]Point{
	{-3, -3}, {0, -3}, {3, -3}, {3, 0}, {3, 3}, {0, 3}, {-3, 3}, {-3, 0},
	{-2, -2}, {0, -2}, {2, -2}, {2, 0}, {2, 2}, {0, 2}, {-2, 2}, {-2, 0},
	{-1, -1}, {0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0},
}

var Mills = [16][3]int{
	{0, 1, 2},
	{8, 9, 10},
	{16, 17, 18},
	{7, 15, 23},
	{19, 11, 3},
	{22, 21, 20},
	{14, 13, 12},
	{6, 5, 4},
	{0, 7, 6},
	{8, 15, 14},
	{16, 23, 22},
	{1, 9, 17},
	{21, 13, 5},
	{18, 19, 20},
	{10, 11, 12},
	{2, 3, 4},
}

// Adjacent lists the slide destinations of each cell. The order is the
// destination order of Expand.
var Adjacent = [Cells][]int{
	{1, 7}, {0, 2, 9}, {1, 3}, {2, 4, 11}, {3, 5}, {4, 6, 13}, {5, 7}, {0, 6, 15},
	{9, 15}, {1, 8, 17, 10}, {9, 11}, {3, 10, 19, 12}, {11, 13}, {5, 12, 14, 21}, {13, 15}, {7, 14, 23, 8},
	{17, 23}, {16, 18, 9}, {17, 19}, {18, 11, 20}, {19, 21}, {20, 22, 13}, {21, 23}, {15, 16, 22},
}

// Rotation and Mirror are permutations read as image[i] = board[perm[i]].
var Rotation = [Cells]int{
	2, 3, 4, 5, 6, 7, 0, 1,
	10, 11, 12, 13, 14, 15, 8, 9,
	18, 19, 20, 21, 22, 23, 16, 17,
}

var Mirror = [Cells]int{
	2, 1, 0, 7, 6, 5, 4, 3,
	10, 9, 8, 15, 14, 13, 12, 11,
	18, 17, 16, 23, 22, 21, 20, 19,
}

// MillsThrough holds the two mills passing through each cell, in Mills order.
var MillsThrough [Cells][2][3]int

func init() {
	var found [Cells]int
	for _, mill := range Mills {
		for _, cell := range mill {
			if found[cell] == 2 {
				panic("cell lies on more than two mills")
			}
			MillsThrough[cell][found[cell]] = mill
			found[cell]++
		}
	}
	for cell, n := range found {
		if n != 2 {
			panic("cell does not lie on exactly two mills: " + label(cell))
		}
	}
}

// label formats cell the way the diagram numbers it.
func label(cell int) string {
	return string([]byte{byte('0' + cell/10), byte('0' + cell%10)})
}
