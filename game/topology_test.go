package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMills(t *testing.T) {
	t.Run("every mill is a straight line with its middle cell in the center", func(t *testing.T) {
		for _, mill := range Mills {
			a, b, c := Coordinates[mill[0]], Coordinates[mill[1]], Coordinates[mill[2]]
			require.True(t, (a.X == b.X && b.X == c.X) || (a.Y == b.Y && b.Y == c.Y),
				"Mill %v should be collinear", mill)
			require.Equal(t, Point{(a.X + c.X) / 2, (a.Y + c.Y) / 2}, b,
				"Mill %v should list its middle cell second", mill)
		}
	})

	t.Run("every cell lies on exactly two mills", func(t *testing.T) {
		for cell := 0; cell < Cells; cell++ {
			for _, mill := range MillsThrough[cell] {
				require.Contains(t, mill, cell, "Cell %d should belong to its mills", cell)
				require.Contains(t, Mills, mill)
			}
			require.NotEqual(t, MillsThrough[cell][0], MillsThrough[cell][1],
				"Cell %d should lie on two distinct mills", cell)
		}
	})
}

func TestAdjacent(t *testing.T) {
	// Edges of the board are exactly the segments between consecutive mill cells
	edges := map[[2]int]bool{}
	for _, mill := range Mills {
		edges[[2]int{mill[0], mill[1]}] = true
		edges[[2]int{mill[1], mill[0]}] = true
		edges[[2]int{mill[1], mill[2]}] = true
		edges[[2]int{mill[2], mill[1]}] = true
	}

	got := map[[2]int]bool{}
	for from, neighbors := range Adjacent {
		for _, to := range neighbors {
			got[[2]int{from, to}] = true
			require.Contains(t, Adjacent[to], from, "Adjacency %d-%d should be symmetric", from, to)
		}
	}
	require.Equal(t, edges, got, "Adjacency should follow the drawn lines of the board")
}

func TestPermutations(t *testing.T) {
	t.Run("rotation turns every point by a quarter", func(t *testing.T) {
		for i, c := range Coordinates {
			require.Equal(t, Point{-c.Y, c.X}, Coordinates[Rotation[i]], "Cell %d", i)
		}
	})

	t.Run("mirror flips every point horizontally", func(t *testing.T) {
		for i, c := range Coordinates {
			require.Equal(t, Point{-c.X, c.Y}, Coordinates[Mirror[i]], "Cell %d", i)
		}
	})

	t.Run("permutations map mills onto mills", func(t *testing.T) {
		for _, perm := range [][Cells]int{Rotation, Mirror} {
			for _, mill := range Mills {
				var image []int
				for i, j := range perm {
					if j == mill[0] || j == mill[1] || j == mill[2] {
						image = append(image, i)
					}
				}
				require.Len(t, image, 3)
				require.True(t, isMill(image), "Image %v of mill %v should be a mill", image, mill)
			}
		}
	})
}

func isMill(cells []int) bool {
	for _, mill := range Mills {
		if sameCells(mill[:], cells) {
			return true
		}
	}
	return false
}

func sameCells(a, b []int) bool {
	seen := map[int]int{}
	for _, x := range a {
		seen[x]++
	}
	for _, x := range b {
		seen[x]--
	}
	for _, n := range seen {
		if n != 0 {
			return false
		}
	}
	return true
}
