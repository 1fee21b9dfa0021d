package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPosition(t *testing.T) {
	p := NewPosition()

	require.Equal(t, Pieces, p.Hand(White))
	require.Equal(t, Pieces, p.Hand(Black))
	require.Zero(t, p.Count(White))
	require.Zero(t, p.Count(Black))
	for cell := 0; cell < Cells; cell++ {
		require.Equal(t, Empty, p.At(cell))
	}
	require.Panics(t, func() { p.At(-1) })
	require.Panics(t, func() { p.Hand(Empty) })
}

func TestCompare(t *testing.T) {
	a := place([]int{0}, nil, [2]int{8, 9})
	b := place([]int{1}, nil, [2]int{8, 9})

	require.Equal(t, 0, Compare(a, a))
	require.Equal(t, 1, Compare(a, b), "An occupied earlier cell sorts after an empty one")
	require.Equal(t, -1, Compare(b, a))
	require.Equal(t, -1, Compare(place(nil, nil, [2]int{8, 9}), place(nil, nil, [2]int{9, 9})),
		"Hands should break ties")
}

func TestHash(t *testing.T) {
	a := place([]int{0}, []int{5}, [2]int{8, 8})

	require.Equal(t, a.Hash(), a.Hash())
	require.NotEqual(t, a.Hash(), a.Swapped().Hash())
	require.NotEqual(t, a.Hash(), NewPosition().Hash())
}

func TestNotation(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		p := place([]int{0, 1, 23}, []int{8, 12}, [2]int{5, 6})

		notation := p.Notation()
		parsed, err := ParsePosition(notation)

		require.Equal(t, "oo......x...x..........o:5:6", notation)
		require.NoError(t, err)
		require.Equal(t, p, parsed)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, s := range []string{
			"",
			"oo......................",
			"oo....:9:9",
			"oo......x...x..........?:5:6",
			"oo......x...x..........o:five:6",
			"oooooooooo..............:9:9",
			"oo......................:-1:9",
		} {
			_, err := ParsePosition(s)
			require.Error(t, err, "Should reject %q", s)
		}
	})
}

func TestString(t *testing.T) {
	p := place([]int{0}, []int{4}, [2]int{8, 8})

	lines := strings.Split(p.String(), "\n")

	require.Len(t, lines, 8)
	require.Equal(t, "       8◎  8◉", lines[0])
	require.Equal(t, "◎───── ───── ", lines[1])
	require.Equal(t, " ───── ─────◉", lines[7])
}
