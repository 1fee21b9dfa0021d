package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSymmetries(t *testing.T) {
	p := place([]int{0, 1, 2, 11}, []int{8, 16, 21}, [2]int{5, 6})

	t.Run("rotation has order four and mirror order two", func(t *testing.T) {
		require.Equal(t, p, p.Rotate().Rotate().Rotate().Rotate())
		require.Equal(t, p, p.Reflect().Reflect())
		require.NotEqual(t, p, p.Rotate())
	})

	t.Run("orbit order", func(t *testing.T) {
		images := p.Symmetries()

		require.Equal(t, p, images[0])
		require.Equal(t, p.Rotate(), images[1])
		require.Equal(t, p.Rotate().Rotate(), images[2])
		require.Equal(t, p.Rotate().Rotate().Rotate(), images[3])
		require.Equal(t, p.Reflect(), images[4])
		require.Equal(t, p.Reflect().Rotate(), images[5])
		require.Equal(t, p.Reflect().Rotate().Rotate(), images[6])
		require.Equal(t, p.Reflect().Rotate().Rotate().Rotate(), images[7])
	})

	t.Run("images keep hands, material, score and mills", func(t *testing.T) {
		for _, image := range p.Symmetries() {
			require.Equal(t, p.Hands, image.Hands)
			require.Equal(t, p.Count(White), image.Count(White))
			require.Equal(t, p.Count(Black), image.Count(Black))
			require.Equal(t, p.Value(), image.Value())

			formed := 0
			for _, mill := range Mills {
				if image.Formed(mill, White) {
					formed++
				}
			}
			require.Equal(t, 1, formed, "The mill should map onto a mill")
			require.Len(t, image.Expand(White), len(p.Expand(White)))
		}
	})

	t.Run("canonical form is shared by the orbit", func(t *testing.T) {
		canonical := p.Canonical()
		for _, image := range p.Symmetries() {
			require.Equal(t, canonical, image.Canonical())
			require.LessOrEqual(t, Compare(canonical, image), 0)
		}
	})
}

func TestSwap(t *testing.T) {
	p := place([]int{0, 1, 2}, []int{8, 16}, [2]int{4, 7})

	swapped := p.Swapped()

	require.Equal(t, [2]int{7, 4}, swapped.Hands)
	require.Equal(t, Black, swapped.At(0))
	require.Equal(t, White, swapped.At(8))
	require.Equal(t, Empty, swapped.At(5))
	require.Equal(t, p, swapped.Swapped(), "Swap should be an involution")

	swapped.Swap()
	require.Equal(t, p, swapped, "Swap should work in place")
}
