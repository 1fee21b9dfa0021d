package game

import "golang.org/x/exp/slices"

func (p Position) permute(perm *[Cells]int) Position {
	image := p
	for i, j := range perm {
		image.Board[i] = p.Board[j]
	}
	return image
}

// Rotate turns the board by a quarter.
func (p Position) Rotate() Position {
	return p.permute(&Rotation)
}

// Reflect mirrors the board about its vertical axis.
func (p Position) Reflect() Position {
	return p.permute(&Mirror)
}

// Symmetries returns the images of p under the symmetry group of the square:
// identity, the three rotations, then the mirror followed by zero to three
// rotations. Hands are untouched.
func (p Position) Symmetries() [8]Position {
	var images [8]Position
	images[0] = p
	images[4] = p.Reflect()
	for i := 1; i < 4; i++ {
		images[i] = images[i-1].Rotate()
		images[4+i] = images[3+i].Rotate()
	}
	return images
}

// Canonical picks the smallest image of p, so that positions equal up to
// symmetry share one representative.
func (p Position) Canonical() Position {
	images := p.Symmetries()
	return slices.MinFunc(images[:], Compare)
}

// Swap flips p to the other player's perspective: every piece changes
// sides and the hands are exchanged.
func (p *Position) Swap() {
	p.Hands[0], p.Hands[1] = p.Hands[1], p.Hands[0]
	for i := range p.Board {
		p.Board[i] = -p.Board[i]
	}
}

// Swapped returns a swapped copy of p.
func (p Position) Swapped() Position {
	p.Swap()
	return p
}
