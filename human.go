package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"mills/experiments/metrics"
	"mills/game"
	"strconv"
	"strings"
)

// humanAgent lists the legal moves and reads the chosen index from a line
// of input.
type humanAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

func newHumanAgent(in io.Reader, out io.Writer) *humanAgent {
	return &humanAgent{in: bufio.NewScanner(in), out: out}
}

func (h *humanAgent) FindMove(ctx context.Context, pos game.Position, player game.Color) (game.Position, metrics.SearchMetric, error) {
	successors := pos.Expand(player)

	fmt.Fprintln(h.out, pos)
	for i, next := range successors {
		fmt.Fprintf(h.out, "%3d: %s\n", i+1, game.Diff(pos, next, player))
	}

	for {
		fmt.Fprintf(h.out, "%s to move> ", player)
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return game.Position{}, metrics.SearchMetric{}, err
			}
			return game.Position{}, metrics.SearchMetric{}, io.ErrUnexpectedEOF
		}
		if err := ctx.Err(); err != nil {
			return game.Position{}, metrics.SearchMetric{}, err
		}
		choice, err := h.choose(strings.TrimSpace(h.in.Text()), pos, successors, player)
		if err != nil {
			fmt.Fprintln(h.out, err)
			continue
		}
		return choice, metrics.SearchMetric{Searcher: "human", Candidates: 1}, nil
	}
}

// choose accepts a listed index or a move description such as "slide 03-02".
func (h *humanAgent) choose(input string, pos game.Position, successors []game.Position, player game.Color) (game.Position, error) {
	if i, err := strconv.Atoi(input); err == nil {
		if i < 1 || i > len(successors) {
			return game.Position{}, fmt.Errorf("choose a move between 1 and %d", len(successors))
		}
		return successors[i-1], nil
	}
	for _, next := range successors {
		if game.Diff(pos, next, player).String() == input {
			return next, nil
		}
	}
	return game.Position{}, fmt.Errorf("no legal move %q", input)
}
