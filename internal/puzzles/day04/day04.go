// Package day04 finds paper rolls a forklift can reach.
package day04

import (
	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/puzzles/grid"
)

const (
	roll  = '@'
	empty = '.'

	// A roll is reachable when fewer than this many rolls surround it.
	crowded = 4
)

func accessible(g *grid.Grid[byte]) []grid.Pos {
	var out []grid.Pos
	g.Each(func(p grid.Pos, v byte) {
		if v != roll {
			return
		}
		n := 0
		for _, q := range g.Neighbors(p) {
			if g.At(q) == roll {
				n++
			}
		}
		if n < crowded {
			out = append(out, p)
		}
	})
	return out
}

// Part1 counts the rolls that are reachable right away.
func Part1(input string) (domain.Solution, error) {
	g, err := grid.Bytes(input)
	if err != nil {
		return domain.Solution{}, err
	}
	return domain.Int(len(accessible(g))), nil
}

// Part2 keeps removing every reachable roll until none is left reachable
// and counts how many were removed.
func Part2(input string) (domain.Solution, error) {
	g, err := grid.Bytes(input)
	if err != nil {
		return domain.Solution{}, err
	}

	removed := 0
	for {
		ps := accessible(g)
		if len(ps) == 0 {
			break
		}
		for _, p := range ps {
			g.Set(p, empty)
		}
		removed += len(ps)
	}
	return domain.Int(removed), nil
}
