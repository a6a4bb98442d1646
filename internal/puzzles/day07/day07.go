// Package day07 follows tachyon beams down a manifold of splitters.
package day07

import (
	"errors"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/puzzles/grid"
)

const (
	startCell = 'S'
	splitter  = '^'
)

func load(input string) (*grid.Grid[byte], grid.Pos, error) {
	g, err := grid.Bytes(input)
	if err != nil {
		return nil, grid.Pos{}, err
	}
	if g.Height() == 0 {
		return nil, grid.Pos{}, errors.New("empty manifold")
	}
	for x, c := range g.Row(0) {
		if c == startCell {
			return g, grid.Pos{X: x, Y: 0}, nil
		}
	}
	return nil, grid.Pos{}, errors.New("no start location in the first row")
}

// step moves every beam one row down. A beam hitting a splitter continues
// from both sides of it. counts holds how many timelines share a column;
// it returns the next counts and the number of splitters hit.
func step(g *grid.Grid[byte], y int, counts map[int]int) (map[int]int, int) {
	next := make(map[int]int, len(counts))
	splits := 0
	for x, n := range counts {
		p := grid.Pos{X: x, Y: y}
		if v, ok := g.Get(p); ok && v == splitter {
			splits++
			next[p.Left().X] += n
			next[p.Right().X] += n
			continue
		}
		next[x] += n
	}
	return next, splits
}

func simulate(input string) (splits, timelines int, err error) {
	g, start, err := load(input)
	if err != nil {
		return 0, 0, err
	}

	counts := map[int]int{start.X: 1}
	for y := 1; y < g.Height(); y++ {
		var s int
		counts, s = step(g, y, counts)
		splits += s
	}
	for _, n := range counts {
		timelines += n
	}
	return splits, timelines, nil
}

// Part1 counts how many times a beam is split.
func Part1(input string) (domain.Solution, error) {
	splits, _, err := simulate(input)
	if err != nil {
		return domain.Solution{}, err
	}
	return domain.Int(splits), nil
}

// Part2 counts the timelines a single particle ends up in.
func Part2(input string) (domain.Solution, error) {
	_, timelines, err := simulate(input)
	if err != nil {
		return domain.Solution{}, err
	}
	return domain.Int(timelines), nil
}
