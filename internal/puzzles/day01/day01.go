// Package day01 turns a safe dial: a 0..99 ring starting at 50, driven by
// L<n>/R<n> rotations.
package day01

import (
	"fmt"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/puzzles/parse"
)

const (
	dialSize = 100
	start    = 50
)

type rotation struct {
	left   bool
	clicks int
}

func parseRotations(input string) ([]rotation, error) {
	var out []rotation
	for i, l := range parse.NonEmptyLines(input) {
		if len(l) < 2 || (l[0] != 'L' && l[0] != 'R') {
			return nil, fmt.Errorf("line %d: invalid rotation %q", i+1, l)
		}
		n, err := parse.Int[int](l[1:])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("line %d: invalid rotation %q", i+1, l)
		}
		out = append(out, rotation{left: l[0] == 'L', clicks: n})
	}
	return out, nil
}

// turn applies r to pos and returns the new position and how many clicks
// landed on 0 along the way, the final click included.
func turn(pos int, r rotation) (int, int) {
	if !r.left {
		return (pos + r.clicks) % dialSize, (pos + r.clicks) / dialSize
	}

	zeros := 0
	switch {
	case pos == 0:
		zeros = r.clicks / dialSize
	case r.clicks >= pos:
		zeros = (r.clicks-pos)/dialSize + 1
	}
	next := ((pos-r.clicks)%dialSize + dialSize) % dialSize
	return next, zeros
}

// Part1 counts rotations that leave the dial at 0.
func Part1(input string) (domain.Solution, error) {
	rs, err := parseRotations(input)
	if err != nil {
		return domain.Solution{}, err
	}

	pos, n := start, 0
	for _, r := range rs {
		pos, _ = turn(pos, r)
		if pos == 0 {
			n++
		}
	}
	return domain.Int(n), nil
}

// Part2 counts every click that lands on 0.
func Part2(input string) (domain.Solution, error) {
	rs, err := parseRotations(input)
	if err != nil {
		return domain.Solution{}, err
	}

	pos, n := start, 0
	for _, r := range rs {
		var z int
		pos, z = turn(pos, r)
		n += z
	}
	return domain.Int(n), nil
}
