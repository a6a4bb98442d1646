// Package puzzles is the table of solved days.
package puzzles

import (
	"github.com/aalvaropc/advent/internal/puzzles/day01"
	"github.com/aalvaropc/advent/internal/puzzles/day02"
	"github.com/aalvaropc/advent/internal/puzzles/day03"
	"github.com/aalvaropc/advent/internal/puzzles/day04"
	"github.com/aalvaropc/advent/internal/puzzles/day05"
	"github.com/aalvaropc/advent/internal/puzzles/day06"
	"github.com/aalvaropc/advent/internal/puzzles/day07"
	"github.com/aalvaropc/advent/internal/puzzles/day08"
	"github.com/aalvaropc/advent/internal/registry"
)

// Registry returns a registry holding every solved day. Add new days here.
func Registry() *registry.Registry {
	r := registry.New()
	r.MustRegister(1, day01.Part1, day01.Part2)
	r.MustRegister(2, day02.Part1, day02.Part2)
	r.MustRegister(3, day03.Part1, day03.Part2)
	r.MustRegister(4, day04.Part1, day04.Part2)
	r.MustRegister(5, day05.Part1, day05.Part2)
	r.MustRegister(6, day06.Part1, day06.Part2)
	r.MustRegister(7, day07.Part1, day07.Part2)
	r.MustRegister(8, day08.Part1, day08.Part2)
	return r
}
