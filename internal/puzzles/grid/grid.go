// Package grid is a dense 2D grid addressed by (x, y), x being the column.
package grid

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/aalvaropc/advent/internal/puzzles/parse"
)

// Pos is a grid position; it may lie outside the grid.
type Pos struct {
	X, Y int
}

func (p Pos) Add(d Pos) Pos { return Pos{X: p.X + d.X, Y: p.Y + d.Y} }

func (p Pos) Up() Pos    { return Pos{X: p.X, Y: p.Y - 1} }
func (p Pos) Down() Pos  { return Pos{X: p.X, Y: p.Y + 1} }
func (p Pos) Left() Pos  { return Pos{X: p.X - 1, Y: p.Y} }
func (p Pos) Right() Pos { return Pos{X: p.X + 1, Y: p.Y} }

// MDist returns the manhattan distance between p and q.
func (p Pos) MDist(q Pos) int {
	return AbsDiff(p.X, q.X) + AbsDiff(p.Y, q.Y)
}

func AbsDiff[T constraints.Signed](a, b T) T {
	v := a - b
	if v < 0 {
		v = -v
	}
	return v
}

// Adjacent8 are the offsets of the eight surrounding cells.
var Adjacent8 = []Pos{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

type Grid[T any] struct {
	w, h int
	data []T
}

// New returns a w×h grid filled with fill.
func New[T any](w, h int, fill T) *Grid[T] {
	g := &Grid[T]{w: w, h: h, data: make([]T, w*h)}
	for i := range g.data {
		g.data[i] = fill
	}
	return g
}

// FromRows builds a grid from equally long rows.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	g := &Grid[T]{h: len(rows)}
	if len(rows) > 0 {
		g.w = len(rows[0])
	}
	g.data = make([]T, 0, g.w*g.h)
	for y, r := range rows {
		if len(r) != g.w {
			return nil, fmt.Errorf("row %d has width %d, want %d", y+1, len(r), g.w)
		}
		g.data = append(g.data, r...)
	}
	return g, nil
}

// Bytes parses one row per input line.
func Bytes(input string) (*Grid[byte], error) {
	lines := parse.NonEmptyLines(input)
	rows := make([][]byte, len(lines))
	for i, l := range lines {
		rows[i] = []byte(l)
	}
	return FromRows(rows)
}

func (g *Grid[T]) Width() int  { return g.w }
func (g *Grid[T]) Height() int { return g.h }

func (g *Grid[T]) In(p Pos) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.w && p.Y < g.h
}

// At returns the cell at p. It panics when p is outside the grid.
func (g *Grid[T]) At(p Pos) T {
	return g.data[g.index(p)]
}

// Get is At with a bounds check.
func (g *Grid[T]) Get(p Pos) (T, bool) {
	if !g.In(p) {
		var zero T
		return zero, false
	}
	return g.data[g.index(p)], true
}

func (g *Grid[T]) Set(p Pos, v T) {
	g.data[g.index(p)] = v
}

func (g *Grid[T]) index(p Pos) int {
	if !g.In(p) {
		panic(fmt.Sprintf("grid: %v outside %dx%d", p, g.w, g.h))
	}
	return p.Y*g.w + p.X
}

// Row returns a copy of row y.
func (g *Grid[T]) Row(y int) []T {
	out := make([]T, g.w)
	copy(out, g.data[y*g.w:(y+1)*g.w])
	return out
}

// Col returns a copy of column x, top to bottom.
func (g *Grid[T]) Col(x int) []T {
	out := make([]T, 0, g.h)
	for y := 0; y < g.h; y++ {
		out = append(out, g.data[y*g.w+x])
	}
	return out
}

// Neighbors returns the in-bounds cells around p.
func (g *Grid[T]) Neighbors(p Pos) []Pos {
	out := make([]Pos, 0, len(Adjacent8))
	for _, d := range Adjacent8 {
		if q := p.Add(d); g.In(q) {
			out = append(out, q)
		}
	}
	return out
}

// Find returns the first position, in row order, whose cell satisfies f.
func (g *Grid[T]) Find(f func(T) bool) (Pos, bool) {
	for i, v := range g.data {
		if f(v) {
			return Pos{X: i % g.w, Y: i / g.w}, true
		}
	}
	return Pos{}, false
}

// Each calls f for every cell in row order.
func (g *Grid[T]) Each(f func(p Pos, v T)) {
	for i, v := range g.data {
		f(Pos{X: i % g.w, Y: i / g.w}, v)
	}
}

// Clone returns an independent copy.
func (g *Grid[T]) Clone() *Grid[T] {
	out := &Grid[T]{w: g.w, h: g.h, data: make([]T, len(g.data))}
	copy(out.data, g.data)
	return out
}
