// Package day08 wires junction boxes into circuits, closest pairs first.
package day08

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/puzzles/parse"
)

// Connections made before Part1 measures the circuits.
const connections = 1000

type point struct{ x, y, z int64 }

func (p point) dist2(q point) int64 {
	dx, dy, dz := p.x-q.x, p.y-q.y, p.z-q.z
	return dx*dx + dy*dy + dz*dz
}

func parseBoxes(input string) ([]point, error) {
	var out []point
	for i, l := range parse.NonEmptyLines(input) {
		v, err := parse.Ints[int64](strings.TrimSpace(l), ",")
		if err != nil || len(v) != 3 {
			return nil, fmt.Errorf("line %d: invalid coordinate %q", i+1, l)
		}
		out = append(out, point{x: v[0], y: v[1], z: v[2]})
	}
	return out, nil
}

type pair struct {
	a, b int
	d    int64
}

// closestPairs lists every pair of boxes, nearest first.
func closestPairs(boxes []point) []pair {
	pairs := make([]pair, 0, len(boxes)*(len(boxes)-1)/2)
	for i := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			pairs = append(pairs, pair{a: i, b: j, d: boxes[i].dist2(boxes[j])})
		}
	}
	slices.SortStableFunc(pairs, func(p, q pair) int {
		switch {
		case p.d < q.d:
			return -1
		case p.d > q.d:
			return 1
		default:
			return 0
		}
	})
	return pairs
}

// disjointSet is a union-find over box indexes.
type disjointSet struct {
	parent []int
	size   []int
}

func newDisjointSet(n int) *disjointSet {
	s := &disjointSet{parent: make([]int, n), size: make([]int, n)}
	for i := range s.parent {
		s.parent[i] = i
		s.size[i] = 1
	}
	return s
}

func (s *disjointSet) find(x int) int {
	for s.parent[x] != x {
		s.parent[x] = s.parent[s.parent[x]]
		x = s.parent[x]
	}
	return x
}

// union reports whether x and y were in different sets.
func (s *disjointSet) union(x, y int) bool {
	x, y = s.find(x), s.find(y)
	if x == y {
		return false
	}
	if s.size[x] < s.size[y] {
		x, y = y, x
	}
	s.parent[y] = x
	s.size[x] += s.size[y]
	return true
}

// circuitSizes returns the sizes of circuits with more than one box,
// largest first.
func (s *disjointSet) circuitSizes() []int {
	var out []int
	for i, p := range s.parent {
		if p == i && s.size[i] > 1 {
			out = append(out, s.size[i])
		}
	}
	slices.Sort(out)
	slices.Reverse(out)
	return out
}

// largestCircuits multiplies the three biggest circuits after n
// connections.
func largestCircuits(boxes []point, n int) uint64 {
	set := newDisjointSet(len(boxes))
	pairs := closestPairs(boxes)
	for _, p := range pairs[:min(n, len(pairs))] {
		set.union(p.a, p.b)
	}

	sizes := set.circuitSizes()
	product := uint64(1)
	for _, size := range sizes[:min(3, len(sizes))] {
		product *= uint64(size)
	}
	return product
}

// lastMerge returns the pair whose connection joined the final two
// circuits.
func lastMerge(boxes []point) (point, point) {
	set := newDisjointSet(len(boxes))
	var last pair
	for _, p := range closestPairs(boxes) {
		if set.union(p.a, p.b) {
			last = p
		}
	}
	return boxes[last.a], boxes[last.b]
}

func Part1(input string) (domain.Solution, error) {
	boxes, err := parseBoxes(input)
	if err != nil {
		return domain.Solution{}, err
	}
	return domain.Int(largestCircuits(boxes, connections)), nil
}

// Part2 multiplies the X coordinates of the last two boxes connected.
func Part2(input string) (domain.Solution, error) {
	boxes, err := parseBoxes(input)
	if err != nil {
		return domain.Solution{}, err
	}
	if len(boxes) < 2 {
		return domain.Solution{}, errors.New("need at least two junction boxes")
	}
	a, b := lastMerge(boxes)
	return domain.Int(a.x * b.x), nil
}
