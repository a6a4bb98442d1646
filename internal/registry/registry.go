// Package registry holds the static table of puzzle days and their two
// solution functions.
package registry

import (
	"fmt"
	"slices"

	"github.com/aalvaropc/advent/internal/domain"
)

// PartFunc solves one part of a day from the raw puzzle input.
type PartFunc func(input string) (domain.Solution, error)

// Day associates a day number with its two part functions.
type Day struct {
	ID    int
	Part1 PartFunc
	Part2 PartFunc
}

// Func returns the solver for a part, or nil for an invalid part.
func (d Day) Func(p domain.Part) PartFunc {
	switch p {
	case domain.Part1:
		return d.Part1
	case domain.Part2:
		return d.Part2
	default:
		return nil
	}
}

// Registry is an ordered day table. It is filled once at startup and only
// read afterwards; it is not safe for concurrent registration.
type Registry struct {
	days  map[int]Day
	order []int
}

func New() *Registry {
	return &Registry{days: map[int]Day{}}
}

// Register adds a day. It fails on a non-positive id, a nil solver or a
// duplicate id.
func (r *Registry) Register(id int, part1, part2 PartFunc) error {
	if id <= 0 {
		return fmt.Errorf("register day %d: day must be positive", id)
	}
	if part1 == nil || part2 == nil {
		return fmt.Errorf("register day %d: both parts are required", id)
	}
	if _, dup := r.days[id]; dup {
		return fmt.Errorf("register day %d: already registered", id)
	}

	r.days[id] = Day{ID: id, Part1: part1, Part2: part2}
	i, _ := slices.BinarySearch(r.order, id)
	r.order = slices.Insert(r.order, i, id)
	return nil
}

// MustRegister is Register for the startup table; a bad entry is a
// programming error.
func (r *Registry) MustRegister(id int, part1, part2 PartFunc) {
	if err := r.Register(id, part1, part2); err != nil {
		panic(err)
	}
}

func (r *Registry) Lookup(id int) (Day, bool) {
	d, ok := r.days[id]
	return d, ok
}

// Resolve is Lookup for user input: an unregistered day is an unknown_day
// error rather than a missing entry.
func (r *Registry) Resolve(id int) (Day, error) {
	d, ok := r.days[id]
	if !ok {
		return Day{}, domain.UnknownDayError(id)
	}
	return d, nil
}

// All returns every day in ascending id order.
func (r *Registry) All() []Day {
	out := make([]Day, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.days[id])
	}
	return out
}

// IDs returns the registered day numbers in ascending order.
func (r *Registry) IDs() []int {
	return slices.Clone(r.order)
}

func (r *Registry) Len() int { return len(r.order) }
