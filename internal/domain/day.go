package domain

import (
	"fmt"
	"slices"
)

// Part identifies one half of a day's puzzle. The zero value means "both".
type Part int

const (
	PartBoth Part = 0
	Part1    Part = 1
	Part2    Part = 2
)

// Parts lists the parts of a day in execution order.
var Parts = []Part{Part1, Part2}

func (p Part) Valid() bool { return p == Part1 || p == Part2 }

// Key addresses one stored answer.
type Key struct {
	Day  int
	Part Part
}

func (k Key) String() string {
	return fmt.Sprintf("day%d part%d", k.Day, k.Part)
}

// Less orders keys by day, then part.
func (k Key) Less(other Key) bool {
	if k.Day != other.Day {
		return k.Day < other.Day
	}
	return k.Part < other.Part
}

func compareKeys(a, b Key) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}

// Selection is what the user asked to run. Day 0 means every registered day.
type Selection struct {
	Day  int
	Part Part
}

// Target is one resolved (day, part) pair to execute.
type Target = Key

// Entry is a computed answer ready to be saved or verified.
type Entry struct {
	Key    Key
	Answer string
}

// Answers is a baseline of previously recorded answers.
type Answers map[Key]string

// Keys returns the stored keys in ascending (day, part) order.
func (a Answers) Keys() []Key {
	out := make([]Key, 0, len(a))
	for k := range a {
		out = append(out, k)
	}
	slices.SortFunc(out, compareKeys)
	return out
}

// Merge returns a copy of a with the given entries applied on top.
func (a Answers) Merge(entries []Entry) Answers {
	out := make(Answers, len(a)+len(entries))
	for k, v := range a {
		out[k] = v
	}
	for _, e := range entries {
		out[e.Key] = e.Answer
	}
	return out
}
