// Package day05 checks ingredient IDs against the fresh ID ranges.
package day05

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/puzzles/parse"
)

// span is an inclusive ID range.
type span struct{ lo, hi uint64 }

func (s span) size() uint64 { return s.hi - s.lo + 1 }

// merge sorts spans and folds overlapping or adjacent ones together.
func merge(spans []span) []span {
	sorted := slices.Clone(spans)
	slices.SortFunc(sorted, func(a, b span) int {
		switch {
		case a.lo < b.lo:
			return -1
		case a.lo > b.lo:
			return 1
		default:
			return 0
		}
	})

	var out []span
	for _, s := range sorted {
		if n := len(out); n > 0 && s.lo <= out[n-1].hi+1 {
			out[n-1].hi = max(out[n-1].hi, s.hi)
			continue
		}
		out = append(out, s)
	}
	return out
}

func contains(merged []span, id uint64) bool {
	i := sort.Search(len(merged), func(i int) bool { return merged[i].hi >= id })
	return i < len(merged) && merged[i].lo <= id
}

func parseDatabase(input string) ([]span, []uint64, error) {
	blocks := parse.Blocks(input)
	if len(blocks) == 0 {
		return nil, nil, errors.New("empty database")
	}

	spans := make([]span, 0, len(blocks[0]))
	for _, l := range blocks[0] {
		lo, hi, err := parse.Range[uint64](l)
		if err != nil {
			return nil, nil, err
		}
		spans = append(spans, span{lo: lo, hi: hi})
	}

	var ids []uint64
	if len(blocks) > 1 {
		for _, l := range blocks[1] {
			id, err := parse.Int[uint64](l)
			if err != nil {
				return nil, nil, fmt.Errorf("ingredient id: %w", err)
			}
			ids = append(ids, id)
		}
	}
	return merge(spans), ids, nil
}

// Part1 counts available ingredients that are fresh.
func Part1(input string) (domain.Solution, error) {
	merged, ids, err := parseDatabase(input)
	if err != nil {
		return domain.Solution{}, err
	}

	n := 0
	for _, id := range ids {
		if contains(merged, id) {
			n++
		}
	}
	return domain.Int(n), nil
}

// Part2 counts every ID the fresh ranges cover.
func Part2(input string) (domain.Solution, error) {
	merged, _, err := parseDatabase(input)
	if err != nil {
		return domain.Solution{}, err
	}

	var total uint64
	for _, s := range merged {
		total += s.size()
	}
	return domain.Int(total), nil
}
