package usecase

import (
	"fmt"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/registry"
)

// ResolveSelection expands a selection into the ordered (day, part) pairs
// to run. Day 0 selects every registered day; Part 0 selects both parts.
func ResolveSelection(reg *registry.Registry, sel domain.Selection) ([]domain.Target, error) {
	if sel.Day < 0 {
		return nil, &domain.OpError{
			Op:   "selection.resolve",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%w: day must be positive, got %d", domain.ErrInvalidConfig, sel.Day),
		}
	}
	if sel.Part != domain.PartBoth && !sel.Part.Valid() {
		return nil, &domain.OpError{
			Op:   "selection.resolve",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%w: part must be 1 or 2, got %d", domain.ErrInvalidConfig, sel.Part),
		}
	}

	days := reg.IDs()
	if sel.Day != 0 {
		if _, err := reg.Resolve(sel.Day); err != nil {
			return nil, err
		}
		days = []int{sel.Day}
	}

	parts := domain.Parts
	if sel.Part != domain.PartBoth {
		parts = []domain.Part{sel.Part}
	}

	out := make([]domain.Target, 0, len(days)*len(parts))
	for _, d := range days {
		for _, p := range parts {
			out = append(out, domain.Target{Day: d, Part: p})
		}
	}
	return out, nil
}
