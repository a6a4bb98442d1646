package registry

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aalvaropc/advent/internal/domain"
)

func constant(v int) PartFunc {
	return func(string) (domain.Solution, error) { return domain.Int(v), nil }
}

func TestRegistry_AllSortedAscending(t *testing.T) {
	r := New()
	r.MustRegister(3, constant(3), constant(30))
	r.MustRegister(1, constant(1), constant(10))
	r.MustRegister(2, constant(2), constant(20))

	if diff := cmp.Diff([]int{1, 2, 3}, r.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}

	all := r.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 days, got %d", len(all))
	}
	seen := map[int]bool{}
	for i, d := range all {
		if seen[d.ID] {
			t.Fatalf("duplicate day %d in All()", d.ID)
		}
		seen[d.ID] = true
		if d.ID != i+1 {
			t.Fatalf("expected day %d at index %d, got %d", i+1, i, d.ID)
		}
	}
}

func TestRegistry_LookupReturnsEntry(t *testing.T) {
	r := New()
	r.MustRegister(5, constant(5), constant(50))

	d, ok := r.Lookup(5)
	if !ok {
		t.Fatalf("expected day 5 to be registered")
	}
	got, err := d.Func(domain.Part2)("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "50" {
		t.Fatalf("expected part 2 answer 50, got %s", got)
	}
	if d.Func(domain.PartBoth) != nil {
		t.Fatalf("expected nil solver for invalid part")
	}

	if _, ok := r.Lookup(6); ok {
		t.Fatalf("expected day 6 to be unknown")
	}
}

func TestRegistry_RegisterRejectsBadEntries(t *testing.T) {
	r := New()
	if err := r.Register(0, constant(0), constant(0)); err == nil {
		t.Fatalf("expected error for day 0")
	}
	if err := r.Register(1, nil, constant(0)); err == nil {
		t.Fatalf("expected error for nil part")
	}
	if err := r.Register(1, constant(1), constant(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(1, constant(1), constant(1)); err == nil {
		t.Fatalf("expected error for duplicate day")
	}
	if r.Len() != 1 {
		t.Fatalf("expected 1 day, got %d", r.Len())
	}
}

func TestRegistry_MustRegisterPanicsOnDuplicate(t *testing.T) {
	r := New()
	r.MustRegister(1, constant(1), constant(1))

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on duplicate registration")
		}
	}()
	r.MustRegister(1, constant(1), constant(1))
}

func TestRegistry_ResolveUnknownDay(t *testing.T) {
	r := New()
	r.MustRegister(1, constant(1), constant(10))

	if d, err := r.Resolve(1); err != nil || d.ID != 1 {
		t.Fatalf("expected day 1, got %+v err=%v", d, err)
	}

	_, err := r.Resolve(4)
	if !domain.IsKind(err, domain.KindUnknownDay) {
		t.Fatalf("expected unknown_day, got %v", err)
	}
	if !strings.Contains(err.Error(), "day 4 is not registered") {
		t.Fatalf("expected day in message, got %q", err.Error())
	}
}
