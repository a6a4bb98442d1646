package day05

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sample = `3-5
10-14
16-20
12-18

1
5
8
11
17
32
`

func TestMerge(t *testing.T) {
	got := merge([]span{{lo: 10, hi: 14}, {lo: 3, hi: 5}, {lo: 6, hi: 6}, {lo: 12, hi: 18}, {lo: 16, hi: 20}})
	want := []span{{lo: 3, hi: 6}, {lo: 10, hi: 20}}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(span{})); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestBackwardsRange(t *testing.T) {
	got, err := Part2("5-3\n\n")
	if err != nil {
		t.Fatalf("Part2 error: %v", err)
	}
	if got.String() != "3" {
		t.Fatalf("expected 3, got %s", got)
	}
}

func TestPart1(t *testing.T) {
	got, err := Part1(sample)
	if err != nil {
		t.Fatalf("Part1 error: %v", err)
	}
	if got.String() != "3" {
		t.Fatalf("expected 3, got %s", got)
	}
}

func TestPart2(t *testing.T) {
	got, err := Part2(sample)
	if err != nil {
		t.Fatalf("Part2 error: %v", err)
	}
	if got.String() != "14" {
		t.Fatalf("expected 14, got %s", got)
	}
}
