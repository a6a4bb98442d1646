package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKeyString(t *testing.T) {
	if got := (Key{Day: 7, Part: Part2}).String(); got != "day7 part2" {
		t.Fatalf("unexpected key string: %q", got)
	}
}

func TestAnswersKeys_Sorted(t *testing.T) {
	a := Answers{
		{Day: 10, Part: Part1}: "x",
		{Day: 2, Part: Part2}:  "y",
		{Day: 2, Part: Part1}:  "z",
	}
	want := []Key{
		{Day: 2, Part: Part1},
		{Day: 2, Part: Part2},
		{Day: 10, Part: Part1},
	}
	if diff := cmp.Diff(want, a.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestAnswersMerge_DoesNotMutate(t *testing.T) {
	base := Answers{{Day: 3, Part: Part1}: "old"}
	out := base.Merge([]Entry{
		{Key: Key{Day: 3, Part: Part1}, Answer: "new"},
		{Key: Key{Day: 5, Part: Part2}, Answer: "5b"},
	})

	if base[Key{Day: 3, Part: Part1}] != "old" {
		t.Fatalf("expected base untouched")
	}
	want := Answers{
		{Day: 3, Part: Part1}: "new",
		{Day: 5, Part: Part2}: "5b",
	}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestPartValid(t *testing.T) {
	if !Part1.Valid() || !Part2.Valid() {
		t.Fatalf("expected parts 1 and 2 valid")
	}
	if PartBoth.Valid() || Part(3).Valid() {
		t.Fatalf("expected 0 and 3 invalid")
	}
}
