package day07

import "testing"

const sample = `.......S.......
...............
.......^.......
...............
......^.^......
...............
.....^.^.^.....
...............
....^.^...^....
...............
...^.^...^.^...
...............
..^...^.....^..
...............
.^.^.^.^.^...^.
...............
`

func TestPart1(t *testing.T) {
	got, err := Part1(sample)
	if err != nil {
		t.Fatalf("Part1 error: %v", err)
	}
	if got.String() != "21" {
		t.Fatalf("expected 21, got %s", got)
	}
}

func TestPart2(t *testing.T) {
	got, err := Part2(sample)
	if err != nil {
		t.Fatalf("Part2 error: %v", err)
	}
	if got.String() != "40" {
		t.Fatalf("expected 40, got %s", got)
	}
}

func TestMissingStart(t *testing.T) {
	if _, err := Part1("...\n.^.\n"); err == nil {
		t.Fatalf("expected error without start")
	}
}
