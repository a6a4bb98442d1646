package day08

import "testing"

const sample = `162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689
`

func TestLargestCircuits(t *testing.T) {
	boxes, err := parseBoxes(sample)
	if err != nil {
		t.Fatalf("parseBoxes error: %v", err)
	}
	if got := largestCircuits(boxes, 10); got != 40 {
		t.Fatalf("expected 40, got %d", got)
	}
}

func TestPart2(t *testing.T) {
	got, err := Part2(sample)
	if err != nil {
		t.Fatalf("Part2 error: %v", err)
	}
	if got.String() != "25272" {
		t.Fatalf("expected 25272, got %s", got)
	}
}

func TestDisjointSet(t *testing.T) {
	s := newDisjointSet(4)
	if !s.union(0, 1) || s.union(1, 0) {
		t.Fatalf("unexpected union results")
	}
	if s.find(0) != s.find(1) || s.find(2) == s.find(0) {
		t.Fatalf("unexpected roots")
	}
}

func TestParseBoxes_Bad(t *testing.T) {
	if _, err := Part1("1,2\n"); err == nil {
		t.Fatalf("expected error for 2D coordinate")
	}
}
