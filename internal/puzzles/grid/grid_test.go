package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBytes(t *testing.T) {
	g, err := Bytes("abc\ndef\n")
	if err != nil {
		t.Fatalf("Bytes error: %v", err)
	}
	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("expected 3x2, got %dx%d", g.Width(), g.Height())
	}
	if g.At(Pos{0, 0}) != 'a' || g.At(Pos{2, 1}) != 'f' {
		t.Fatalf("unexpected cells")
	}
}

func TestBytes_RaggedRows(t *testing.T) {
	if _, err := Bytes("abc\nde\n"); err == nil {
		t.Fatalf("expected error for ragged rows")
	}
}

func TestRowCol(t *testing.T) {
	g, err := Bytes("abc\ndef\nghi")
	if err != nil {
		t.Fatalf("Bytes error: %v", err)
	}
	if diff := cmp.Diff([]byte("def"), g.Row(1)); diff != "" {
		t.Fatalf("row mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]byte("beh"), g.Col(1)); diff != "" {
		t.Fatalf("col mismatch (-want +got):\n%s", diff)
	}
}

func TestNeighbors(t *testing.T) {
	g := New(3, 3, 0)

	if n := len(g.Neighbors(Pos{0, 0})); n != 3 {
		t.Fatalf("expected 3 corner neighbors, got %d", n)
	}
	if n := len(g.Neighbors(Pos{1, 1})); n != 8 {
		t.Fatalf("expected 8 center neighbors, got %d", n)
	}
}

func TestGetSetClone(t *testing.T) {
	g := New(2, 2, 0)
	g.Set(Pos{1, 1}, 5)

	c := g.Clone()
	c.Set(Pos{1, 1}, 7)

	if v, ok := g.Get(Pos{1, 1}); !ok || v != 5 {
		t.Fatalf("expected original untouched, got %d", v)
	}
	if _, ok := g.Get(Pos{2, 0}); ok {
		t.Fatalf("expected out of bounds")
	}
	if p, ok := c.Find(func(v int) bool { return v == 7 }); !ok || p != (Pos{1, 1}) {
		t.Fatalf("unexpected find result %v %v", p, ok)
	}
}

func TestMDist(t *testing.T) {
	if d := (Pos{0, 0}).MDist(Pos{3, -4}); d != 7 {
		t.Fatalf("expected 7, got %d", d)
	}
}
