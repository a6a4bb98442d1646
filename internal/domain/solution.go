package domain

import (
	"encoding/json"
	"strconv"

	"golang.org/x/exp/constraints"
)

// SolutionKind tags which variant a Solution holds.
type SolutionKind uint8

const (
	SolutionNone SolutionKind = iota
	SolutionInteger
	SolutionText
)

// Solution is the answer produced by one part of one day: either an
// integer or a piece of text. The zero value is "no answer".
type Solution struct {
	kind SolutionKind
	neg  bool
	mag  uint64
	text string
}

// Int wraps any Go integer as a Solution.
func Int[T constraints.Integer](v T) Solution {
	if v < 0 {
		return Solution{kind: SolutionInteger, neg: true, mag: uint64(-int64(v))}
	}
	return Solution{kind: SolutionInteger, mag: uint64(v)}
}

// Text wraps a textual answer.
func Text(s string) Solution {
	return Solution{kind: SolutionText, text: s}
}

func (s Solution) Kind() SolutionKind { return s.kind }

func (s Solution) IsZero() bool { return s.kind == SolutionNone }

// String is the one formatting path used for printing, saving and comparing.
func (s Solution) String() string {
	switch s.kind {
	case SolutionInteger:
		out := strconv.FormatUint(s.mag, 10)
		if s.neg {
			return "-" + out
		}
		return out
	case SolutionText:
		return s.text
	default:
		return ""
	}
}

func (s Solution) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case SolutionInteger:
		return []byte(s.String()), nil
	case SolutionText:
		return json.Marshal(s.text)
	default:
		return []byte("null"), nil
	}
}
