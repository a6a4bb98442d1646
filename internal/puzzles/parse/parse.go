// Package parse has the small input helpers shared by the day solutions.
// Every function reports malformed input as an error; solutions never panic
// on bad input.
package parse

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Lines splits input into lines, dropping a trailing newline and any \r.
func Lines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.TrimRight(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// NonEmptyLines is Lines without blank lines.
func NonEmptyLines(input string) []string {
	var out []string
	for _, l := range Lines(input) {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

// Blocks splits input on blank lines.
func Blocks(input string) [][]string {
	var (
		out [][]string
		cur []string
	)
	for _, l := range Lines(input) {
		if strings.TrimSpace(l) == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// Int parses a base-10 integer, surrounding space allowed.
func Int[T constraints.Integer](s string) (T, error) {
	s = strings.TrimSpace(s)
	var zero T
	if s == "" {
		return zero, fmt.Errorf("expected a number, got empty string")
	}
	if isSigned[T]() {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return zero, fmt.Errorf("invalid number %q", s)
		}
		return T(v), nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return zero, fmt.Errorf("invalid number %q", s)
	}
	return T(v), nil
}

func isSigned[T constraints.Integer]() bool {
	var zero T
	return zero-1 < zero
}

// Ints parses every field of s separated by sep. An empty sep splits on
// whitespace.
func Ints[T constraints.Integer](s, sep string) ([]T, error) {
	var fields []string
	if sep == "" {
		fields = strings.Fields(s)
	} else {
		fields = strings.Split(s, sep)
	}

	out := make([]T, 0, len(fields))
	for _, f := range fields {
		v, err := Int[T](f)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Digits returns the decimal digits of s, one per byte.
func Digits(s string) ([]int, error) {
	out := make([]int, 0, len(s))
	for i := 0; i < len(s); i++ {
		v, err := DigitValue(s[i])
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func DigitValue(b byte) (int, error) {
	if b >= '0' && b <= '9' {
		return int(b - '0'), nil
	}
	return 0, fmt.Errorf("bogus digit %q", string(b))
}

// FromDigits folds digits into a number, most significant first.
func FromDigits[T constraints.Integer](digits []int) T {
	var n T
	for _, d := range digits {
		n = n*10 + T(d)
	}
	return n
}

// Range parses "a-b". Reversed bounds are swapped.
func Range[T constraints.Integer](s string) (lo, hi T, err error) {
	a, b, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return 0, 0, fmt.Errorf("invalid range %q", s)
	}
	if lo, err = Int[T](a); err != nil {
		return 0, 0, err
	}
	if hi, err = Int[T](b); err != nil {
		return 0, 0, err
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi, nil
}

type Number interface {
	constraints.Integer | constraints.Float
}

func Sum[T Number](vs []T) T {
	var s T
	for _, v := range vs {
		s += v
	}
	return s
}

func Product[T Number](vs []T) T {
	var p T = 1
	for _, v := range vs {
		p *= v
	}
	return p
}
