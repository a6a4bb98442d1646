// Package day02 finds invalid product IDs: numbers made of one digit
// sequence repeated.
package day02

import (
	"strings"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/puzzles/parse"
)

type idRange struct{ lo, hi uint64 }

func parseRanges(input string) ([]idRange, error) {
	var out []idRange
	for _, f := range strings.Split(strings.TrimSpace(input), ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		lo, hi, err := parse.Range[uint64](f)
		if err != nil {
			return nil, err
		}
		out = append(out, idRange{lo: lo, hi: hi})
	}
	return out, nil
}

func digitCount(n uint64) int {
	c := 1
	for n >= 10 {
		n /= 10
		c++
	}
	return c
}

func pow10(n int) uint64 {
	p := uint64(1)
	for ; n > 0; n-- {
		p *= 10
	}
	return p
}

// divisors returns the divisors of n in ascending order.
func divisors(n int) []int {
	var low, high []int
	for i := 1; i*i <= n; i++ {
		if n%i != 0 {
			continue
		}
		low = append(low, i)
		if j := n / i; j != i {
			high = append(high, j)
		}
	}
	for i := len(high) - 1; i >= 0; i-- {
		low = append(low, high[i])
	}
	return low
}

// repeatsTwice reports whether id is some sequence written exactly twice,
// like 6464 or 123123.
func repeatsTwice(id uint64) bool {
	digits := digitCount(id)
	if digits%2 == 1 {
		return false
	}
	d := pow10(digits / 2)
	return id/d == id%d
}

// repeatsWithLen reports whether id is made of its last size digits
// repeated over its whole length.
func repeatsWithLen(id uint64, size, digits int) bool {
	d := pow10(size)
	seq := id % d
	for n, i := id, 0; i < digits/size-1; i++ {
		n /= d
		if n%d != seq {
			return false
		}
	}
	return true
}

// repeats reports whether id is a sequence written two or more times.
func repeats(id uint64) bool {
	digits := digitCount(id)
	for _, size := range divisors(digits) {
		if size < digits && repeatsWithLen(id, size, digits) {
			return true
		}
	}
	return false
}

func sumInvalid(input string, invalid func(uint64) bool) (domain.Solution, error) {
	ranges, err := parseRanges(input)
	if err != nil {
		return domain.Solution{}, err
	}

	var sum uint64
	for _, r := range ranges {
		for id := r.lo; id <= r.hi; id++ {
			if invalid(id) {
				sum += id
			}
		}
	}
	return domain.Int(sum), nil
}

// Part1 sums IDs made of a sequence repeated exactly twice.
func Part1(input string) (domain.Solution, error) {
	return sumInvalid(input, repeatsTwice)
}

// Part2 sums IDs made of a sequence repeated at least twice.
func Part2(input string) (domain.Solution, error) {
	return sumInvalid(input, repeats)
}
