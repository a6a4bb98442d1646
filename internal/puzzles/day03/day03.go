// Package day03 picks the largest joltage from each battery bank.
package day03

import (
	"fmt"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/puzzles/parse"
)

// largest returns the biggest k-digit number that keeps the digits of bank
// in order. It drops a smaller digit whenever a larger one follows and drops
// are still available.
func largest(bank []int, k int) (uint64, error) {
	if len(bank) < k {
		return 0, fmt.Errorf("bank of %d batteries cannot supply %d digits", len(bank), k)
	}

	drops := len(bank) - k
	stack := make([]int, 0, len(bank))
	for _, d := range bank {
		for drops > 0 && len(stack) > 0 && stack[len(stack)-1] < d {
			stack = stack[:len(stack)-1]
			drops--
		}
		stack = append(stack, d)
	}
	return parse.FromDigits[uint64](stack[:k]), nil
}

func total(input string, k int) (domain.Solution, error) {
	var sum uint64
	for i, l := range parse.NonEmptyLines(input) {
		bank, err := parse.Digits(l)
		if err != nil {
			return domain.Solution{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		n, err := largest(bank, k)
		if err != nil {
			return domain.Solution{}, fmt.Errorf("line %d: %w", i+1, err)
		}
		sum += n
	}
	return domain.Int(sum), nil
}

func Part1(input string) (domain.Solution, error) { return total(input, 2) }

func Part2(input string) (domain.Solution, error) { return total(input, 12) }
