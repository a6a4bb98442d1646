// Package day06 solves the cephalopod math worksheet: columns of numbers
// with an operator underneath each problem.
package day06

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aalvaropc/advent/internal/domain"
	"github.com/aalvaropc/advent/internal/puzzles/parse"
)

type problem struct {
	op   byte
	nums []uint64
}

func (p problem) eval() (uint64, error) {
	switch p.op {
	case '+':
		return parse.Sum(p.nums), nil
	case '*':
		return parse.Product(p.nums), nil
	default:
		return 0, fmt.Errorf("invalid operator %q", string(p.op))
	}
}

func split(input string) ([]string, string, error) {
	lines := parse.NonEmptyLines(input)
	if len(lines) < 2 {
		return nil, "", errors.New("worksheet needs number rows and an operator row")
	}
	return lines[:len(lines)-1], lines[len(lines)-1], nil
}

// byRows reads each row left to right; problem i is column i.
func byRows(input string) ([]problem, error) {
	rows, opLine, err := split(input)
	if err != nil {
		return nil, err
	}

	ops := strings.Fields(opLine)
	problems := make([]problem, len(ops))
	for i, op := range ops {
		problems[i].op = op[0]
	}

	for r, row := range rows {
		nums, err := parse.Ints[uint64](row, "")
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", r+1, err)
		}
		if len(nums) != len(problems) {
			return nil, fmt.Errorf("row %d: %d numbers for %d problems", r+1, len(nums), len(problems))
		}
		for i, n := range nums {
			problems[i].nums = append(problems[i].nums, n)
		}
	}
	return problems, nil
}

// byColumns reads character columns right to left; each column's digits,
// top to bottom, form one number. The operator sits under the leftmost
// column of its problem.
func byColumns(input string) ([]problem, error) {
	rows, opLine, err := split(input)
	if err != nil {
		return nil, err
	}

	width := len(opLine)
	for _, r := range rows {
		width = max(width, len(r))
	}

	var (
		problems []problem
		cur      []uint64
	)
	for x := width - 1; x >= 0; x-- {
		var n uint64
		found := false
		for _, r := range rows {
			if x < len(r) && r[x] >= '0' && r[x] <= '9' {
				n = n*10 + uint64(r[x]-'0')
				found = true
			}
		}
		if found {
			cur = append(cur, n)
		}

		if x < len(opLine) && (opLine[x] == '+' || opLine[x] == '*') {
			problems = append(problems, problem{op: opLine[x], nums: cur})
			cur = nil
		}
	}
	return problems, nil
}

func grandTotal(problems []problem) (domain.Solution, error) {
	var total uint64
	for _, p := range problems {
		v, err := p.eval()
		if err != nil {
			return domain.Solution{}, err
		}
		total += v
	}
	return domain.Int(total), nil
}

func Part1(input string) (domain.Solution, error) {
	ps, err := byRows(input)
	if err != nil {
		return domain.Solution{}, err
	}
	return grandTotal(ps)
}

func Part2(input string) (domain.Solution, error) {
	ps, err := byColumns(input)
	if err != nil {
		return domain.Solution{}, err
	}
	return grandTotal(ps)
}
