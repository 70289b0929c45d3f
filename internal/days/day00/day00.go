// Package day00 is a warm-up puzzle: a list of numbers, counted and summed.
package day00

import (
	"strings"
	"unicode"

	customErr "github.com/Rocker-Mitchell/aoc-2025/pkg/errors"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/parse"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/solution"
)

// Solution sums and counts a list of numbers.
type Solution struct{}

// Runnable returns the day 0 solution ready to run.
func Runnable() solution.Runnable {
	return solution.Parsed[[]uint32, int, uint32](Solution{})
}

func (Solution) Name() string {
	return "Day 0: Example Solution"
}

func (Solution) Parse(input string) ([]uint32, error) {
	numbers, err := parse.Collect(parse.Lines(strings.TrimRightFunc(input, unicode.IsSpace), parse.Int[uint32]))
	if err != nil {
		return nil, err
	}
	if len(numbers) == 0 {
		return nil, customErr.ErrEmptyInput
	}
	return numbers, nil
}

func (Solution) Part1(numbers []uint32) int {
	return len(numbers)
}

func (Solution) Part2(numbers []uint32) uint32 {
	var sum uint32
	for _, n := range numbers {
		sum += n
	}
	return sum
}
