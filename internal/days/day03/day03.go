// Package day03 picks batteries from each bank to get the largest joltage.
package day03

import (
	"fmt"

	customErr "github.com/Rocker-Mitchell/aoc-2025/pkg/errors"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/parse"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/solution"
)

// Bank holds the joltage rating of each battery, 1 through 9.
type Bank []uint8

// Solution picks batteries for the highest joltage.
type Solution struct{}

// Runnable returns the day 3 solution ready to run.
func Runnable() solution.Runnable {
	return solution.Parsed[[]Bank, uint64, uint64](Solution{})
}

func (Solution) Name() string {
	return "Day 3: Lobby"
}

func (Solution) Parse(input string) ([]Bank, error) {
	banks, err := parse.Collect(parse.Lines(input, parseBank))
	if err != nil {
		return nil, err
	}
	if len(banks) == 0 {
		return nil, customErr.ErrEmptyInput
	}
	return banks, nil
}

func parseBank(line string) (Bank, error) {
	if line == "" {
		return nil, customErr.ErrEmptyLine
	}
	bank := make(Bank, 0, len(line))
	for _, c := range line {
		j, err := parse.Int[uint8](string(c))
		if err != nil {
			return nil, err
		}
		bank = append(bank, j)
	}
	return bank, nil
}

func (Solution) Part1(banks []Bank) uint64 {
	var sum uint64
	for _, bank := range banks {
		sum += maxJoltage(bank, 2)
	}
	return sum
}

func (Solution) Part2(banks []Bank) uint64 {
	var sum uint64
	for _, bank := range banks {
		sum += maxJoltage(bank, 12)
	}
	return sum
}

// maxJoltage turns on exactly batteries batteries, keeping their order, to
// form the largest number. Each digit is the earliest maximum that still
// leaves enough batteries for the digits after it.
func maxJoltage(bank Bank, batteries int) uint64 {
	if batteries <= 0 {
		panic("can't have a max joltage with zero batteries on")
	}
	if len(bank) < batteries {
		panic(fmt.Sprintf("can't calculate max joltage, expected %d batteries in bank but got %d", batteries, len(bank)))
	}

	var joltage uint64
	start := 0
	for remaining := batteries; remaining > 0; remaining-- {
		end := len(bank) - remaining + 1
		best := start
		for i := start + 1; i < end; i++ {
			if bank[i] > bank[best] {
				best = i
			}
		}
		joltage = joltage*10 + uint64(bank[best])
		start = best + 1
	}
	return joltage
}
