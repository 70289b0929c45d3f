// Package day01 turns a safe dial through a list of rotations and counts how
// often it points at zero.
package day01

import (
	"errors"
	"unicode/utf8"

	customErr "github.com/Rocker-Mitchell/aoc-2025/pkg/errors"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/parse"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/solution"
)

const (
	dialStart = 50
	// The dial shows 0 through 99.
	dialSize = 100
)

type Direction int

const (
	Left Direction = iota + 1
	Right
)

type Rotation struct {
	Direction Direction
	Distance  uint16
}

// Solution turns the safe dial.
type Solution struct{}

// Runnable returns the day 1 solution ready to run.
func Runnable() solution.Runnable {
	return solution.Parsed[[]Rotation, int, int](Solution{})
}

func (Solution) Name() string {
	return "Day 1: Secret Entrance"
}

func (Solution) Parse(input string) ([]Rotation, error) {
	rotations, err := parse.Collect(parse.Lines(input, parseRotation))
	if err != nil {
		return nil, err
	}
	if len(rotations) == 0 {
		return nil, customErr.ErrEmptyInput
	}
	return rotations, nil
}

func parseRotation(line string) (Rotation, error) {
	first, size := utf8.DecodeRuneInString(line)
	if size == 0 {
		return Rotation{}, customErr.ErrEmptyLine
	}

	var dir Direction
	switch first {
	case 'L':
		dir = Left
	case 'R':
		dir = Right
	default:
		return Rotation{}, &customErr.CharError{Char: first}
	}

	distance, err := parse.Int[uint16](line[size:])
	if err != nil {
		var intErr *customErr.IntError
		if errors.As(err, &intErr) {
			return Rotation{}, customErr.NewIntError(line, intErr.Err)
		}
		return Rotation{}, err
	}
	return Rotation{Direction: dir, Distance: distance}, nil
}

// Part1 counts the rotations that leave the dial at zero.
func (Solution) Part1(rotations []Rotation) int {
	dial := dialStart
	zeros := 0
	for _, r := range rotations {
		dial, _ = rotate(dial, r)
		if dial == 0 {
			zeros++
		}
	}
	return zeros
}

// Part2 counts every time the dial points at zero, including while passing
// over it mid-rotation.
func (Solution) Part2(rotations []Rotation) int {
	dial := dialStart
	zeros := 0
	for _, r := range rotations {
		var passed int
		dial, passed = rotate(dial, r)
		zeros += passed
		if dial == 0 {
			zeros++
		}
	}
	return zeros
}

// rotate returns the new dial value and how many times the dial passed zero
// without stopping on it.
func rotate(dial int, r Rotation) (int, int) {
	moved := dial
	if r.Direction == Left {
		moved -= int(r.Distance)
	} else {
		moved += int(r.Distance)
	}

	next := remEuclid(moved, dialSize)
	passes := divEuclid(moved, dialSize)
	if passes < 0 {
		passes = -passes
	}

	// Leaving zero to the left and landing on zero to the right both count a
	// wrap that is not a pass.
	if passes > 0 && ((r.Direction == Left && dial == 0) || (r.Direction == Right && next == 0)) {
		passes--
	}
	return next, passes
}

func remEuclid(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

func divEuclid(a, b int) int {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}
