// Package day06 solves a cephalopod math worksheet. Each part reads the
// worksheet its own way, so parsing happens inside each part.
package day06

import (
	"fmt"
	"strings"
	"unicode"

	customErr "github.com/Rocker-Mitchell/aoc-2025/pkg/errors"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/parse"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/solution"
)

type Operation int

const (
	Add Operation = iota + 1
	Multiply
)

type Problem struct {
	Numbers   []uint64
	Operation Operation
}

func (p Problem) Calculate() uint64 {
	switch p.Operation {
	case Add:
		var sum uint64
		for _, n := range p.Numbers {
			sum += n
		}
		return sum
	case Multiply:
		product := uint64(1)
		for _, n := range p.Numbers {
			product *= n
		}
		return product
	default:
		panic(fmt.Sprintf("unknown operation %d", p.Operation))
	}
}

// Solution does the cephalopod math worksheet.
type Solution struct{}

// Runnable returns the day 6 solution ready to run.
func Runnable() solution.Runnable {
	return solution.BothParts[uint64, uint64](Solution{})
}

func (Solution) Name() string {
	return "Day 6: Trash Compactor"
}

// Part1 reads each whitespace separated column as one problem, with the
// operation on the last row.
func (Solution) Part1(input string) (uint64, error) {
	lines := parse.SplitLines(input)
	if len(lines) == 0 {
		return 0, customErr.ErrEmptyInput
	}

	rows := make([][]string, 0, len(lines))
	cols := len(strings.Fields(lines[0]))
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			return 0, customErr.InvalidLineFromZeroIndex(i, customErr.ErrEmptyLine)
		}
		if len(fields) != cols {
			return 0, customErr.InvalidLineFromZeroIndex(i, &customErr.LineLengthError{Expected: cols, Actual: len(fields)})
		}
		rows = append(rows, fields)
	}

	last := len(rows) - 1
	var total uint64
	for col := range cols {
		problem := Problem{Numbers: make([]uint64, 0, last)}
		for row := range last {
			n, err := parse.Int[uint16](rows[row][col])
			if err != nil {
				return 0, customErr.InvalidLineFromZeroIndex(row, err)
			}
			problem.Numbers = append(problem.Numbers, uint64(n))
		}

		op, err := parseOperationToken(rows[last][col])
		if err != nil {
			return 0, customErr.InvalidLineFromZeroIndex(last, err)
		}
		problem.Operation = op
		total += problem.Calculate()
	}
	return total, nil
}

// Part2 reads numbers top to bottom within each character column. Problems
// are separated by columns of spaces, and the operation sits under the
// problem's first column.
func (Solution) Part2(input string) (uint64, error) {
	sheet, err := parse.Grid(input, parse.Runes)
	if err != nil {
		return 0, err
	}

	var total uint64
	var current *Problem
	for x := range sheet.Cols() {
		column := sheet.Column(x)
		if isBlank(column) {
			if current == nil {
				panic(fmt.Sprintf("operation not resolved for problem ending at column %d", x))
			}
			total += current.Calculate()
			current = nil
			continue
		}

		bottom := column[len(column)-1]
		if !unicode.IsSpace(bottom) {
			if current != nil {
				panic(fmt.Sprintf("still tracking a previous operation at column %d", x))
			}
			op, err := parseOperationChar(bottom)
			if err != nil {
				return 0, customErr.InvalidLineFromZeroIndex(sheet.Rows()-1, err)
			}
			current = &Problem{Operation: op}
		}
		if current == nil {
			panic(fmt.Sprintf("no operation found for column %d", x))
		}

		n, err := digitsToNumber(column[:len(column)-1])
		if err != nil {
			return 0, err
		}
		current.Numbers = append(current.Numbers, n)
	}
	if current != nil {
		total += current.Calculate()
	}
	return total, nil
}

func parseOperationToken(s string) (Operation, error) {
	switch s {
	case "+":
		return Add, nil
	case "*":
		return Multiply, nil
	default:
		return 0, &customErr.StringError{String: s}
	}
}

func parseOperationChar(c rune) (Operation, error) {
	switch c {
	case '+':
		return Add, nil
	case '*':
		return Multiply, nil
	default:
		return 0, &customErr.CharError{Char: c}
	}
}

func digitsToNumber(digits []rune) (uint64, error) {
	var n uint64
	for _, c := range digits {
		if unicode.IsSpace(c) {
			continue
		}
		d, err := parse.Digit[uint64](c)
		if err != nil {
			return 0, err
		}
		n = n*10 + d
	}
	return n, nil
}

func isBlank(column []rune) bool {
	for _, c := range column {
		if !unicode.IsSpace(c) {
			return false
		}
	}
	return true
}
