package parse

import (
	"unicode/utf8"

	customErr "github.com/Rocker-Mitchell/aoc-2025/pkg/errors"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/grid"
)

// Grid parses input as a rectangular grid of characters. It is GridWithOffset
// with a zero offset.
func Grid[T any](input string, parser func(p grid.Point, c rune) (T, error)) (*grid.Grid[T], error) {
	return GridWithOffset(input, 0, parser)
}

// GridWithOffset parses input as a rectangular grid of characters.
//
// The first line fixes the column count. Every cell is passed to parser in
// row-major order, with X the column and Y the row of the cell. Widths are
// counted in characters, not bytes.
//
// It fails with ErrEmptyInput when input has no lines. An empty line or a line
// of the wrong width fails as an *InvalidLineError wrapping ErrEmptyLine or a
// *LineLengthError, and parser failures are wrapped the same way.
func GridWithOffset[T any](input string, offset int, parser func(p grid.Point, c rune) (T, error)) (*grid.Grid[T], error) {
	lines := SplitLines(input)
	if len(lines) == 0 {
		return nil, customErr.ErrEmptyInput
	}

	cols := utf8.RuneCountInString(lines[0])
	cells := make([]T, 0, cols*len(lines))
	for y, line := range lines {
		lineIndex := saturatingAdd(y, offset)
		if line == "" {
			return nil, customErr.InvalidLineFromZeroIndex(lineIndex, customErr.ErrEmptyLine)
		}
		if n := utf8.RuneCountInString(line); n != cols {
			return nil, customErr.InvalidLineFromZeroIndex(
				lineIndex,
				&customErr.LineLengthError{Expected: cols, Actual: n},
			)
		}

		x := 0
		for _, c := range line {
			v, err := parser(grid.Point{X: x, Y: y}, c)
			if err != nil {
				return nil, customErr.InvalidLineFromZeroIndex(lineIndex, err)
			}
			cells = append(cells, v)
			x++
		}
	}

	return grid.FromRowMajor(len(lines), cols, cells), nil
}

// Runes is a cell parser that keeps every character as is.
func Runes(_ grid.Point, c rune) (rune, error) {
	return c, nil
}
