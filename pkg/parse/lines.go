// Package parse turns raw puzzle input into typed values, reporting failures
// with one-indexed line numbers.
package parse

import (
	"iter"
	"math"
	"strings"

	customErr "github.com/Rocker-Mitchell/aoc-2025/pkg/errors"
)

// Lines parses every line of input with parser. It is LinesWithOffset with a
// zero offset.
func Lines[T any](input string, parser func(line string) (T, error)) iter.Seq2[T, error] {
	return LinesWithOffset(input, 0, parser)
}

// LinesWithOffset lazily parses every line of input with parser.
//
// Lines are split on '\n' and a trailing '\r' is dropped. A line break at the
// end of input does not produce an extra empty line, and empty input has no
// lines. offset is the zero-based index of the first line of input within the
// larger document it was cut from, so that errors report the line number of
// the whole document.
//
// The first failure is yielded as an *InvalidLineError and ends the sequence.
func LinesWithOffset[T any](input string, offset int, parser func(line string) (T, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		i := 0
		for line := range splitLines(input) {
			v, err := parser(line)
			if err != nil {
				var zero T
				yield(zero, customErr.InvalidLineFromZeroIndex(saturatingAdd(i, offset), err))
				return
			}
			if !yield(v, nil) {
				return
			}
			i++
		}
	}
}

// Collect drains seq into a slice, stopping at the first error.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var out []T
	for v, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// SplitLines returns the lines of input using the same rules as LinesWithOffset.
func SplitLines(input string) []string {
	var out []string
	for line := range splitLines(input) {
		out = append(out, line)
	}
	return out
}

func splitLines(input string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := input
		for rest != "" {
			line, tail, found := strings.Cut(rest, "\n")
			if !yield(strings.TrimSuffix(line, "\r")) {
				return
			}
			if !found {
				return
			}
			rest = tail
		}
	}
}

func saturatingAdd(a, b int) int {
	sum := a + b
	if b > 0 && sum < a {
		return math.MaxInt
	}
	return sum
}
