package parse_test

import (
	"errors"
	"math"
	"strconv"
	"testing"

	customErr "github.com/Rocker-Mitchell/aoc-2025/pkg/errors"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/grid"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/parse"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseU32(line string) (uint32, error) {
	return parse.Int[uint32](line)
}

func TestLines(t *testing.T) {
	got, err := parse.Collect(parse.Lines("10\n20\n30\n", parseU32))
	require.NoError(t, err)
	assert.Equal(t, []uint32{10, 20, 30}, got)
}

func TestLinesMatchesZeroOffset(t *testing.T) {
	for _, input := range []string{"1\n2\n", "1\nx\n3", "", "\n"} {
		a, errA := parse.Collect(parse.Lines(input, parseU32))
		b, errB := parse.Collect(parse.LinesWithOffset(input, 0, parseU32))
		assert.Equal(t, a, b, input)
		assert.Equal(t, errA, errB, input)
	}
}

func TestLinesReportsFailingLine(t *testing.T) {
	_, err := parse.Collect(parse.Lines("10\nbad\n20\n", parseU32))

	var lineErr *customErr.InvalidLineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, 2, lineErr.Line)

	var intErr *customErr.IntError
	require.ErrorAs(t, lineErr.Err, &intErr)
	assert.Equal(t, "bad", intErr.String)
}

func TestLinesWithOffset(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
		line   int
	}{
		{name: "second line offset five", input: "100\nabc\n200\n", offset: 5, line: 7},
		{name: "first line no offset", input: "x", offset: 0, line: 1},
		{name: "third line offset two", input: "1\n2\n?", offset: 2, line: 5},
		{name: "saturates", input: "z", offset: math.MaxInt, line: math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse.Collect(parse.LinesWithOffset(tt.input, tt.offset, parseU32))

			var lineErr *customErr.InvalidLineError
			require.ErrorAs(t, err, &lineErr)
			assert.Equal(t, tt.line, lineErr.Line)
		})
	}
}

func TestLinesStopsAfterFailure(t *testing.T) {
	calls := 0
	seq := parse.Lines("a\nb\nc\n", func(line string) (string, error) {
		calls++
		if line == "b" {
			return "", customErr.ErrEmptyLine
		}
		return line, nil
	})

	var values []string
	var errs []error
	for v, err := range seq {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		values = append(values, v)
	}

	assert.Equal(t, []string{"a"}, values)
	assert.Len(t, errs, 1)
	assert.Equal(t, 2, calls)
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{input: "", expected: nil},
		{input: "\n", expected: []string{""}},
		{input: "a\nb", expected: []string{"a", "b"}},
		{input: "a\r\nb\r\n", expected: []string{"a", "b"}},
		{input: "a\n\nb\n", expected: []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(strconv.Quote(tt.input), func(t *testing.T) {
			assert.Equal(t, tt.expected, parse.SplitLines(tt.input))
		})
	}
}

func TestInt(t *testing.T) {
	v, err := parse.Int[int64]("-42")
	require.NoError(t, err)
	assert.Equal(t, int64(-42), v)

	u, err := parse.Int[uint8]("255")
	require.NoError(t, err)
	assert.Equal(t, uint8(255), u)

	_, err = parse.Int[uint8]("256")
	var intErr *customErr.IntError
	require.ErrorAs(t, err, &intErr)
	assert.Equal(t, "256", intErr.String)
	assert.ErrorIs(t, err, strconv.ErrRange)

	_, err = parse.Int[int8]("-129")
	assert.ErrorIs(t, err, strconv.ErrRange)

	_, err = parse.Int[uint32]("-1")
	assert.ErrorIs(t, err, strconv.ErrSyntax)

	_, err = parse.Int[int]("")
	require.ErrorAs(t, err, &intErr)
	assert.Equal(t, "", intErr.String)
}

func TestDigit(t *testing.T) {
	d, err := parse.Digit[int]('7')
	require.NoError(t, err)
	assert.Equal(t, 7, d)

	_, err = parse.Digit[int]('x')
	var charErr *customErr.CharError
	require.ErrorAs(t, err, &charErr)
	assert.Equal(t, 'x', charErr.Char)
}

type cell int

const (
	empty cell = iota
	filled
)

func parseCell(_ grid.Point, c rune) (cell, error) {
	switch c {
	case '.':
		return empty, nil
	case '-':
		return filled, nil
	default:
		return 0, &customErr.CharError{Char: c}
	}
}

func TestGrid(t *testing.T) {
	g, err := parse.Grid("..-\n.--\n", parseCell)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, []cell{empty, empty, filled}, g.Row(0))
	assert.Equal(t, []cell{empty, filled, filled}, g.Row(1))
}

func TestGridEmptyInput(t *testing.T) {
	_, err := parse.Grid("", parseCell)
	require.ErrorIs(t, err, customErr.ErrEmptyInput)

	var lineErr *customErr.InvalidLineError
	assert.False(t, errors.As(err, &lineErr))
}

func TestGridErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
		line   int
		check  func(t *testing.T, inner error)
	}{
		{
			name:   "empty line",
			input:  "..-\n\n-.-\n",
			offset: 2,
			line:   4,
			check: func(t *testing.T, inner error) {
				assert.ErrorIs(t, inner, customErr.ErrEmptyLine)
			},
		},
		{
			name:   "line length",
			input:  "..-\n.--\n-.\n",
			offset: 1,
			line:   4,
			check: func(t *testing.T, inner error) {
				var lenErr *customErr.LineLengthError
				require.ErrorAs(t, inner, &lenErr)
				assert.Equal(t, customErr.LineLengthError{Expected: 3, Actual: 2}, *lenErr)
			},
		},
		{
			name:   "invalid char",
			input:  "..-\n.b-\n-.-\n",
			offset: 3,
			line:   5,
			check: func(t *testing.T, inner error) {
				var charErr *customErr.CharError
				require.ErrorAs(t, inner, &charErr)
				assert.Equal(t, 'b', charErr.Char)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse.GridWithOffset(tt.input, tt.offset, parseCell)

			var lineErr *customErr.InvalidLineError
			require.ErrorAs(t, err, &lineErr)
			assert.Equal(t, tt.line, lineErr.Line)
			tt.check(t, lineErr.Err)
		})
	}
}

func TestGridVisitsRowMajor(t *testing.T) {
	type visit struct {
		P grid.Point
		C rune
	}
	var visits []visit
	_, err := parse.Grid("ab\ncd\n", func(p grid.Point, c rune) (rune, error) {
		visits = append(visits, visit{p, c})
		return c, nil
	})
	require.NoError(t, err)

	want := []visit{
		{grid.Point{X: 0, Y: 0}, 'a'},
		{grid.Point{X: 1, Y: 0}, 'b'},
		{grid.Point{X: 0, Y: 1}, 'c'},
		{grid.Point{X: 1, Y: 1}, 'd'},
	}
	if diff := cmp.Diff(want, visits); diff != "" {
		t.Fatalf("visit order mismatch (-want +got):\n%s", diff)
	}
}

func TestGridCountsRunes(t *testing.T) {
	g, err := parse.Grid("µa\nbµ", parse.Runes)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Cols())
	assert.Equal(t, 'µ', g.At(grid.Point{X: 1, Y: 1}))
}

func TestTwoChunks(t *testing.T) {
	first, second, err := parse.TwoChunks("3-5\n10-14\n\n1\n5\n", "ranges", "ids")
	require.NoError(t, err)
	assert.Equal(t, parse.Chunk{Text: "3-5\n10-14", Offset: 0}, first)
	assert.Equal(t, parse.Chunk{Text: "1\n5\n", Offset: 3}, second)

	first, second, err = parse.TwoChunks("1\r\n2\r\n\r\n3\r\n", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "1\r\n2", first.Text)
	assert.Equal(t, 3, second.Offset)
}

func TestTwoChunksErrors(t *testing.T) {
	_, _, err := parse.TwoChunks("1\n2\n", "ranges", "ids")
	var delimErr *customErr.ChunkDelimiterError
	require.ErrorAs(t, err, &delimErr)
	assert.Equal(t, "\n\n", delimErr.Delimiter)

	_, _, err = parse.TwoChunks("\n\n1\n", "ranges", "ids")
	var chunkErr *customErr.EmptyChunkError
	require.ErrorAs(t, err, &chunkErr)
	assert.Equal(t, customErr.EmptyChunkError{ChunkNumber: 1, Description: "ranges"}, *chunkErr)

	_, _, err = parse.TwoChunks("1-2\n\n", "ranges", "ids")
	require.ErrorAs(t, err, &chunkErr)
	assert.Equal(t, 2, chunkErr.ChunkNumber)
	assert.Equal(t, "ids", chunkErr.Description)
}
