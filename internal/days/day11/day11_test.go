package day11_test

import (
	"testing"

	"github.com/Rocker-Mitchell/aoc-2025/internal/days/day11"
	customErr "github.com/Rocker-Mitchell/aoc-2025/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const part1Example = `aaa: you hhh
you: bbb ccc
bbb: ddd eee
ccc: ddd eee fff
ddd: ggg
eee: out
fff: out
ggg: out
hhh: ccc fff iii
iii: out
`

const part2Example = `svr: aaa bbb
aaa: fft
fft: ccc
bbb: tty
tty: ccc
ccc: ddd eee
ddd: hub
hub: fff
eee: dac
dac: fff
fff: ggg hhh
ggg: out
hhh: out
`

func TestParse(t *testing.T) {
	n, err := day11.Solution{}.Parse(part1Example)
	require.NoError(t, err)
	assert.Len(t, n, 10)
	assert.Equal(t, []string{"ddd", "eee", "fff"}, n["ccc"])
}

func TestPart1SolvesExample(t *testing.T) {
	n, err := day11.Solution{}.Parse(part1Example)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), day11.Solution{}.Part1(n))
}

func TestPart2SolvesExample(t *testing.T) {
	n, err := day11.Solution{}.Parse(part2Example)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), day11.Solution{}.Part2(n))
}

func TestPaths(t *testing.T) {
	n := day11.Network{"a": {"b", "c"}, "b": {"d"}, "c": {"d"}}
	assert.Equal(t, uint64(2), n.Paths("a", "d"))
	assert.Equal(t, uint64(0), n.Paths("d", "a"))
	assert.Equal(t, uint64(1), n.Paths("a", "a"))

	cyclic := day11.Network{"a": {"b"}, "b": {"a"}}
	assert.Panics(t, func() { cyclic.Paths("a", "out") })
}

func TestParseErrors(t *testing.T) {
	_, err := day11.Solution{}.Parse("")
	assert.ErrorIs(t, err, customErr.ErrEmptyInput)

	_, err = day11.Solution{}.Parse("aaa: bbb\nccc ddd\n")
	var lineErr *customErr.InvalidLineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, 2, lineErr.Line)
	var delimErr *customErr.DelimiterError
	require.ErrorAs(t, err, &delimErr)
	assert.Equal(t, ":", delimErr.Delimiter)

	_, err = day11.Solution{}.Parse("aaa:\n")
	var strErr *customErr.StringError
	require.ErrorAs(t, err, &strErr)

	_, err = day11.Solution{}.Parse(": bbb\n")
	require.ErrorAs(t, err, &strErr)
}
