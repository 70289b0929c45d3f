package day09

import (
	"testing"

	customErr "github.com/Rocker-Mitchell/aoc-2025/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleInput = `7,1
11,1
11,7
9,7
9,5
2,5
2,3
7,3
`

func TestParse(t *testing.T) {
	tiles, err := Solution{}.Parse(exampleInput)
	require.NoError(t, err)
	require.Len(t, tiles, 8)
	assert.Equal(t, Tile{X: 11, Y: 7}, tiles[2])
}

func TestPart1SolvesExample(t *testing.T) {
	tiles, err := Solution{}.Parse(exampleInput)
	require.NoError(t, err)
	assert.Equal(t, uint64(50), Solution{}.Part1(tiles))
}

func TestPart2SolvesExample(t *testing.T) {
	tiles, err := Solution{}.Parse(exampleInput)
	require.NoError(t, err)
	assert.Equal(t, uint64(24), Solution{}.Part2(tiles))
}

func TestArea(t *testing.T) {
	assert.Equal(t, uint64(1), area(Tile{X: 4, Y: 4}, Tile{X: 4, Y: 4}))
	assert.Equal(t, uint64(6), area(Tile{X: 2, Y: 5}, Tile{X: 0, Y: 4}))
}

func TestFloorKeepsGapsOpen(t *testing.T) {
	// A U shape: the notch between the arms is outside the loop.
	tiles := []Tile{
		{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 5}, {X: 8, Y: 5},
		{X: 8, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	}
	f := newFloor(tiles)
	assert.False(t, f.covers(Tile{X: 0, Y: 0}, Tile{X: 10, Y: 10}))
	assert.True(t, f.covers(Tile{X: 0, Y: 0}, Tile{X: 2, Y: 5}))
	assert.True(t, f.covers(Tile{X: 2, Y: 5}, Tile{X: 10, Y: 10}))
	assert.Equal(t, uint64(9*6), Solution{}.Part2(tiles))
}

func TestFloorRejectsDiagonalLinks(t *testing.T) {
	assert.Panics(t, func() {
		newFloor([]Tile{{X: 0, Y: 0}, {X: 3, Y: 3}, {X: 0, Y: 3}})
	})
}

func TestParseErrors(t *testing.T) {
	_, err := Solution{}.Parse("")
	assert.ErrorIs(t, err, customErr.ErrEmptyInput)

	_, err = Solution{}.Parse("1,2\n3 4\n")
	var lineErr *customErr.InvalidLineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, 2, lineErr.Line)
	var delimErr *customErr.DelimiterError
	require.ErrorAs(t, err, &delimErr)
	assert.Equal(t, ",", delimErr.Delimiter)

	_, err = Solution{}.Parse("1,-2\n")
	var intErr *customErr.IntError
	require.ErrorAs(t, err, &intErr)
	assert.Equal(t, "-2", intErr.String)
}
