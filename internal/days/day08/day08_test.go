package day08

import (
	"testing"

	customErr "github.com/Rocker-Mitchell/aoc-2025/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleInput = `162,817,812
57,618,57
906,360,560
592,479,940
352,342,300
466,668,158
542,29,236
431,825,988
739,650,466
52,470,668
216,146,977
819,987,18
117,168,530
805,96,715
346,949,466
970,615,88
941,993,340
862,61,35
984,92,344
425,690,689
`

func TestParse(t *testing.T) {
	junctions, err := Solution{}.Parse(exampleInput)
	require.NoError(t, err)
	require.Len(t, junctions, 20)
	assert.Equal(t, Junction{X: 162, Y: 817, Z: 812}, junctions[0])
}

func TestLargestCircuitsAfterTenConnections(t *testing.T) {
	junctions, err := Solution{}.Parse(exampleInput)
	require.NoError(t, err)
	assert.Equal(t, 40, largestCircuitsProduct(junctions, 10, 3))
}

func TestPart2SolvesExample(t *testing.T) {
	junctions, err := Solution{}.Parse(exampleInput)
	require.NoError(t, err)
	assert.Equal(t, int64(25272), Solution{}.Part2(junctions))
}

func TestPart1NeedsEnoughPairs(t *testing.T) {
	junctions, err := Solution{}.Parse(exampleInput)
	require.NoError(t, err)
	// 20 junctions only make 190 pairs.
	assert.Panics(t, func() { Solution{}.Part1(junctions) })
}

func TestCircuits(t *testing.T) {
	c := newCircuits(4)
	assert.True(t, c.union(0, 1))
	assert.False(t, c.union(1, 0))
	assert.True(t, c.union(2, 3))
	assert.Equal(t, 2, c.count)
	assert.ElementsMatch(t, []int{2, 2}, c.sizes())
}

func TestParseErrors(t *testing.T) {
	_, err := Solution{}.Parse("")
	assert.ErrorIs(t, err, customErr.ErrEmptyInput)

	_, err = Solution{}.Parse("1,2,3\n4,5\n")
	var lineErr *customErr.InvalidLineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, 2, lineErr.Line)
	var delimErr *customErr.DelimiterError
	require.ErrorAs(t, err, &delimErr)
	assert.Equal(t, ",", delimErr.Delimiter)

	_, err = Solution{}.Parse("1,2,z\n")
	var intErr *customErr.IntError
	require.ErrorAs(t, err, &intErr)
	assert.Equal(t, "z", intErr.String)
}
