// Package day08 wires junction boxes into circuits, shortest links first.
package day08

import (
	"cmp"
	"slices"
	"strings"

	customErr "github.com/Rocker-Mitchell/aoc-2025/pkg/errors"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/parse"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/solution"
)

const (
	part1Connections = 1000
	part1Circuits    = 3
)

// Junction is the position of a junction box.
type Junction struct {
	X, Y, Z int64
}

// link is a candidate connection between two junctions, by index.
type link struct {
	a, b int
	// dist is the squared distance, which orders links the same way as the
	// real one without leaving integers.
	dist int64
}

// Solution connects junction boxes on the playground.
type Solution struct{}

// Runnable returns the day 8 solution ready to run.
func Runnable() solution.Runnable {
	return solution.Parsed[[]Junction, int, int64](Solution{})
}

func (Solution) Name() string {
	return "Day 8: Playground"
}

func (Solution) Parse(input string) ([]Junction, error) {
	junctions, err := parse.Collect(parse.Lines(input, parseJunction))
	if err != nil {
		return nil, err
	}
	if len(junctions) == 0 {
		return nil, customErr.ErrEmptyInput
	}
	return junctions, nil
}

func parseJunction(line string) (Junction, error) {
	parts := strings.SplitN(line, ",", 3)
	if len(parts) != 3 {
		return Junction{}, &customErr.DelimiterError{Delimiter: ","}
	}
	var dims [3]int64
	for i, p := range parts {
		v, err := parse.Int[int64](p)
		if err != nil {
			return Junction{}, err
		}
		dims[i] = v
	}
	return Junction{X: dims[0], Y: dims[1], Z: dims[2]}, nil
}

// Part1 multiplies the sizes of the three largest circuits after the
// thousand shortest links are made.
func (Solution) Part1(junctions []Junction) int {
	return largestCircuitsProduct(junctions, part1Connections, part1Circuits)
}

// Part2 keeps linking until every junction is in one circuit and multiplies
// the X coordinates of the last pair linked.
func (Solution) Part2(junctions []Junction) int64 {
	c := newCircuits(len(junctions))
	for _, l := range sortedLinks(junctions) {
		if c.union(l.a, l.b) && c.count == 1 {
			return junctions[l.a].X * junctions[l.b].X
		}
	}
	panic("failed to form a single circuit")
}

func largestCircuitsProduct(junctions []Junction, connections, count int) int {
	links := sortedLinks(junctions)
	if connections > len(links) {
		panic("not enough junction pairs to make the requested connections")
	}

	c := newCircuits(len(junctions))
	for _, l := range links[:connections] {
		c.union(l.a, l.b)
	}

	sizes := c.sizes()
	slices.SortFunc(sizes, func(a, b int) int { return cmp.Compare(b, a) })
	product := 1
	for _, s := range sizes[:min(count, len(sizes))] {
		product *= s
	}
	return product
}

func sortedLinks(junctions []Junction) []link {
	links := make([]link, 0, len(junctions)*(len(junctions)-1)/2)
	for i := range junctions {
		for j := i + 1; j < len(junctions); j++ {
			links = append(links, link{a: i, b: j, dist: squaredDistance(junctions[i], junctions[j])})
		}
	}
	slices.SortStableFunc(links, func(x, y link) int { return cmp.Compare(x.dist, y.dist) })
	return links
}

func squaredDistance(p, q Junction) int64 {
	dx, dy, dz := p.X-q.X, p.Y-q.Y, p.Z-q.Z
	return dx*dx + dy*dy + dz*dz
}

// circuits is a disjoint set over junction indexes. Every junction starts
// as a circuit of its own.
type circuits struct {
	parent []int
	size   []int
	count  int
}

func newCircuits(n int) *circuits {
	c := &circuits{parent: make([]int, n), size: make([]int, n), count: n}
	for i := range c.parent {
		c.parent[i] = i
		c.size[i] = 1
	}
	return c
}

func (c *circuits) find(i int) int {
	for c.parent[i] != i {
		c.parent[i] = c.parent[c.parent[i]]
		i = c.parent[i]
	}
	return i
}

// union joins the circuits of a and b, reporting whether they were apart.
func (c *circuits) union(a, b int) bool {
	ra, rb := c.find(a), c.find(b)
	if ra == rb {
		return false
	}
	if c.size[ra] < c.size[rb] {
		ra, rb = rb, ra
	}
	c.parent[rb] = ra
	c.size[ra] += c.size[rb]
	c.count--
	return true
}

func (c *circuits) sizes() []int {
	var sizes []int
	for i, p := range c.parent {
		if i == p {
			sizes = append(sizes, c.size[i])
		}
	}
	return sizes
}
