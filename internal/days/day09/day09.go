// Package day09 finds the largest rectangles with red tiles at opposite
// corners on the theater floor.
package day09

import (
	"fmt"
	"slices"
	"strings"

	customErr "github.com/Rocker-Mitchell/aoc-2025/pkg/errors"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/grid"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/parse"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/solution"
)

// Tile is the position of a red tile.
type Tile struct {
	X, Y uint64
}

// Solution measures rectangles in the movie theater.
type Solution struct{}

// Runnable returns the day 9 solution ready to run.
func Runnable() solution.Runnable {
	return solution.Parsed[[]Tile, uint64, uint64](Solution{})
}

func (Solution) Name() string {
	return "Day 9: Movie Theater"
}

func (Solution) Parse(input string) ([]Tile, error) {
	tiles, err := parse.Collect(parse.Lines(input, parseTile))
	if err != nil {
		return nil, err
	}
	if len(tiles) == 0 {
		return nil, customErr.ErrEmptyInput
	}
	return tiles, nil
}

func parseTile(line string) (Tile, error) {
	xs, ys, found := strings.Cut(line, ",")
	if !found {
		return Tile{}, &customErr.DelimiterError{Delimiter: ","}
	}
	x, err := parse.Int[uint64](xs)
	if err != nil {
		return Tile{}, err
	}
	y, err := parse.Int[uint64](ys)
	if err != nil {
		return Tile{}, err
	}
	return Tile{X: x, Y: y}, nil
}

// Part1 finds the largest rectangle with red tiles in two opposite corners.
func (Solution) Part1(tiles []Tile) uint64 {
	return largestArea(tiles, func(Tile, Tile) bool { return true })
}

// Part2 finds the largest such rectangle made only of red and green tiles,
// where green tiles join consecutive red tiles and fill the loop they form.
func (Solution) Part2(tiles []Tile) uint64 {
	f := newFloor(tiles)
	return largestArea(tiles, f.covers)
}

func largestArea(tiles []Tile, valid func(p, q Tile) bool) uint64 {
	if len(tiles) < 2 {
		panic("need at least two red tiles to make a rectangle")
	}
	var best uint64
	for i, p := range tiles {
		for _, q := range tiles[i+1:] {
			a := area(p, q)
			if a > best && valid(p, q) {
				best = a
			}
		}
	}
	return best
}

// area counts tiles, so both corners are included.
func area(p, q Tile) uint64 {
	width := absDiff(p.X, q.X) + 1
	height := absDiff(p.Y, q.Y) + 1
	if height != 0 && width > ^uint64(0)/height {
		panic(fmt.Sprintf("area of %v to %v overflows", p, q))
	}
	return width * height
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}

// floor is the red and green region on a compressed grid. Cell i on an axis
// stands for the tiles from coordinate i up to, not including, coordinate
// i+1. Every tile coordinate and the one after it are kept so that gaps
// between red tiles stay one cell wide instead of vanishing.
type floor struct {
	xs, ys []uint64
	// outside holds a 2D prefix sum of cells outside the loop, so any
	// rectangle is checked in constant time.
	outside []int
}

func newFloor(tiles []Tile) *floor {
	f := &floor{xs: compress(tiles, func(t Tile) uint64 { return t.X }), ys: compress(tiles, func(t Tile) uint64 { return t.Y })}

	border := grid.New[bool](len(f.ys), len(f.xs))
	for i, start := range tiles {
		end := tiles[(i+1)%len(tiles)]
		if (start.X == end.X) == (start.Y == end.Y) {
			panic(fmt.Sprintf("red tiles %v and %v are not joined by a straight line", start, end))
		}
		a, b := f.cell(start), f.cell(end)
		for y := min(a.Y, b.Y); y <= max(a.Y, b.Y); y++ {
			for x := min(a.X, b.X); x <= max(a.X, b.X); x++ {
				border.Set(grid.Point{X: x, Y: y}, true)
			}
		}
	}

	f.outside = prefixSums(flood(border))
	return f
}

func compress(tiles []Tile, axis func(Tile) uint64) []uint64 {
	values := make([]uint64, 0, 2*len(tiles))
	for _, t := range tiles {
		values = append(values, axis(t), axis(t)+1)
	}
	slices.Sort(values)
	return slices.Compact(values)
}

func (f *floor) cell(t Tile) grid.Point {
	x, _ := slices.BinarySearch(f.xs, t.X)
	y, _ := slices.BinarySearch(f.ys, t.Y)
	return grid.Point{X: x, Y: y}
}

// flood marks the cells reachable from the edge of the grid without
// crossing the border.
func flood(border *grid.Grid[bool]) *grid.Grid[bool] {
	outside := grid.New[bool](border.Rows(), border.Cols())
	var queue []grid.Point
	visit := func(p grid.Point) {
		if v, ok := border.Get(p); !ok || v || outside.At(p) {
			return
		}
		outside.Set(p, true)
		queue = append(queue, p)
	}

	for y := range border.Rows() {
		visit(grid.Point{X: 0, Y: y})
		visit(grid.Point{X: border.Cols() - 1, Y: y})
	}
	for x := range border.Cols() {
		visit(grid.Point{X: x, Y: 0})
		visit(grid.Point{X: x, Y: border.Rows() - 1})
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range grid.Neighbors4 {
			visit(p.Add(d))
		}
	}
	return outside
}

func prefixSums(outside *grid.Grid[bool]) []int {
	cols := outside.Cols() + 1
	sums := make([]int, (outside.Rows()+1)*cols)
	for p, v := range outside.Points() {
		n := 0
		if v {
			n = 1
		}
		sums[(p.Y+1)*cols+p.X+1] = n + sums[p.Y*cols+p.X+1] + sums[(p.Y+1)*cols+p.X] - sums[p.Y*cols+p.X]
	}
	return sums
}

// covers reports whether the rectangle with corners p and q lies entirely
// on red or green tiles.
func (f *floor) covers(p, q Tile) bool {
	a, b := f.cell(p), f.cell(q)
	x0, x1 := min(a.X, b.X), max(a.X, b.X)+1
	y0, y1 := min(a.Y, b.Y), max(a.Y, b.Y)+1
	cols := len(f.xs) + 1
	n := f.outside[y1*cols+x1] - f.outside[y0*cols+x1] - f.outside[y1*cols+x0] + f.outside[y0*cols+x0]
	return n == 0
}
