// Package day07 follows tachyon beams down a manifold of splitters.
package day07

import (
	customErr "github.com/Rocker-Mitchell/aoc-2025/pkg/errors"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/grid"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/parse"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/solution"
)

type Cell int

const (
	Open Cell = iota
	Start
	Splitter
)

type Manifold struct {
	Cells    *grid.Grid[Cell]
	StartCol int
}

// Solution traces tachyon beams through the manifold.
type Solution struct{}

// Runnable returns the day 7 solution ready to run.
func Runnable() solution.Runnable {
	return solution.Parsed[Manifold, int, uint64](Solution{})
}

func (Solution) Name() string {
	return "Day 7: Laboratories"
}

func (Solution) Parse(input string) (Manifold, error) {
	startCol := -1
	cells, err := parse.Grid(input, func(p grid.Point, c rune) (Cell, error) {
		switch c {
		case 'S':
			startCol = p.X
			return Start, nil
		case '^':
			return Splitter, nil
		case '.':
			return Open, nil
		default:
			return Open, &customErr.CharError{Char: c}
		}
	})
	if err != nil {
		return Manifold{}, err
	}
	if startCol < 0 {
		panic("did not parse a start in input")
	}
	return Manifold{Cells: cells, StartCol: startCol}, nil
}

// Part1 counts how many times a beam is split on its way down.
func (Solution) Part1(m Manifold) int {
	splits := 0
	beams := map[int]bool{m.StartCol: true}
	for y := range m.Cells.Rows() {
		nextBeams := make(map[int]bool, len(beams))
		for col := range beams {
			if m.Cells.At(grid.Point{X: col, Y: y}) != Splitter {
				nextBeams[col] = true
				continue
			}
			splits++
			m.spread(col, func(c int) { nextBeams[c] = true })
		}
		beams = nextBeams
	}
	return splits
}

// Part2 counts the timelines a single particle can end up in, where every
// splitter sends it both left and right.
func (Solution) Part2(m Manifold) uint64 {
	particles := make([]uint64, m.Cells.Cols())
	particles[m.StartCol] = 1
	for y := range m.Cells.Rows() {
		next := make([]uint64, len(particles))
		for col, n := range particles {
			if n == 0 {
				continue
			}
			if m.Cells.At(grid.Point{X: col, Y: y}) != Splitter {
				next[col] += n
				continue
			}
			m.spread(col, func(c int) { next[c] += n })
		}
		particles = next
	}

	var total uint64
	for _, n := range particles {
		total += n
	}
	return total
}

// spread calls f for the in-bounds columns either side of col.
func (m Manifold) spread(col int, f func(col int)) {
	if col > 0 {
		f(col - 1)
	}
	if col+1 < m.Cells.Cols() {
		f(col + 1)
	}
}
