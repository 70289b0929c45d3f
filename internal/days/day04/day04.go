// Package day04 finds paper rolls that a forklift can reach.
package day04

import (
	customErr "github.com/Rocker-Mitchell/aoc-2025/pkg/errors"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/grid"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/parse"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/solution"
)

type Cell int

const (
	Empty Cell = iota
	Roll
)

// A roll is accessible when fewer than this many neighbors are rolls.
const maxCrowding = 4

// Solution finds paper rolls a forklift can reach.
type Solution struct{}

// Runnable returns the day 4 solution ready to run.
func Runnable() solution.Runnable {
	return solution.Parsed[*grid.Grid[Cell], int, int](Solution{})
}

func (Solution) Name() string {
	return "Day 4: Printing Department"
}

func (Solution) Parse(input string) (*grid.Grid[Cell], error) {
	return parse.Grid(input, func(_ grid.Point, c rune) (Cell, error) {
		switch c {
		case '@':
			return Roll, nil
		case '.':
			return Empty, nil
		default:
			return Empty, &customErr.CharError{Char: c}
		}
	})
}

func (Solution) Part1(g *grid.Grid[Cell]) int {
	return len(accessibleRolls(g))
}

// Part2 keeps removing accessible rolls until none are left and counts them.
func (Solution) Part2(g *grid.Grid[Cell]) int {
	g = g.Clone()
	removed := 0
	for {
		rolls := accessibleRolls(g)
		if len(rolls) == 0 {
			return removed
		}
		removed += len(rolls)
		for _, p := range rolls {
			g.Set(p, Empty)
		}
	}
}

func accessibleRolls(g *grid.Grid[Cell]) []grid.Point {
	var rolls []grid.Point
	for p, c := range g.Points() {
		if c == Roll && adjacentRolls(g, p) < maxCrowding {
			rolls = append(rolls, p)
		}
	}
	return rolls
}

func adjacentRolls(g *grid.Grid[Cell], p grid.Point) int {
	count := 0
	for _, d := range grid.Neighbors8 {
		if c, ok := g.Get(p.Add(d)); ok && c == Roll {
			count++
		}
	}
	return count
}
