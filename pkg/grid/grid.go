// Package grid provides a rectangular row-major 2D container addressed by points.
package grid

import (
	"fmt"
	"iter"
)

// Point is a position in a grid. X is the column and Y is the row, with the
// origin at the top-left corner.
type Point struct {
	X int
	Y int
}

// Add returns the point translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Neighbors4 holds the offsets of the orthogonally adjacent cells.
var Neighbors4 = [4]Point{
	{X: 0, Y: -1}, {X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1},
}

// Neighbors8 holds the offsets of the eight surrounding cells.
var Neighbors8 = [8]Point{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// Grid is a rows x cols matrix stored in row-major order.
type Grid[T any] struct {
	rows  int
	cols  int
	cells []T
}

// New returns a grid filled with zero values. It panics on negative dimensions.
func New[T any](rows, cols int) *Grid[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("grid: negative dimensions %dx%d", rows, cols))
	}
	return &Grid[T]{rows: rows, cols: cols, cells: make([]T, rows*cols)}
}

// FromRowMajor builds a grid over cells, which must hold exactly rows*cols values.
func FromRowMajor[T any](rows, cols int, cells []T) *Grid[T] {
	if rows < 0 || cols < 0 || len(cells) != rows*cols {
		panic(fmt.Sprintf("grid: %d cells do not fill %dx%d", len(cells), rows, cols))
	}
	return &Grid[T]{rows: rows, cols: cols, cells: cells}
}

func (g *Grid[T]) Rows() int {
	return g.rows
}

func (g *Grid[T]) Cols() int {
	return g.cols
}

// Contains reports whether p lies inside the grid.
func (g *Grid[T]) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.cols && p.Y < g.rows
}

// At returns the value at p. It panics when p is out of bounds.
func (g *Grid[T]) At(p Point) T {
	return g.cells[g.index(p)]
}

// Get returns the value at p and whether p was inside the grid.
func (g *Grid[T]) Get(p Point) (T, bool) {
	if !g.Contains(p) {
		var zero T
		return zero, false
	}
	return g.cells[p.Y*g.cols+p.X], true
}

// Set stores v at p. It panics when p is out of bounds.
func (g *Grid[T]) Set(p Point, v T) {
	g.cells[g.index(p)] = v
}

// Row returns a copy of row y.
func (g *Grid[T]) Row(y int) []T {
	if y < 0 || y >= g.rows {
		panic(fmt.Sprintf("grid: row %d out of range [0, %d)", y, g.rows))
	}
	row := make([]T, g.cols)
	copy(row, g.cells[y*g.cols:(y+1)*g.cols])
	return row
}

// Column returns a copy of column x, top to bottom.
func (g *Grid[T]) Column(x int) []T {
	if x < 0 || x >= g.cols {
		panic(fmt.Sprintf("grid: column %d out of range [0, %d)", x, g.cols))
	}
	col := make([]T, g.rows)
	for y := range g.rows {
		col[y] = g.cells[y*g.cols+x]
	}
	return col
}

// Points yields every position with its value in row-major order.
func (g *Grid[T]) Points() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for y := range g.rows {
			for x := range g.cols {
				if !yield(Point{X: x, Y: y}, g.cells[y*g.cols+x]) {
					return
				}
			}
		}
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return &Grid[T]{rows: g.rows, cols: g.cols, cells: cells}
}

func (g *Grid[T]) index(p Point) int {
	if !g.Contains(p) {
		panic(fmt.Sprintf("grid: point %s out of bounds %dx%d", p, g.cols, g.rows))
	}
	return p.Y*g.cols + p.X
}
