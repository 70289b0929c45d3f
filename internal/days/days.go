// Package days registers the puzzle solutions by day number.
package days

import (
	"fmt"
	"slices"

	"github.com/Rocker-Mitchell/aoc-2025/internal/days/day00"
	"github.com/Rocker-Mitchell/aoc-2025/internal/days/day01"
	"github.com/Rocker-Mitchell/aoc-2025/internal/days/day03"
	"github.com/Rocker-Mitchell/aoc-2025/internal/days/day04"
	"github.com/Rocker-Mitchell/aoc-2025/internal/days/day05"
	"github.com/Rocker-Mitchell/aoc-2025/internal/days/day06"
	"github.com/Rocker-Mitchell/aoc-2025/internal/days/day07"
	"github.com/Rocker-Mitchell/aoc-2025/internal/days/day08"
	"github.com/Rocker-Mitchell/aoc-2025/internal/days/day09"
	"github.com/Rocker-Mitchell/aoc-2025/internal/days/day10"
	"github.com/Rocker-Mitchell/aoc-2025/internal/days/day11"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/constants"
	customErr "github.com/Rocker-Mitchell/aoc-2025/pkg/errors"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/solution"
)

// Registry maps a day number to a constructor for its solution.
type Registry map[int]func() solution.Runnable

// Default returns every solution written so far. Day 0 is a warm up.
func Default() Registry {
	return Registry{
		0:  day00.Runnable,
		1:  day01.Runnable,
		3:  day03.Runnable,
		4:  day04.Runnable,
		5:  day05.Runnable,
		6:  day06.Runnable,
		7:  day07.Runnable,
		8:  day08.Runnable,
		9:  day09.Runnable,
		10: day10.Runnable,
		11: day11.Runnable,
	}
}

// Get returns the solution for day.
func (r Registry) Get(day int) (solution.Runnable, error) {
	if day < 0 || day > constants.MaxDay {
		return nil, fmt.Errorf("day %d is outside 0 to %d: %w", day, constants.MaxDay, customErr.ErrDayNotImplemented)
	}
	newSolution, ok := r[day]
	if !ok {
		return nil, fmt.Errorf("day %d: %w", day, customErr.ErrDayNotImplemented)
	}
	return newSolution(), nil
}

// Days lists the registered days in ascending order.
func (r Registry) Days() []int {
	days := make([]int, 0, len(r))
	for day := range r {
		days = append(days, day)
	}
	slices.Sort(days)
	return days
}
