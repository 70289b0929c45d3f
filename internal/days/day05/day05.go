// Package day05 checks ingredient IDs against ranges of fresh IDs.
package day05

import (
	"slices"
	"strings"

	customErr "github.com/Rocker-Mitchell/aoc-2025/pkg/errors"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/parse"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/solution"
)

// Range is an inclusive range of fresh ingredient IDs.
type Range struct {
	Start uint64
	End   uint64
}

type Inventory struct {
	Fresh     []Range
	Available []uint64
}

// Solution checks ingredient IDs for freshness.
type Solution struct{}

// Runnable returns the day 5 solution ready to run.
func Runnable() solution.Runnable {
	return solution.Parsed[Inventory, int, uint64](Solution{})
}

func (Solution) Name() string {
	return "Day 5: Cafeteria"
}

func (Solution) Parse(input string) (Inventory, error) {
	rangesChunk, idsChunk, err := parse.TwoChunks(input, "fresh ingredient ranges", "available ingredient IDs")
	if err != nil {
		return Inventory{}, err
	}

	fresh, err := parse.Collect(parse.LinesWithOffset(rangesChunk.Text, rangesChunk.Offset, parseRange))
	if err != nil {
		return Inventory{}, err
	}
	available, err := parse.Collect(parse.LinesWithOffset(idsChunk.Text, idsChunk.Offset, parse.Int[uint64]))
	if err != nil {
		return Inventory{}, err
	}

	return Inventory{Fresh: fresh, Available: available}, nil
}

func parseRange(line string) (Range, error) {
	first, second, found := strings.Cut(line, "-")
	if !found {
		return Range{}, &customErr.DelimiterError{Delimiter: "-"}
	}
	start, err := parse.Int[uint64](first)
	if err != nil {
		return Range{}, err
	}
	end, err := parse.Int[uint64](second)
	if err != nil {
		return Range{}, err
	}
	return Range{Start: start, End: end}, nil
}

// Part1 counts the available IDs that fall in any fresh range.
func (Solution) Part1(inv Inventory) int {
	merged := merge(inv.Fresh)
	count := 0
	for _, id := range inv.Available {
		if contains(merged, id) {
			count++
		}
	}
	return count
}

// Part2 counts every ID the fresh ranges cover.
func (Solution) Part2(inv Inventory) uint64 {
	var total uint64
	for _, r := range merge(inv.Fresh) {
		total += r.End - r.Start + 1
	}
	return total
}

// merge collapses overlapping ranges into disjoint ranges sorted by start.
func merge(ranges []Range) []Range {
	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, func(a, b Range) int {
		switch {
		case a.Start < b.Start:
			return -1
		case a.Start > b.Start:
			return 1
		default:
			return 0
		}
	})

	var merged []Range
	for _, r := range sorted {
		if n := len(merged); n > 0 && r.Start <= merged[n-1].End {
			merged[n-1].End = max(merged[n-1].End, r.End)
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

func contains(merged []Range, id uint64) bool {
	i, _ := slices.BinarySearchFunc(merged, id, func(r Range, id uint64) int {
		switch {
		case r.End < id:
			return -1
		case r.Start > id:
			return 1
		default:
			return 0
		}
	})
	return i < len(merged) && merged[i].Start <= id && id <= merged[i].End
}
