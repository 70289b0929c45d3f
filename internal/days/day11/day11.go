// Package day11 counts the routes data can take through a network of
// devices.
package day11

import (
	"fmt"
	"strings"

	customErr "github.com/Rocker-Mitchell/aoc-2025/pkg/errors"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/parse"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/solution"
)

const (
	you    = "you"
	server = "svr"
	dac    = "dac"
	fft    = "fft"
	out    = "out"
)

// Network maps each device to the devices its outputs connect to.
type Network map[string][]string

type device struct {
	name    string
	outputs []string
}

// Solution counts paths through the reactor's devices.
type Solution struct{}

// Runnable returns the day 11 solution ready to run.
func Runnable() solution.Runnable {
	return solution.Parsed[Network, uint64, uint64](Solution{})
}

func (Solution) Name() string {
	return "Day 11: Reactor"
}

func (Solution) Parse(input string) (Network, error) {
	devices, err := parse.Collect(parse.Lines(input, parseDevice))
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, customErr.ErrEmptyInput
	}

	network := make(Network, len(devices))
	for _, d := range devices {
		network[d.name] = d.outputs
	}
	return network, nil
}

func parseDevice(line string) (device, error) {
	name, rest, found := strings.Cut(line, ":")
	if !found {
		return device{}, &customErr.DelimiterError{Delimiter: ":"}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return device{}, &customErr.StringError{String: line}
	}
	outputs := strings.Fields(rest)
	if len(outputs) == 0 {
		return device{}, &customErr.StringError{String: line}
	}
	return device{name: name, outputs: outputs}, nil
}

// Part1 counts every path from "you" to "out".
func (Solution) Part1(n Network) uint64 {
	return n.Paths(you, out)
}

// Part2 counts the paths from the server to "out" that visit both the
// digital-to-analog converter and the fast Fourier transform device, in
// either order.
func (Solution) Part2(n Network) uint64 {
	dacFirst := n.Paths(server, dac) * n.Paths(dac, fft) * n.Paths(fft, out)
	fftFirst := n.Paths(server, fft) * n.Paths(fft, dac) * n.Paths(dac, out)
	return dacFirst + fftFirst
}

// Paths counts the distinct paths from one device to another. The network
// must be acyclic along every route that can reach to; Paths panics on a
// cycle.
func (n Network) Paths(from, to string) uint64 {
	memo := make(map[string]uint64)
	visiting := make(map[string]bool)

	var count func(node string) uint64
	count = func(node string) uint64 {
		if node == to {
			return 1
		}
		if v, ok := memo[node]; ok {
			return v
		}
		if visiting[node] {
			panic(fmt.Sprintf("cycle in network at device %q", node))
		}
		visiting[node] = true

		var total uint64
		for _, next := range n[node] {
			total += count(next)
		}

		visiting[node] = false
		memo[node] = total
		return total
	}
	return count(from)
}
