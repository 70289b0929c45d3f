// Package day10 configures factory machines by pressing buttons that toggle
// indicator lights. Part 2, matching joltage counters, is not solved yet.
package day10

import (
	"fmt"
	"strings"

	customErr "github.com/Rocker-Mitchell/aoc-2025/pkg/errors"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/parse"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/solution"
)

// Machines have few enough lights to keep them in a bit mask.
const maxLights = 16

type Machine struct {
	Lights int
	// Goal has bit i set when light i must end up on.
	Goal uint16
	// Buttons hold the mask of lights each button toggles.
	Buttons []uint16
	Joltage []uint16
}

// Solution configures the factory machines.
type Solution struct{}

// Runnable returns the day 10 solution ready to run.
func Runnable() solution.Runnable {
	return solution.ParsedPending[[]Machine, int, uint64](Solution{})
}

func (Solution) Name() string {
	return "Day 10: Factory"
}

func (Solution) Parse(input string) ([]Machine, error) {
	machines, err := parse.Collect(parse.Lines(input, parseMachine))
	if err != nil {
		return nil, err
	}
	if len(machines) == 0 {
		return nil, customErr.ErrEmptyInput
	}
	return machines, nil
}

func parseMachine(line string) (Machine, error) {
	tokens := strings.Fields(line)
	if len(tokens) < 3 {
		return Machine{}, &customErr.StringError{String: line}
	}

	lights, err := unwrap(tokens[0], "[", "]")
	if err != nil {
		return Machine{}, err
	}
	if len(lights) > maxLights {
		return Machine{}, &customErr.StringError{String: tokens[0]}
	}
	m := Machine{Lights: len(lights)}
	for i, c := range []byte(lights) {
		switch c {
		case '#':
			m.Goal |= 1 << i
		case '.':
		default:
			return Machine{}, &customErr.CharError{Char: rune(c)}
		}
	}

	for _, token := range tokens[1 : len(tokens)-1] {
		wiring, err := unwrap(token, "(", ")")
		if err != nil {
			return Machine{}, err
		}
		indexes, err := parseList[int](wiring)
		if err != nil {
			return Machine{}, err
		}
		var mask uint16
		for _, i := range indexes {
			if i < 0 || i >= m.Lights {
				return Machine{}, &customErr.StringError{String: token}
			}
			mask |= 1 << i
		}
		m.Buttons = append(m.Buttons, mask)
	}

	joltage, err := unwrap(tokens[len(tokens)-1], "{", "}")
	if err != nil {
		return Machine{}, err
	}
	m.Joltage, err = parseList[uint16](joltage)
	if err != nil {
		return Machine{}, err
	}
	return m, nil
}

func unwrap(token, open, close string) (string, error) {
	if len(token) < 2 || !strings.HasPrefix(token, open) || !strings.HasSuffix(token, close) {
		return "", &customErr.StringError{String: token}
	}
	return token[len(open) : len(token)-len(close)], nil
}

func parseList[T int | uint16](s string) ([]T, error) {
	parts := strings.Split(s, ",")
	out := make([]T, 0, len(parts))
	for _, p := range parts {
		v, err := parse.Int[T](p)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Part1 sums the fewest button presses that light every machine correctly.
func (Solution) Part1(machines []Machine) int {
	total := 0
	for i, m := range machines {
		presses, ok := m.fewestPresses()
		if !ok {
			panic(fmt.Sprintf("failed to find minimum button presses for machine %d", i))
		}
		total += presses
	}
	return total
}

// Part2 has no solution yet.
func (Solution) Part2([]Machine) (uint64, bool) {
	return 0, false
}

// fewestPresses searches light states breadth first from all lights off.
// Pressing a button twice cancels out, so the distance to the goal is the
// smallest set of buttons that produces it.
func (m Machine) fewestPresses() (int, bool) {
	dist := make(map[uint16]int, 1<<m.Lights)
	dist[0] = 0
	queue := []uint16{0}
	for len(queue) > 0 {
		state := queue[0]
		queue = queue[1:]
		if state == m.Goal {
			return dist[state], true
		}
		for _, b := range m.Buttons {
			next := state ^ b
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[state] + 1
			queue = append(queue, next)
		}
	}
	return 0, false
}
