package solution

import "github.com/Rocker-Mitchell/aoc-2025/pkg/timing"

// Named is implemented by every solution.
type Named interface {
	Name() string
}

// Part1Solver computes part 1 straight from raw input.
type Part1Solver[O1 any] interface {
	Named
	Part1(input string) (O1, error)
}

// Part2Solver computes both parts straight from raw input.
type Part2Solver[O1, O2 any] interface {
	Part1Solver[O1]
	Part2(input string) (O2, error)
}

// Parser turns raw input into the representation shared by both parts.
type Parser[P any] interface {
	Named
	Parse(input string) (P, error)
}

// ParsedPart1Solver parses input once and computes part 1 from the result.
type ParsedPart1Solver[P, O1 any] interface {
	Parser[P]
	Part1(parsed P) O1
}

// ParsedPart2Solver parses input once and computes both parts from the result.
type ParsedPart2Solver[P, O1, O2 any] interface {
	ParsedPart1Solver[P, O1]
	Part2(parsed P) O2
}

// PendingPart2Solver is a ParsedPart2Solver whose part 2 may not be written
// yet. Part2 returns false until it is.
type PendingPart2Solver[P, O1, O2 any] interface {
	ParsedPart1Solver[P, O1]
	Part2(parsed P) (O2, bool)
}

// Runnable is a solution that can be driven against an OutputHandler.
type Runnable interface {
	Named
	// Run reports every step of solving input to h. The first error aborts
	// the run and is returned as is; no further events are emitted.
	Run(h OutputHandler, input string, timed bool) error
}

// Part1Only runs a solver that parses its own input and has only part 1.
func Part1Only[O1 any](s Part1Solver[O1]) Runnable {
	return &inlineSolution[O1, struct{}]{part1: s}
}

// BothParts runs a solver that parses its own input in each part.
func BothParts[O1, O2 any](s Part2Solver[O1, O2]) Runnable {
	return &inlineSolution[O1, O2]{part1: s, part2: s}
}

// ParsedPart1Only runs a parse-once solver that has only part 1.
func ParsedPart1Only[P, O1 any](s ParsedPart1Solver[P, O1]) Runnable {
	return &parsedSolution[P, O1, struct{}]{part1: s}
}

// Parsed runs a parse-once solver with both parts.
func Parsed[P, O1, O2 any](s ParsedPart2Solver[P, O1, O2]) Runnable {
	return &parsedSolution[P, O1, O2]{
		part1: s,
		part2: func(parsed P) (O2, bool) { return s.Part2(parsed), true },
	}
}

// ParsedPending runs a parse-once solver whose part 2 may report itself as
// not implemented.
func ParsedPending[P, O1, O2 any](s PendingPart2Solver[P, O1, O2]) Runnable {
	return &parsedSolution[P, O1, O2]{part1: s, part2: s.Part2}
}

type inlineSolution[O1, O2 any] struct {
	part1 Part1Solver[O1]
	part2 Part2Solver[O1, O2]
}

func (s *inlineSolution[O1, O2]) Name() string {
	return s.part1.Name()
}

func (s *inlineSolution[O1, O2]) Run(h OutputHandler, input string, timed bool) error {
	h.SolutionName(s.part1.Name())

	err := runPart(h, Part1, timed, func() (O1, error) {
		return s.part1.Part1(input)
	})
	if err != nil {
		return err
	}

	if s.part2 == nil {
		return nil
	}
	return runPart(h, Part2, timed, func() (O2, error) {
		return s.part2.Part2(input)
	})
}

type parsedSolution[P, O1, O2 any] struct {
	part1 ParsedPart1Solver[P, O1]
	part2 func(parsed P) (O2, bool)
}

func (s *parsedSolution[P, O1, O2]) Name() string {
	return s.part1.Name()
}

func (s *parsedSolution[P, O1, O2]) Run(h OutputHandler, input string, timed bool) error {
	h.SolutionName(s.part1.Name())

	parsed, err := runParse[P](h, s.part1, input, timed)
	if err != nil {
		return err
	}

	err = runPart(h, Part1, timed, func() (O1, error) {
		return s.part1.Part1(parsed), nil
	})
	if err != nil {
		return err
	}

	if s.part2 == nil {
		return nil
	}
	runPendingPart(h, Part2, timed, func() (O2, bool) {
		return s.part2(parsed)
	})
	return nil
}

func runParse[P any](h OutputHandler, p Parser[P], input string, timed bool) (P, error) {
	h.ParseStart()

	if timed {
		parsed, d, err := timing.MeasureErr(func() (P, error) {
			return p.Parse(input)
		})
		if err != nil {
			return parsed, err
		}
		h.ParseEndTimed(d)
		return parsed, nil
	}

	parsed, err := p.Parse(input)
	if err != nil {
		return parsed, err
	}
	h.ParseEnd()
	return parsed, nil
}

func runPart[O any](h OutputHandler, part Part, timed bool, op func() (O, error)) error {
	h.PartStart(part)

	if timed {
		out, d, err := timing.MeasureErr(op)
		if err != nil {
			return err
		}
		h.PartOutputTimed(part, out, d)
		return nil
	}

	out, err := op()
	if err != nil {
		return err
	}
	h.PartOutput(part, out)
	return nil
}

type pendingOutput[O any] struct {
	value O
	ok    bool
}

func runPendingPart[O any](h OutputHandler, part Part, timed bool, op func() (O, bool)) {
	h.PartStart(part)

	measured := func() pendingOutput[O] {
		v, ok := op()
		return pendingOutput[O]{value: v, ok: ok}
	}

	if timed {
		res, d := timing.Measure(measured)
		if !res.ok {
			h.PartNotImplemented(part)
			return
		}
		h.PartOutputTimed(part, res.value, d)
		return
	}

	res := measured()
	if !res.ok {
		h.PartNotImplemented(part)
		return
	}
	h.PartOutput(part, res.value)
}
