package solution

import "time"

//go:generate mockgen -destination=../../internal/mocks/mock_output_handler.go -package=mocks . OutputHandler

// OutputHandler observes the progress of a solution run.
//
// Events arrive in order: SolutionName, then for parse-once solutions
// ParseStart followed by ParseEnd or ParseEndTimed, then PartStart for each
// part followed by one of PartOutput, PartOutputTimed or PartNotImplemented.
// The timed variants are used only when the run was asked to be timed.
type OutputHandler interface {
	SolutionName(name string)
	ParseStart()
	ParseEnd()
	ParseEndTimed(d time.Duration)
	PartStart(part Part)
	PartOutput(part Part, output any)
	PartOutputTimed(part Part, output any, d time.Duration)
	PartNotImplemented(part Part)
}
