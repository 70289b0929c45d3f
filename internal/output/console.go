package output

import (
	"fmt"
	"io"
	"time"

	"github.com/Rocker-Mitchell/aoc-2025/pkg/constants"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/solution"
)

// ConsoleHandler prints a run as plain text.
//
// Timed events shorter than the minimum timing are printed as if the run
// was untimed.
type ConsoleHandler struct {
	w         io.Writer
	minTiming time.Duration
	err       error
}

// NewConsoleHandler returns a handler printing to w. Timings shorter than
// minTiming are left out.
func NewConsoleHandler(w io.Writer, minTiming time.Duration) *ConsoleHandler {
	return &ConsoleHandler{w: w, minTiming: minTiming}
}

// Err returns the first write error, if any.
func (c *ConsoleHandler) Err() error {
	return c.err
}

func (c *ConsoleHandler) SolutionName(name string) {
	c.printf(constants.ConsoleSolutionNameFormat+"\n", name)
}

func (c *ConsoleHandler) ParseStart() {}

func (c *ConsoleHandler) ParseEnd() {}

func (c *ConsoleHandler) ParseEndTimed(d time.Duration) {
	if c.overMin(d) {
		c.printf(constants.ConsoleParsedFormat+"\n", FormatDuration(d))
	}
}

func (c *ConsoleHandler) PartStart(part solution.Part) {
	c.printf(constants.ConsolePartFormat+"\n", part)
}

func (c *ConsoleHandler) PartOutput(_ solution.Part, output any) {
	c.printf("%v\n", output)
}

func (c *ConsoleHandler) PartOutputTimed(part solution.Part, output any, d time.Duration) {
	if !c.overMin(d) {
		c.PartOutput(part, output)
		return
	}
	c.printf("%v (%s)\n", output, FormatDuration(d))
}

func (c *ConsoleHandler) PartNotImplemented(_ solution.Part) {
	c.printf("%s\n", constants.ConsoleNotImplemented)
}

func (c *ConsoleHandler) overMin(d time.Duration) bool {
	return d >= c.minTiming
}

func (c *ConsoleHandler) printf(format string, args ...any) {
	if c.err != nil {
		return
	}
	_, c.err = fmt.Fprintf(c.w, format, args...)
}
