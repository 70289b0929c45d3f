package runner

import (
	"fmt"
	"io"
	"runtime/debug"
	"time"

	"github.com/Rocker-Mitchell/aoc-2025/internal/days"
	"github.com/Rocker-Mitchell/aoc-2025/internal/input"
	"github.com/Rocker-Mitchell/aoc-2025/internal/logger"
	"github.com/Rocker-Mitchell/aoc-2025/internal/output"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/constants"
	customErr "github.com/Rocker-Mitchell/aoc-2025/pkg/errors"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/solution"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options control a single run.
type Options struct {
	// InputPath overrides the day's default input file when set.
	InputPath string
	Timed     bool
	MinTiming time.Duration
	Format    constants.OutputFormat
}

// Runner solves puzzle days and writes their results.
type Runner interface {
	// Run solves day and writes the results to the runner's output.
	Run(day int, opts Options) error
}

type runner struct {
	registry days.Registry
	loader   input.Loader
	out      io.Writer
	logger   *zap.SugaredLogger
}

// NewRunner returns a Runner that looks days up in registry, reads input
// through loader and writes results to out.
func NewRunner(registry days.Registry, loader input.Loader, out io.Writer) Runner {
	return &runner{
		registry: registry,
		loader:   loader,
		out:      out,
		logger:   logger.NewNamedLogger("runner"),
	}
}

func (r *runner) Run(day int, opts Options) error {
	runID := uuid.NewString()
	r.logger.Infof("[RunID: %s] Running day %d", runID, day)

	s, err := r.registry.Get(day)
	if err != nil {
		r.logger.Errorf("[RunID: %s] No solution for day %d: %s", runID, day, err)
		return err
	}

	text, err := r.loader.Load(day, opts.InputPath)
	if err != nil {
		r.logger.Errorf("[RunID: %s] Failed to load input: %s", runID, err)
		return err
	}

	switch opts.Format {
	case constants.OutputFormatText:
		console := output.NewConsoleHandler(r.out, opts.MinTiming)
		if err := r.solve(s, console, text, opts.Timed, runID); err != nil {
			return err
		}
		if err := console.Err(); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	case constants.OutputFormatYAML, constants.OutputFormatJSON:
		report := output.NewReportHandler(runID)
		runErr := r.solve(s, report, text, opts.Timed, runID)
		report.Fail(runErr)
		if err := output.Encode(r.out, report.Report(), opts.Format); err != nil {
			return err
		}
		if runErr != nil {
			return runErr
		}
	default:
		return fmt.Errorf("%w: %d", customErr.ErrInvalidOutputFormat, opts.Format)
	}

	r.logger.Infof("[RunID: %s] Day %d finished", runID, day)
	return nil
}

// solve runs s, turning a panic inside the solution into an error.
func (r *runner) solve(s solution.Runnable, h solution.OutputHandler, text string, timed bool, runID string) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Errorf("[RunID: %s] Solution panicked: %v\n%s", runID, rec, debug.Stack())
			err = fmt.Errorf("%s: %w: %v", s.Name(), customErr.ErrSolutionPanicked, rec)
		}
	}()

	err = s.Run(output.NewLoggingHandler(h, runID, r.logger), text, timed)
	if err != nil {
		r.logger.Errorf("[RunID: %s] Solution failed: %s", runID, err)
	}
	return err
}
