package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/Rocker-Mitchell/aoc-2025/internal/config"
	"github.com/Rocker-Mitchell/aoc-2025/internal/days"
	"github.com/Rocker-Mitchell/aoc-2025/internal/input"
	"github.com/Rocker-Mitchell/aoc-2025/internal/logger"
	"github.com/Rocker-Mitchell/aoc-2025/internal/runner"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/constants"
	customErr "github.com/Rocker-Mitchell/aoc-2025/pkg/errors"
	"github.com/spf13/cobra"
)

type flags struct {
	input       string
	timed       bool
	minTimingMs int64
	format      string
	verbose     bool
}

func main() {
	err := newRootCmd(os.Stdout).Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "aoc <day>",
		Short: "Run Advent of Code solutions",
		Long: `Runs the solution for a puzzle day against its input and prints each part's answer.

Input is read from the day's default file (inputs/dayNN.txt, see AOC_INPUT_DIR)
unless --input names another file.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetVerbose(f.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args[0])
		},
	}
	rootCmd.SetOut(out)

	rootCmd.Flags().StringVarP(&f.input, "input", "i", "", "input file to use instead of the day's default")
	rootCmd.Flags().BoolVarP(&f.timed, "timed", "t", false, "time parsing and each part")
	rootCmd.Flags().Int64Var(&f.minTimingMs, "min-timing-ms", 0, "only print timings of at least this many milliseconds")
	rootCmd.Flags().StringVarP(&f.format, "format", "f", constants.OutputFormatText.String(), "output format: text, yaml or json")
	rootCmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "log debug output to stderr")

	rootCmd.AddCommand(newListCmd())
	return rootCmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the days that have a solution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := days.Default()
			for _, day := range registry.Days() {
				s, err := registry.Get(day)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", day, s.Name()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func run(cmd *cobra.Command, f *flags, dayArg string) error {
	day, err := strconv.Atoi(dayArg)
	if err != nil {
		return fmt.Errorf("invalid day %q: %w", dayArg, err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	opts := runner.Options{
		InputPath: f.input,
		Timed:     cfg.Timed,
		MinTiming: cfg.MinTiming,
		Format:    cfg.OutputFormat,
	}
	if cmd.Flags().Changed("timed") {
		opts.Timed = f.timed
	}
	if cmd.Flags().Changed("min-timing-ms") {
		if f.minTimingMs < 0 {
			return fmt.Errorf("invalid --min-timing-ms %d: must not be negative", f.minTimingMs)
		}
		opts.MinTiming = time.Duration(f.minTimingMs) * time.Millisecond
	}
	if cmd.Flags().Changed("format") {
		opts.Format, err = constants.ParseOutputFormat(f.format)
		if err != nil {
			return fmt.Errorf("invalid --format %q: %w", f.format, err)
		}
	}

	r := runner.NewRunner(days.Default(), input.NewLoader(cfg.InputDir), cmd.OutOrStdout())
	err = r.Run(day, opts)
	if customErr.IsParseError(err) {
		return fmt.Errorf("invalid puzzle input for day %d: %w", day, err)
	}
	return err
}
