package runner_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/Rocker-Mitchell/aoc-2025/internal/days"
	"github.com/Rocker-Mitchell/aoc-2025/internal/days/day00"
	"github.com/Rocker-Mitchell/aoc-2025/internal/mocks"
	"github.com/Rocker-Mitchell/aoc-2025/internal/runner"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/constants"
	customErr "github.com/Rocker-Mitchell/aoc-2025/pkg/errors"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/solution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "aoc-runner-logs")
	if err != nil {
		panic(err)
	}
	os.Setenv(constants.EnvLogDir, dir)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

// broken parses anything and panics in part 1.
type broken struct{}

func (broken) Name() string { return "Broken" }

func (broken) Parse(input string) (int, error) { return len(input), nil }

func (broken) Part1(int) int { panic("index out of range") }

func (broken) Part2(int) int { return 0 }

func testRegistry() days.Registry {
	return days.Registry{
		0: day00.Runnable,
		9: func() solution.Runnable { return solution.Parsed[int, int, int](broken{}) },
	}
}

const warmUpInput = "1\n2\n3\n"

func TestRunText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockLoader(ctrl)
	loader.EXPECT().Load(0, "").Return(warmUpInput, nil)

	var buf bytes.Buffer
	r := runner.NewRunner(testRegistry(), loader, &buf)
	err := r.Run(0, runner.Options{Format: constants.OutputFormatText})

	require.NoError(t, err)
	assert.Equal(t,
		"= Day 0: Example Solution =\n"+
			"-- Part 1 --\n"+
			"3\n"+
			"-- Part 2 --\n"+
			"6\n",
		buf.String())
}

func TestRunTimedBelowMinimum(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockLoader(ctrl)
	loader.EXPECT().Load(0, "custom.txt").Return(warmUpInput, nil)

	var buf bytes.Buffer
	r := runner.NewRunner(testRegistry(), loader, &buf)
	err := r.Run(0, runner.Options{
		InputPath: "custom.txt",
		Timed:     true,
		MinTiming: time.Hour,
		Format:    constants.OutputFormatText,
	})

	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "Input parsed in")
}

func TestRunJSONReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockLoader(ctrl)
	loader.EXPECT().Load(0, "").Return(warmUpInput, nil)

	var buf bytes.Buffer
	r := runner.NewRunner(testRegistry(), loader, &buf)
	require.NoError(t, r.Run(0, runner.Options{Timed: true, Format: constants.OutputFormatJSON}))

	var report map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, "Day 0: Example Solution", report["solution"])
	assert.NotEmpty(t, report["run_id"])
	assert.Contains(t, report, "parse")
	parts, ok := report["parts"].([]any)
	require.True(t, ok)
	assert.Len(t, parts, 2)
}

func TestRunPanicIsRecovered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockLoader(ctrl)
	loader.EXPECT().Load(9, "").Return("abc", nil)

	var buf bytes.Buffer
	r := runner.NewRunner(testRegistry(), loader, &buf)
	err := r.Run(9, runner.Options{Format: constants.OutputFormatYAML})

	require.ErrorIs(t, err, customErr.ErrSolutionPanicked)
	assert.Contains(t, err.Error(), "index out of range")

	var report map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, "Broken", report["solution"])
	assert.Contains(t, report["error"], "solution panicked")
	assert.Equal(t, []any{map[string]any{"part": "Part 1"}}, report["parts"])
}

func TestRunMissingDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockLoader(ctrl)

	var buf bytes.Buffer
	r := runner.NewRunner(testRegistry(), loader, &buf)
	err := r.Run(4, runner.Options{})

	assert.ErrorIs(t, err, customErr.ErrDayNotImplemented)
	assert.Empty(t, buf.String())
}

func TestRunInputError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockLoader(ctrl)
	loader.EXPECT().Load(0, "").Return("", customErr.ErrInputNotFound)

	var buf bytes.Buffer
	r := runner.NewRunner(testRegistry(), loader, &buf)
	err := r.Run(0, runner.Options{})

	assert.ErrorIs(t, err, customErr.ErrInputNotFound)
	assert.Empty(t, buf.String())
}

func TestRunParseErrorIsReturnedAsIs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := mocks.NewMockLoader(ctrl)
	loader.EXPECT().Load(0, "").Return("1\nx\n", nil)

	var buf bytes.Buffer
	r := runner.NewRunner(testRegistry(), loader, &buf)
	err := r.Run(0, runner.Options{Format: constants.OutputFormatText})

	var lineErr *customErr.InvalidLineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 2, lineErr.Line)
	assert.Equal(t, "= Day 0: Example Solution =\n", buf.String())
}
