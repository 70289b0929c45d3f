package constants

import (
	"encoding/json"
	"strings"

	customErr "github.com/Rocker-Mitchell/aoc-2025/pkg/errors"
)

// Configuration constants.
const (
	DefaultInputDir     = "inputs"
	DefaultTimed        = false
	DefaultMinTimingMs  = 0
	DefaultOutputFormat = OutputFormatText
	DefaultLogDir       = "logs"
	LogFileName         = "app.log"
)

// Environment variable names.
const (
	EnvInputDir     = "AOC_INPUT_DIR"
	EnvTimed        = "AOC_TIMED"
	EnvMinTimingMs  = "AOC_MIN_TIMING_MS"
	EnvOutputFormat = "AOC_OUTPUT_FORMAT"
	EnvLogDir       = "LOG_DIR"
)

// Input file naming.
const (
	InputFileFormat = "day%02d.txt"
	MaxDay          = 25
)

// Console output messages.
const (
	ConsoleSolutionNameFormat = "= %s ="
	ConsolePartFormat         = "-- %s --"
	ConsoleParsedFormat       = "Input parsed in %s"
	ConsoleNotImplemented     = "not implemented"
)

// Report output format.
type OutputFormat int

const (
	OutputFormatText OutputFormat = iota
	OutputFormatYAML
	OutputFormatJSON
)

func (f OutputFormat) String() string {
	switch f {
	case OutputFormatText:
		return "text"
	case OutputFormatYAML:
		return "yaml"
	case OutputFormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the format as its name.
func (f OutputFormat) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// ParseOutputFormat accepts a format name in any letter case.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text":
		return OutputFormatText, nil
	case "yaml", "yml":
		return OutputFormatYAML, nil
	case "json":
		return OutputFormatJSON, nil
	default:
		return OutputFormatText, customErr.ErrInvalidOutputFormat
	}
}
