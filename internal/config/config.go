package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Rocker-Mitchell/aoc-2025/internal/logger"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/constants"
	"github.com/joho/godotenv"
)

// Config holds the settings read from the environment. Command line flags
// override them.
type Config struct {
	InputDir     string
	Timed        bool
	MinTiming    time.Duration
	OutputFormat constants.OutputFormat
}

// NewConfig reads the configuration from the environment, loading a .env file
// from the working directory first when one exists. Unset values fall back to
// defaults; malformed values are errors.
func NewConfig() (*Config, error) {
	// The logger reads LOG_DIR once, so .env has to be loaded before it starts.
	loaded := false
	_, err := os.Stat(".env")
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat .env file: %w", err)
		}
	} else {
		err = godotenv.Load(".env")
		if err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
		loaded = true
	}

	if loaded {
		logger.NewNamedLogger("config").Debug(".env file loaded")
	}

	inputDir := inputConfig()
	timed, minTiming, err := timingConfig()
	if err != nil {
		return nil, err
	}
	outputFormat, err := outputConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		InputDir:     inputDir,
		Timed:        timed,
		MinTiming:    minTiming,
		OutputFormat: outputFormat,
	}, nil
}

func inputConfig() string {
	logger := logger.NewNamedLogger("config")

	inputDir := os.Getenv(constants.EnvInputDir)
	if inputDir == "" {
		inputDir = constants.DefaultInputDir
		logger.Debugf("%s is not set, using default value %s", constants.EnvInputDir, constants.DefaultInputDir)
	}

	return inputDir
}

func timingConfig() (bool, time.Duration, error) {
	logger := logger.NewNamedLogger("config")

	timed := constants.DefaultTimed
	timedStr := os.Getenv(constants.EnvTimed)
	if timedStr == "" {
		logger.Debugf("%s is not set, using default value %t", constants.EnvTimed, constants.DefaultTimed)
	} else {
		var err error
		timed, err = strconv.ParseBool(timedStr)
		if err != nil {
			return false, 0, fmt.Errorf("failed to parse %s: %w", constants.EnvTimed, err)
		}
	}

	minTimingMs := uint64(constants.DefaultMinTimingMs)
	minTimingStr := os.Getenv(constants.EnvMinTimingMs)
	if minTimingStr == "" {
		logger.Debugf("%s is not set, using default value %d", constants.EnvMinTimingMs, constants.DefaultMinTimingMs)
	} else {
		var err error
		minTimingMs, err = strconv.ParseUint(minTimingStr, 10, 32)
		if err != nil {
			return false, 0, fmt.Errorf("failed to parse %s: %w", constants.EnvMinTimingMs, err)
		}
	}

	return timed, time.Duration(minTimingMs) * time.Millisecond, nil
}

func outputConfig() (constants.OutputFormat, error) {
	logger := logger.NewNamedLogger("config")

	formatStr := os.Getenv(constants.EnvOutputFormat)
	if formatStr == "" {
		logger.Debugf("%s is not set, using default value %s", constants.EnvOutputFormat, constants.DefaultOutputFormat)
		return constants.DefaultOutputFormat, nil
	}

	format, err := constants.ParseOutputFormat(formatStr)
	if err != nil {
		return format, fmt.Errorf("failed to parse %s %q: %w", constants.EnvOutputFormat, formatStr, err)
	}
	return format, nil
}
