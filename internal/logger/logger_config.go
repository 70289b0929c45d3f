package logger

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/Rocker-Mitchell/aoc-2025/pkg/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	timeKey   = "time"
	levelKey  = "level"
	sourceKey = "source"
	msgKey    = "msg"
)

var (
	sugarLogger *zap.SugaredLogger
	initOnce    sync.Once

	// Puzzle answers go to stdout, so the console only shows warnings unless
	// verbose output is requested.
	fileLevel    = zap.NewAtomicLevelAt(zap.InfoLevel)
	consoleLevel = zap.NewAtomicLevelAt(zap.WarnLevel)
)

// getProjectRoot finds the project root directory by looking for go.mod file.
func getProjectRoot() string {
	// Get the current file's directory.
	_, currentFile, _, ok := runtime.Caller(0)
	var currentDir string
	if !ok || currentFile == "" {
		wd, _ := os.Getwd()
		currentDir = wd
	} else {
		currentDir = filepath.Dir(currentFile)
	}

	// Walk up the directory tree to find go.mod.
	for {
		goModPath := filepath.Join(currentDir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return currentDir
		}

		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			// Reached the root directory, fallback to current working directory.
			wd, _ := os.Getwd()
			return wd
		}
		currentDir = parent
	}
}

// getLogPath returns the absolute path to the log file. Relative LOG_DIR
// values are resolved against the project root.
func getLogPath() string {
	logDir := os.Getenv(constants.EnvLogDir)
	if logDir == "" {
		logDir = constants.DefaultLogDir
	}
	if !filepath.IsAbs(logDir) {
		logDir = filepath.Join(getProjectRoot(), logDir)
	}

	return filepath.Join(logDir, constants.LogFileName)
}

func initializeLogger() {
	logPath := getLogPath()

	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		logPath = constants.LogFileName
	}

	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    50,
		MaxBackups: 10,
		MaxAge:     28,
		Compress:   true,
		LocalTime:  true,
	})

	stdWriter := zapcore.Lock(zapcore.AddSync(os.Stderr))

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        timeKey,
		LevelKey:       levelKey,
		NameKey:        sourceKey,
		MessageKey:     msgKey,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	fileCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		w,
		fileLevel,
	)

	stdCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		stdWriter,
		consoleLevel,
	)

	core := zapcore.NewTee(fileCore, stdCore)

	log := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	sugarLogger = log.Sugar()
}

// SetVerbose switches every logger between debug output and the default levels.
func SetVerbose(verbose bool) {
	if verbose {
		fileLevel.SetLevel(zap.DebugLevel)
		consoleLevel.SetLevel(zap.DebugLevel)
		return
	}
	fileLevel.SetLevel(zap.InfoLevel)
	consoleLevel.SetLevel(zap.WarnLevel)
}

// Sync flushes buffered log entries.
func Sync() {
	if sugarLogger != nil {
		_ = sugarLogger.Sync()
	}
}

// NewNamedLogger creates a new named SugaredLogger for a given component.
func NewNamedLogger(name string) *zap.SugaredLogger {
	initOnce.Do(initializeLogger)
	return sugarLogger.Named(name)
}
