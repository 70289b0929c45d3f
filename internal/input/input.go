package input

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Rocker-Mitchell/aoc-2025/internal/logger"
	"github.com/Rocker-Mitchell/aoc-2025/pkg/constants"
	customErr "github.com/Rocker-Mitchell/aoc-2025/pkg/errors"
	"go.uber.org/zap"
)

//go:generate mockgen -destination=../mocks/mock_loader.go -package=mocks . Loader

// Loader reads puzzle input, either from an explicit file or from the
// default file for a day inside a directory.
type Loader interface {
	Load(day int, path string) (string, error)
}

type loader struct {
	dir    string
	logger *zap.SugaredLogger
}

func NewLoader(dir string) Loader {
	return &loader{
		dir:    dir,
		logger: logger.NewNamedLogger("input"),
	}
}

// DefaultPath returns the default input file for day inside dir.
func DefaultPath(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf(constants.InputFileFormat, day))
}

// Load returns the contents of path, or of the day's default file when path
// is empty.
func (l *loader) Load(day int, path string) (string, error) {
	if path != "" {
		l.logger.Debugf("Reading input file %s", path)
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", fmt.Errorf("could not read input file at: %s: %w (%w)", path, customErr.ErrInputNotFound, err)
			}
			return "", fmt.Errorf("could not read input file at: %s: %w", path, err)
		}
		return string(data), nil
	}

	defaultPath := DefaultPath(l.dir, day)
	l.logger.Debugf("Reading default input file %s", defaultPath)
	data, err := os.ReadFile(defaultPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf(
				"default input file missing: %s: %w\n\nplease create the file or provide the input file argument",
				defaultPath,
				customErr.ErrInputNotFound,
			)
		}
		return "", fmt.Errorf("could not read default input file at: %s: %w", defaultPath, err)
	}
	return string(data), nil
}
