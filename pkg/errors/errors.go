package errors

import "errors"

// Error messages.
var (
	ErrEmptyInput          = errors.New("input was empty")
	ErrEmptyLine           = errors.New("line was empty")
	ErrDayNotImplemented   = errors.New("solution not yet implemented")
	ErrInputNotFound       = errors.New("input file not found")
	ErrSolutionPanicked    = errors.New("solution panicked")
	ErrInvalidOutputFormat = errors.New("invalid output format")
)
