package errors

import (
	"errors"
	"fmt"
	"math"
)

// ParseError is implemented by every error describing malformed puzzle input.
// ErrEmptyInput and ErrEmptyLine are parse errors as well; use IsParseError
// to test an arbitrary error chain.
type ParseError interface {
	error
	parseError()
}

// LineLengthError reports a line whose length differs from the expected one.
type LineLengthError struct {
	Expected int
	Actual   int
}

func (e *LineLengthError) Error() string {
	return fmt.Sprintf("incorrect line length: expected %d, got %d", e.Expected, e.Actual)
}

func (*LineLengthError) parseError() {}

// CharError reports a character that is not valid at its position.
type CharError struct {
	Char rune
}

func (e *CharError) Error() string {
	return fmt.Sprintf("invalid character: %q", e.Char)
}

func (*CharError) parseError() {}

// IntError reports a substring that could not be converted to an integer.
// Err holds the underlying *strconv.NumError.
type IntError struct {
	String string
	Err    error
}

// NewIntError builds an IntError for text, keeping the conversion failure.
func NewIntError(text string, err error) *IntError {
	return &IntError{String: text, Err: err}
}

func (e *IntError) Error() string {
	return fmt.Sprintf("failed to parse string into integer: %q", e.String)
}

func (e *IntError) Unwrap() error {
	return e.Err
}

func (*IntError) parseError() {}

// StringError reports an unexpected token.
type StringError struct {
	String string
}

func (e *StringError) Error() string {
	return fmt.Sprintf("invalid string: %q", e.String)
}

func (*StringError) parseError() {}

// DelimiterError reports a line that lacks an expected delimiter.
type DelimiterError struct {
	Delimiter string
}

func (e *DelimiterError) Error() string {
	return fmt.Sprintf("no delimiter %q found", e.Delimiter)
}

func (*DelimiterError) parseError() {}

// ChunkDelimiterError reports input that lacks the separator between chunks.
type ChunkDelimiterError struct {
	Delimiter string
}

func (e *ChunkDelimiterError) Error() string {
	return fmt.Sprintf("no chunk delimiter %q found", e.Delimiter)
}

func (*ChunkDelimiterError) parseError() {}

// EmptyChunkError reports a chunk of input with no content.
// ChunkNumber is one-indexed.
type EmptyChunkError struct {
	ChunkNumber int
	Description string
}

func (e *EmptyChunkError) Error() string {
	return fmt.Sprintf("chunk %d (%s) was empty", e.ChunkNumber, e.Description)
}

func (*EmptyChunkError) parseError() {}

// InvalidLineError attaches a one-indexed line number to another parse error.
type InvalidLineError struct {
	Line int
	Err  error
}

// InvalidLineFromZeroIndex converts a zero-based line index to a line number.
// The conversion saturates instead of overflowing.
func InvalidLineFromZeroIndex(index int, err error) *InvalidLineError {
	line := index
	if line < math.MaxInt {
		line++
	}
	return &InvalidLineError{Line: line, Err: err}
}

// InvalidLineFromOneBased wraps err with an already one-indexed line number.
func InvalidLineFromOneBased(line int, err error) *InvalidLineError {
	return &InvalidLineError{Line: line, Err: err}
}

func (e *InvalidLineError) Error() string {
	return fmt.Sprintf("failure parsing line %d: %v", e.Line, e.Err)
}

func (e *InvalidLineError) Unwrap() error {
	return e.Err
}

func (*InvalidLineError) parseError() {}

// IsParseError reports whether any error in err's chain describes malformed input.
func IsParseError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrEmptyInput) || errors.Is(err, ErrEmptyLine) {
		return true
	}
	var pe ParseError
	return errors.As(err, &pe)
}
