package parse

import (
	"strconv"

	customErr "github.com/Rocker-Mitchell/aoc-2025/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Int parses text as a base 10 integer of type T.
//
// Failures are returned as an *IntError holding the *strconv.NumError, which
// carries strconv.ErrRange when the value does not fit in T.
func Int[T constraints.Integer](text string) (T, error) {
	if signed[T]() {
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return 0, customErr.NewIntError(text, err)
		}
		if int64(T(v)) != v {
			return 0, customErr.NewIntError(text, rangeError("ParseInt", text))
		}
		return T(v), nil
	}

	v, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, customErr.NewIntError(text, err)
	}
	if uint64(T(v)) != v {
		return 0, customErr.NewIntError(text, rangeError("ParseUint", text))
	}
	return T(v), nil
}

// Digit converts an ASCII decimal digit to its value.
func Digit[T constraints.Integer](c rune) (T, error) {
	if c < '0' || c > '9' {
		return 0, &customErr.CharError{Char: c}
	}
	return T(c - '0'), nil
}

func signed[T constraints.Integer]() bool {
	var zero T
	return ^zero < zero
}

func rangeError(fn, text string) *strconv.NumError {
	return &strconv.NumError{Func: fn, Num: text, Err: strconv.ErrRange}
}
