// Package timing measures the wall-clock duration of single operations.
package timing

import "time"

// Measure invokes op exactly once and returns its result with the elapsed time.
func Measure[T any](op func() T) (T, time.Duration) {
	start := time.Now()
	v := op()
	return v, time.Since(start)
}

// MeasureErr is Measure for operations that can fail. The duration is reported
// whether or not op fails.
func MeasureErr[T any](op func() (T, error)) (T, time.Duration, error) {
	start := time.Now()
	v, err := op()
	return v, time.Since(start), err
}
