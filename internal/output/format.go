package output

import (
	"fmt"
	"time"
)

// FormatDuration renders d with three decimals in µs, ms or s, picking the
// largest unit that keeps the value at or above one. Values are rounded half
// up.
func FormatDuration(d time.Duration) string {
	ns := d.Nanoseconds()
	if ns < 0 {
		ns = 0
	}

	switch {
	case ns < int64(time.Millisecond):
		return fixed3(ns, 1, "µs")
	case ns < int64(time.Second):
		return fixed3(ns, int64(time.Microsecond/time.Nanosecond), "ms")
	default:
		return fixed3(ns, int64(time.Millisecond/time.Nanosecond), "s")
	}
}

// fixed3 prints ns/divisor thousandths of unit as a decimal with three places.
func fixed3(ns, divisor int64, unit string) string {
	thousandths := (ns + divisor/2) / divisor
	return fmt.Sprintf("%d.%03d %s", thousandths/1000, thousandths%1000, unit)
}
