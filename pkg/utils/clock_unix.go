// pkg/utils/clock_unix.go

package utils

import "time"

var started = time.Now()

func Now() time.Time {
	return time.Now()
}

// Clock returns the time elapsed since the process started.
func Clock() time.Duration {
	return time.Since(started)
}
