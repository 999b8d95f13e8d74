//go:build !windows && !linux

package clock

import (
	"time"

	"github.com/clockwerk-io/systime/errors"
)

const (
	implTime        = "time.Now"
	implMonotonic   = "time.Since"
	implProcessTime = "unsupported"
	implThreadTime  = "unsupported"

	resolutionTime = 1e-9
	resolutionCPU  = 1e-9
)

// counterBase anchors the portable monotonic reading; time.Since uses the
// runtime's monotonic clock under the hood.
var counterBase = time.Now()

func sysWalltime() float64 {
	t := time.Now()
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

func sysCounter() (int64, error) {
	return time.Since(counterBase).Nanoseconds(), nil
}

func sysFrequency() (int64, error) {
	return 1_000_000_000, nil
}

func sysProcessTime() (float64, error) {
	return 0, errors.Unsupported(errors.PhaseClock, "process CPU time is not available on this platform")
}

func sysThreadTime() (float64, error) {
	return 0, errors.Unsupported(errors.PhaseClock, "thread CPU time is not available on this platform")
}
