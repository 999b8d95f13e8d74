//go:build linux

package clock

import (
	"golang.org/x/sys/unix"

	"github.com/clockwerk-io/systime/errors"
)

const (
	implTime        = "clock_gettime(CLOCK_REALTIME)"
	implMonotonic   = "clock_gettime(CLOCK_MONOTONIC)"
	implProcessTime = "clock_gettime(CLOCK_PROCESS_CPUTIME_ID)"
	implThreadTime  = "clock_gettime(CLOCK_THREAD_CPUTIME_ID)"

	resolutionTime = 1e-9
	resolutionCPU  = 1e-9
)

// linuxFrequency is the tick rate of the nanosecond-granular clock_gettime
// counter reads.
const linuxFrequency = 1_000_000_000

func gettime(clockid int32, op string) (unix.Timespec, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(clockid, &ts); err != nil {
		return ts, errors.OSFailure(errors.PhaseClock, op, err)
	}
	return ts, nil
}

func sysWalltime() float64 {
	ts, err := gettime(unix.CLOCK_REALTIME, "clock_gettime(CLOCK_REALTIME)")
	if err != nil {
		// CLOCK_REALTIME cannot fail with a valid timespec pointer; keep
		// the wall clock infallible like the facility it replaces.
		Logger().Error(err.Error())
		return 0
	}
	return float64(ts.Sec) + float64(ts.Nsec)/1e9
}

func sysCounter() (int64, error) {
	ts, err := gettime(unix.CLOCK_MONOTONIC, "clock_gettime(CLOCK_MONOTONIC)")
	if err != nil {
		return 0, err
	}
	return int64(ts.Sec)*linuxFrequency + int64(ts.Nsec), nil
}

func sysFrequency() (int64, error) {
	// Probe the clock once so a missing CLOCK_MONOTONIC surfaces at Init
	// rather than on the first read.
	var ts unix.Timespec
	if err := unix.ClockGetres(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0, errors.OSFailure(errors.PhaseClock, "clock_getres(CLOCK_MONOTONIC)", err)
	}
	return linuxFrequency, nil
}

func cpuSeconds(clockid int32, op string) (float64, error) {
	ts, err := gettime(clockid, op)
	if err != nil {
		return 0, err
	}
	return float64(ts.Sec) + float64(ts.Nsec)/1e9, nil
}

func sysProcessTime() (float64, error) {
	return cpuSeconds(unix.CLOCK_PROCESS_CPUTIME_ID, implProcessTime)
}

func sysThreadTime() (float64, error) {
	return cpuSeconds(unix.CLOCK_THREAD_CPUTIME_ID, implThreadTime)
}
