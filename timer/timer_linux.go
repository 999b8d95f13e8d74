//go:build linux

package timer

import (
	"runtime"

	"golang.org/x/sys/unix"

	"github.com/clockwerk-io/systime/errors"
)

func sysSleep(seconds float64) error {
	var now unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &now); err != nil {
		return errors.OSFailure(errors.PhaseTimer, "clock_gettime(CLOCK_MONOTONIC)", err)
	}

	deadline := unix.NsecToTimespec(unix.TimespecToNsec(now) + int64(seconds*1e9))

	for {
		err := unix.ClockNanosleep(unix.CLOCK_MONOTONIC, unix.TIMER_ABSTIME, &deadline, nil)
		if err == nil {
			return nil
		}
		// EINTR is not a timer failure: the absolute deadline is unchanged
		// and the kernel expects the caller to resume the wait.
		if err == unix.EINTR {
			continue
		}
		return errors.OSFailure(errors.PhaseTimer, "clock_nanosleep(TIMER_ABSTIME)", err)
	}
}

func sysYield() {
	runtime.Gosched()
}
