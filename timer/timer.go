package timer

// Sleep blocks the calling goroutine's thread for the given number of
// seconds by arming the process-wide waitable timer with a relative
// deadline and waiting for it to fire. The argument may be fractional for
// sub-second precision.
//
// A zero or negative duration yields the thread instead of arming the
// timer, keeping the hot path of busy loops cheap. Arming or waiting
// failure is returned as an OS error and never retried.
//
// The underlying timer is a single reusable OS resource: arming it is
// last-write-wins, so concurrent Sleep calls from multiple threads require
// external serialization.
func Sleep(seconds float64) error {
	if seconds <= 0 {
		sysYield()
		return nil
	}
	return sysSleep(seconds)
}
