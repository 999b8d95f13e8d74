// Package timer implements a high-resolution blocking sleep on top of an
// absolute-deadline OS timer primitive rather than a busy-wait.
//
// One waitable timer handle is created lazily on first use and reused for
// the lifetime of the process; it is never closed. Sleep has no
// cancellation path: a caller needing cancellable delay must compose this
// primitive with an externally-signaled wait.
package timer
