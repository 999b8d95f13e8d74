// Package clock unifies three distinct OS clock sources behind
// precision-correct read functions: the adjustable wall clock, the
// monotonic performance counter, and process/thread CPU-time accounting.
//
// Every clock read is a direct, synchronous OS call on the invoking
// goroutine's thread; there is no internal scheduler and no retry. The
// counter frequency and the process-start timezone attributes (Timezone,
// Altzone, Daylight, TZName) are sampled once by Init; the timezone
// snapshot used for offset computation is re-read from the OS on every
// call so that live zone changes are observed. Concurrent offset queries
// during an OS zone reconfiguration may observe torn state; callers must
// tolerate that.
//
// Integer-nanosecond variants are defined as int64(seconds * 1e9) with
// truncation toward zero. This is deliberate and preserved exactly for
// compatibility, including its precision loss for large wall-clock values.
package clock
