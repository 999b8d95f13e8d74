package clock

import (
	"sync"

	"go.uber.org/zap"

	"github.com/clockwerk-io/systime/calendar"
)

// Process-wide state sampled once by Init. The counter frequency never
// changes after boot; the timezone attributes deliberately reflect OS
// state at process start, matching the one-time-at-import semantics of
// the facility this package replaces.
var (
	initOnce sync.Once
	initErr  error

	frequency int64

	startTimezone int64
	startAltzone  int64
	startDaylight bool
	startStdName  string
	startDstName  string
)

// Init samples the monotonic counter frequency and the process-start
// timezone attributes. It runs at most once; later calls return the first
// outcome. All clock reads that need the frequency call Init themselves,
// but tests should call it explicitly rather than rely on call order.
func Init() error {
	initOnce.Do(func() {
		frequency, initErr = sysFrequency()
		if initErr != nil {
			return
		}

		z, err := sysReadZone()
		if err != nil {
			initErr = err
			return
		}
		startTimezone = z.StdBias
		startAltzone = z.StdBias + z.DstBias
		startDaylight = z.HasDST
		startStdName = z.StdName
		startDstName = z.DstName

		Logger().Debug("clock state initialized",
			zap.Int64("frequency", frequency),
			zap.Int64("timezone", startTimezone),
			zap.Int64("altzone", startAltzone),
			zap.Bool("daylight", startDaylight),
			zap.String("std", startStdName),
			zap.String("dst", startDstName))
	})
	return initErr
}

// Time returns wall-clock seconds since the Unix epoch from the OS's
// highest-resolution system-time query. The wall clock is adjustable and
// may jump; it is not monotonic.
func Time() float64 {
	return sysWalltime()
}

// TimeNs returns the wall clock as integer nanoseconds, truncated from the
// seconds reading.
func TimeNs() int64 {
	return int64(Time() * 1e9)
}

// Monotonic returns elapsed seconds since an arbitrary starting point using
// the hardware performance counter divided by the frequency sampled at
// Init. The value never decreases. A counter query failure is an OS error.
func Monotonic() (float64, error) {
	if err := Init(); err != nil {
		return 0, err
	}
	counter, err := sysCounter()
	if err != nil {
		return 0, err
	}
	return float64(counter) / float64(frequency), nil
}

// MonotonicNs returns the monotonic clock as integer nanoseconds,
// truncated from the seconds reading.
func MonotonicNs() (int64, error) {
	s, err := Monotonic()
	if err != nil {
		return 0, err
	}
	return int64(s * 1e9), nil
}

// PerfCounter is an alias of Monotonic: both name the same counter.
func PerfCounter() (float64, error) { return Monotonic() }

// PerfCounterNs is an alias of MonotonicNs.
func PerfCounterNs() (int64, error) { return MonotonicNs() }

// ProcessTime returns the accumulated kernel-mode plus user-mode CPU time
// of the calling process, in seconds.
func ProcessTime() (float64, error) {
	return sysProcessTime()
}

// ProcessTimeNs returns the process CPU time as integer nanoseconds,
// truncated from the seconds reading.
func ProcessTimeNs() (int64, error) {
	s, err := ProcessTime()
	if err != nil {
		return 0, err
	}
	return int64(s * 1e9), nil
}

// ThreadTime returns the accumulated kernel-mode plus user-mode CPU time
// of the calling thread, in seconds.
func ThreadTime() (float64, error) {
	return sysThreadTime()
}

// ThreadTimeNs returns the thread CPU time as integer nanoseconds,
// truncated from the seconds reading.
func ThreadTimeNs() (int64, error) {
	s, err := ThreadTime()
	if err != nil {
		return 0, err
	}
	return int64(s * 1e9), nil
}

// LocalNow returns the broken-down local time as reported directly by the
// OS, without decomposing an epoch reading. The DST flag of the result is
// always 0.
func LocalNow() (calendar.StructTime, error) {
	return sysLocalNow()
}

// Timezone returns the standard UTC offset in seconds, west-positive,
// as sampled at process start. Meaningful only after a successful Init.
func Timezone() int64 {
	mustInit()
	return startTimezone
}

// Altzone returns the combined standard+daylight UTC offset in seconds,
// west-positive, as sampled at process start. Meaningful only after a
// successful Init.
func Altzone() int64 {
	mustInit()
	return startAltzone
}

// Daylight reports whether the zone rule in effect at process start
// defines a daylight transition. Meaningful only after a successful Init.
func Daylight() bool {
	mustInit()
	return startDaylight
}

// TZName returns the standard and daylight zone display names sampled at
// process start. Meaningful only after a successful Init.
func TZName() (std, dst string) {
	mustInit()
	return startStdName, startDstName
}

// mustInit makes the attribute getters self-initializing so call order
// does not matter. The getters themselves carry no error path: Init is
// the only error surface, and after a failed Init the attributes read as
// zero values. Callers that must distinguish a zero offset from failure
// check Init explicitly.
func mustInit() {
	if err := Init(); err != nil {
		Logger().Error("clock init failed", zap.Error(err))
	}
}
