package systime

import (
	"math"

	"github.com/clockwerk-io/systime/calendar"
	"github.com/clockwerk-io/systime/clock"
	"github.com/clockwerk-io/systime/strftime"
	"github.com/clockwerk-io/systime/timer"
)

// Parser is the contract for the external free-text date/time parser: it
// accepts a format string and text and returns a broken-down time. This
// library supplies the StructTime shape and the Mktime/Gmtime pair a
// parser needs for round-tripping, but does not implement parsing.
type Parser interface {
	Parse(format, value string) (calendar.StructTime, error)
}

// Init samples the process-wide clock state: the monotonic counter
// frequency and the timezone attributes reported by Timezone, Altzone,
// Daylight and TZName. It runs at most once. The attribute getters
// self-initialize but have no error path of their own; Init is the only
// place an initialization failure surfaces, so programs that must
// distinguish a zero offset from failure check its result.
func Init() error {
	return clock.Init()
}

// Time returns the current wall-clock time in seconds since the epoch.
// Fractions of a second are present if the system clock provides them.
func Time() float64 { return clock.Time() }

// TimeNs returns the current wall-clock time in nanoseconds since the
// epoch, truncated from the seconds reading.
func TimeNs() int64 { return clock.TimeNs() }

// Monotonic returns the monotonic clock in seconds. It cannot go backward;
// only differences between readings are meaningful.
func Monotonic() (float64, error) { return clock.Monotonic() }

// MonotonicNs returns the monotonic clock as integer nanoseconds.
func MonotonicNs() (int64, error) { return clock.MonotonicNs() }

// PerfCounter is an alias of Monotonic.
func PerfCounter() (float64, error) { return clock.PerfCounter() }

// PerfCounterNs is an alias of MonotonicNs.
func PerfCounterNs() (int64, error) { return clock.PerfCounterNs() }

// ProcessTime returns CPU time for profiling: the sum of the kernel and
// user-space CPU time of the calling process, in seconds.
func ProcessTime() (float64, error) { return clock.ProcessTime() }

// ProcessTimeNs returns the process CPU time as integer nanoseconds.
func ProcessTimeNs() (int64, error) { return clock.ProcessTimeNs() }

// ThreadTime returns CPU time for profiling: the sum of the kernel and
// user-space CPU time of the calling thread, in seconds.
func ThreadTime() (float64, error) { return clock.ThreadTime() }

// ThreadTimeNs returns the thread CPU time as integer nanoseconds.
func ThreadTimeNs() (int64, error) { return clock.ThreadTimeNs() }

// Sleep delays execution for the given number of seconds. The argument
// may be fractional for sub-second precision. It fails with an OS error
// if arming or waiting on the underlying timer fails.
func Sleep(seconds float64) error { return timer.Sleep(seconds) }

// Gmtime converts seconds since the epoch to a broken-down time. The DST
// flag of the result is always 0.
func Gmtime(seconds float64) calendar.StructTime {
	return calendar.FromEpoch(int64(math.Floor(seconds)))
}

// GmtimeNow converts the current wall-clock reading.
func GmtimeNow() calendar.StructTime {
	return Gmtime(Time())
}

// Localtime converts seconds since the epoch to a broken-down time. With
// an explicit seconds argument it performs the same decomposition as
// Gmtime; no DST inference is attempted.
func Localtime(seconds float64) calendar.StructTime {
	return Gmtime(seconds)
}

// LocaltimeNow returns the broken-down local time as reported directly by
// the OS.
func LocaltimeNow() (calendar.StructTime, error) {
	return clock.LocalNow()
}

// Mktime converts a broken-down local time to seconds since the epoch,
// applying the UTC offset selected by the DST flag of t. The zone rule is
// re-read from the OS on every call. Note that Mktime(Gmtime(0)) will not
// generally return zero: in zones with a nonzero offset the result equals
// the Timezone or Altzone attribute instead.
func Mktime(t calendar.StructTime) (float64, error) {
	off, err := clock.UTCOffset(t.IsDST())
	if err != nil {
		return 0, err
	}
	return float64(calendar.ToEpoch(t, off)), nil
}

// Strftime renders t according to a format specification. Unrecognized
// format codes pass through literally.
func Strftime(format string, t calendar.StructTime) string {
	return strftime.Format(t, format)
}

// Asctime renders t in the fixed layout 'Sat Jun  6 16:26:11 1998'.
func Asctime(t calendar.StructTime) string {
	return strftime.Asctime(t)
}

// AsctimeNow renders the current local time in the asctime layout.
func AsctimeNow() (string, error) {
	st, err := LocaltimeNow()
	if err != nil {
		return "", err
	}
	return Asctime(st), nil
}

// Ctime converts seconds since the epoch to the asctime layout. It is
// equivalent to Asctime(Localtime(seconds)).
func Ctime(seconds float64) string {
	return Asctime(Localtime(seconds))
}

// CtimeNow renders the current time in the asctime layout.
func CtimeNow() (string, error) {
	return AsctimeNow()
}

// GetClockInfo returns the metadata of the named clock. Unknown names are
// an invalid-argument error.
func GetClockInfo(name string) (clock.Info, error) {
	return clock.GetInfo(name)
}

// Timezone returns the standard UTC offset in seconds, west-positive,
// sampled at process start.
func Timezone() int64 { return clock.Timezone() }

// Altzone returns the combined standard+daylight UTC offset in seconds,
// west-positive, sampled at process start.
func Altzone() int64 { return clock.Altzone() }

// Daylight reports whether the process-start zone rule defines a daylight
// transition.
func Daylight() bool { return clock.Daylight() }

// TZName returns the standard and daylight zone display names sampled at
// process start.
func TZName() (std, dst string) { return clock.TZName() }
