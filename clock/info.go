package clock

import (
	"strings"

	"github.com/clockwerk-io/systime/errors"
)

// Info describes the static metadata of one clock source.
type Info struct {
	Resolution     float64 // smallest representable step, in seconds
	Adjustable     bool    // whether the clock can jump under OS adjustment
	Monotonic      bool    // whether successive reads never decrease
	Implementation string  // the backing OS API
}

// GetInfo returns the metadata for a clock identifier. Recognized names
// are "time", "monotonic", "perf_counter", "process_time" and
// "thread_time"; lookup is case-insensitive. An unknown name is a contract
// violation reported as an invalid-argument error, never an OS error.
func GetInfo(name string) (Info, error) {
	if err := Init(); err != nil {
		return Info{}, err
	}

	switch strings.ToLower(name) {
	case "monotonic", "perf_counter":
		return Info{
			Resolution:     1 / float64(frequency),
			Adjustable:     false,
			Monotonic:      true,
			Implementation: implMonotonic,
		}, nil
	case "process_time":
		return Info{
			Resolution:     resolutionCPU,
			Adjustable:     false,
			Monotonic:      true,
			Implementation: implProcessTime,
		}, nil
	case "thread_time":
		return Info{
			Resolution:     resolutionCPU,
			Adjustable:     false,
			Monotonic:      true,
			Implementation: implThreadTime,
		}, nil
	case "time":
		return Info{
			Resolution:     resolutionTime,
			Adjustable:     true,
			Monotonic:      false,
			Implementation: implTime,
		}, nil
	}

	return Info{}, errors.InvalidClock(name)
}
