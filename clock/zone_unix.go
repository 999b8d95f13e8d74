//go:build !windows

package clock

import (
	"time"

	"github.com/clockwerk-io/systime/calendar"
)

// sysReadZone derives the bias pair from the process timezone database by
// sampling the offsets in effect on January 1 and July 1 of the current
// year: the larger (more eastward) offset carries the daylight rule. The
// database is consulted afresh on every call.
func sysReadZone() (Zone, error) {
	year := time.Now().Year()
	jan := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	jul := time.Date(year, time.July, 1, 0, 0, 0, 0, time.Local)

	janName, janOff := jan.Zone()
	julName, julOff := jul.Zone()

	if janOff == julOff {
		return Zone{
			StdBias: -int64(janOff),
			StdName: janName,
			DstName: janName,
		}, nil
	}

	stdOff, stdName := janOff, janName
	dstOff, dstName := julOff, julName
	if julOff < janOff {
		// Southern hemisphere: July carries the standard rule.
		stdOff, stdName = julOff, julName
		dstOff, dstName = janOff, janName
	}

	return Zone{
		StdBias: -int64(stdOff),
		DstBias: -int64(dstOff - stdOff),
		StdName: stdName,
		DstName: dstName,
		HasDST:  true,
	}, nil
}

// sysLocalNow reads the OS's broken-down local time directly rather than
// decomposing an epoch reading.
func sysLocalNow() (calendar.StructTime, error) {
	now := time.Now()
	return calendar.New(now.Year(), int(now.Month()), now.Day(),
		now.Hour(), now.Minute(), now.Second(), 0), nil
}
