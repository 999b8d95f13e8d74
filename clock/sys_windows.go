//go:build windows

package clock

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/clockwerk-io/systime/calendar"
	"github.com/clockwerk-io/systime/errors"
)

const (
	implTime        = "GetSystemTimeAsFileTime"
	implMonotonic   = "QueryPerformanceCounter"
	implProcessTime = "GetProcessTimes"
	implThreadTime  = "GetThreadTimes"

	resolutionTime = 1e-7 // FILETIME ticks are 100ns
	resolutionCPU  = 1e-7
)

// epochDelta is the seconds between the FILETIME epoch (1601-01-01) and
// the Unix epoch (1970-01-01).
const epochDelta = 11644473600

const timeZoneIDInvalid = 0xFFFFFFFF

var (
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procGetSystemTimeAsFileTime   = kernel32.NewProc("GetSystemTimeAsFileTime")
	procQueryPerformanceCounter   = kernel32.NewProc("QueryPerformanceCounter")
	procQueryPerformanceFrequency = kernel32.NewProc("QueryPerformanceFrequency")
	procGetCurrentProcess         = kernel32.NewProc("GetCurrentProcess")
	procGetCurrentThread          = kernel32.NewProc("GetCurrentThread")
	procGetProcessTimes           = kernel32.NewProc("GetProcessTimes")
	procGetThreadTimes            = kernel32.NewProc("GetThreadTimes")
	procGetTimeZoneInformation    = kernel32.NewProc("GetTimeZoneInformation")
	procGetLocalTime              = kernel32.NewProc("GetLocalTime")
)

// fileTime mirrors the FILETIME layout at the OS call boundary.
type fileTime struct {
	low  uint32
	high uint32
}

func (ft fileTime) seconds() float64 {
	ticks := uint64(ft.high)<<32 | uint64(ft.low)
	return float64(ticks) / 1e7
}

// systemTime mirrors the SYSTEMTIME layout.
type systemTime struct {
	year         uint16
	month        uint16
	dayOfWeek    uint16
	day          uint16
	hour         uint16
	minute       uint16
	second       uint16
	milliseconds uint16
}

// timeZoneInformation mirrors the TIME_ZONE_INFORMATION layout.
type timeZoneInformation struct {
	bias         int32
	standardName [32]uint16
	standardDate systemTime
	standardBias int32
	daylightName [32]uint16
	daylightDate systemTime
	daylightBias int32
}

func sysWalltime() float64 {
	var ft fileTime
	procGetSystemTimeAsFileTime.Call(uintptr(unsafe.Pointer(&ft)))
	return ft.seconds() - epochDelta
}

func sysCounter() (int64, error) {
	var counter int64
	r1, _, e1 := procQueryPerformanceCounter.Call(uintptr(unsafe.Pointer(&counter)))
	if r1 == 0 {
		return 0, errors.OSFailure(errors.PhaseClock, "QueryPerformanceCounter", e1)
	}
	return counter, nil
}

func sysFrequency() (int64, error) {
	var freq int64
	r1, _, e1 := procQueryPerformanceFrequency.Call(uintptr(unsafe.Pointer(&freq)))
	if r1 == 0 {
		return 0, errors.OSFailure(errors.PhaseClock, "QueryPerformanceFrequency", e1)
	}
	return freq, nil
}

// cpuTime sums the kernel and user FILETIME accumulators reported for the
// pseudo-handle returned by current.
func cpuTime(current, times *windows.LazyProc, op string) (float64, error) {
	handle, _, _ := current.Call()

	var creation, exit, kernel, user fileTime
	r1, _, e1 := times.Call(
		handle,
		uintptr(unsafe.Pointer(&creation)),
		uintptr(unsafe.Pointer(&exit)),
		uintptr(unsafe.Pointer(&kernel)),
		uintptr(unsafe.Pointer(&user)),
	)
	if r1 == 0 {
		return 0, errors.OSFailure(errors.PhaseClock, op, e1)
	}
	return kernel.seconds() + user.seconds(), nil
}

func sysProcessTime() (float64, error) {
	return cpuTime(procGetCurrentProcess, procGetProcessTimes, "GetProcessTimes")
}

func sysThreadTime() (float64, error) {
	return cpuTime(procGetCurrentThread, procGetThreadTimes, "GetThreadTimes")
}

func sysReadZone() (Zone, error) {
	var tzi timeZoneInformation
	r1, _, e1 := procGetTimeZoneInformation.Call(uintptr(unsafe.Pointer(&tzi)))
	if uint32(r1) == timeZoneIDInvalid {
		return Zone{}, errors.OSFailure(errors.PhaseZone, "GetTimeZoneInformation", e1)
	}

	dd := tzi.daylightDate
	hasDST := dd.month != 0 || dd.day != 0 || dd.dayOfWeek != 0 ||
		dd.hour != 0 || dd.minute != 0 || dd.second != 0 || dd.milliseconds != 0

	return Zone{
		StdBias: int64(tzi.bias+tzi.standardBias) * 60,
		DstBias: int64(tzi.daylightBias-tzi.standardBias) * 60,
		StdName: windows.UTF16ToString(tzi.standardName[:]),
		DstName: windows.UTF16ToString(tzi.daylightName[:]),
		HasDST:  hasDST,
	}, nil
}

func sysLocalNow() (calendar.StructTime, error) {
	var st systemTime
	procGetLocalTime.Call(uintptr(unsafe.Pointer(&st)))

	year, month, day := int(st.year), int(st.month), int(st.day)

	// A transient zero day can surface while the OS updates SYSTEMTIME;
	// roll back to the last day of the previous month instead of producing
	// an invalid date.
	if day == 0 {
		month--
		if month == 0 {
			month = 12
			year--
		}
		day = calendar.DaysInMonth(year, month)
	}

	return calendar.New(year, month, day,
		int(st.hour), int(st.minute), int(st.second), 0), nil
}
