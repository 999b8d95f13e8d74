//go:build windows

package timer

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/clockwerk-io/systime/errors"
)

const (
	createWaitableTimerHighResolution = 0x00000002
	synchronize                       = 0x00100000
	timerModifyState                  = 0x0002
	desiredAccess                     = synchronize | timerModifyState

	infinite    = 0xFFFFFFFF
	waitObject0 = 0
)

var (
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procCreateWaitableTimerExW = kernel32.NewProc("CreateWaitableTimerExW")
	procSetWaitableTimer       = kernel32.NewProc("SetWaitableTimer")
	procWaitForSingleObject    = kernel32.NewProc("WaitForSingleObject")
	procSleep                  = kernel32.NewProc("Sleep")
)

var (
	handleOnce sync.Once
	handle     uintptr
	handleErr  error
)

// timerHandle creates the reusable waitable timer on first use. The
// high-resolution capability flag is requested; on platforms that reject
// it the timer is created without the flag and resolution degrades
// silently to whatever the OS provides. The handle is never closed.
func timerHandle() (uintptr, error) {
	handleOnce.Do(func() {
		h, _, e1 := procCreateWaitableTimerExW.Call(
			0, 0, createWaitableTimerHighResolution, desiredAccess)
		if h == 0 {
			h, _, e1 = procCreateWaitableTimerExW.Call(0, 0, 0, desiredAccess)
		}
		if h == 0 {
			handleErr = errors.OSFailure(errors.PhaseTimer, "CreateWaitableTimerExW", e1)
			return
		}
		handle = h
	})
	return handle, handleErr
}

func sysSleep(seconds float64) error {
	h, err := timerHandle()
	if err != nil {
		return err
	}

	// Negative due time means "this many 100ns units from now".
	due := -int64(seconds * 1e7)

	r1, _, e1 := procSetWaitableTimer.Call(
		h, uintptr(unsafe.Pointer(&due)), 0, 0, 0, 0)
	if r1 == 0 {
		return errors.OSFailure(errors.PhaseTimer, "SetWaitableTimer", e1)
	}

	r1, _, e1 = procWaitForSingleObject.Call(h, infinite)
	if r1 != waitObject0 {
		return errors.New(errors.PhaseTimer, errors.KindOSFailure).
			Op("WaitForSingleObject").
			Detail("wait returned %#x", r1).
			Cause(e1).
			Build()
	}
	return nil
}

func sysYield() {
	procSleep.Call(0)
}
