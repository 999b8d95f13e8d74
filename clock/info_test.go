package clock

import (
	stderrors "errors"
	"testing"

	"github.com/clockwerk-io/systime/errors"
)

func TestGetInfo_Monotonic(t *testing.T) {
	info, err := GetInfo("monotonic")
	if err != nil {
		t.Fatalf("GetInfo(monotonic) failed: %v", err)
	}

	if !info.Monotonic {
		t.Error("monotonic clock must report monotonic=true")
	}
	if info.Adjustable {
		t.Error("monotonic clock must report adjustable=false")
	}
	if info.Resolution <= 0 || info.Resolution > 1 {
		t.Errorf("resolution = %g out of range", info.Resolution)
	}
	if info.Implementation == "" {
		t.Error("implementation name empty")
	}
}

func TestGetInfo_PerfCounterSameAsMonotonic(t *testing.T) {
	a, err := GetInfo("monotonic")
	if err != nil {
		t.Fatalf("GetInfo(monotonic) failed: %v", err)
	}
	b, err := GetInfo("perf_counter")
	if err != nil {
		t.Fatalf("GetInfo(perf_counter) failed: %v", err)
	}
	if a != b {
		t.Errorf("perf_counter info %v differs from monotonic %v", b, a)
	}
}

func TestGetInfo_Time(t *testing.T) {
	info, err := GetInfo("time")
	if err != nil {
		t.Fatalf("GetInfo(time) failed: %v", err)
	}

	if info.Monotonic {
		t.Error("wall clock must report monotonic=false")
	}
	if !info.Adjustable {
		t.Error("wall clock must report adjustable=true")
	}
}

func TestGetInfo_CPUClocks(t *testing.T) {
	for _, name := range []string{"process_time", "thread_time"} {
		info, err := GetInfo(name)
		if err != nil {
			t.Fatalf("GetInfo(%s) failed: %v", name, err)
		}
		if !info.Monotonic || info.Adjustable {
			t.Errorf("%s: got monotonic=%v adjustable=%v", name, info.Monotonic, info.Adjustable)
		}
	}
}

func TestGetInfo_CaseInsensitive(t *testing.T) {
	a, err := GetInfo("MONOTONIC")
	if err != nil {
		t.Fatalf("GetInfo(MONOTONIC) failed: %v", err)
	}
	b, _ := GetInfo("monotonic")
	if a != b {
		t.Error("lookup must be case-insensitive")
	}
}

func TestGetInfo_UnknownClock(t *testing.T) {
	_, err := GetInfo("bogus")
	if err == nil {
		t.Fatal("GetInfo(bogus) did not fail")
	}

	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseClock, Kind: errors.KindInvalidClock}) {
		t.Errorf("expected invalid_clock error, got %v", err)
	}

	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatal("error is not a structured *errors.Error")
	}
	if e.Cause != nil {
		t.Error("invalid-argument error must not carry an OS cause")
	}
}
