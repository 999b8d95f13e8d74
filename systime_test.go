package systime

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/clockwerk-io/systime/calendar"
	"github.com/clockwerk-io/systime/errors"
)

func TestInitExplicit(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
}

func TestGmtime_KnownInstant(t *testing.T) {
	st := Gmtime(897091200) // 1998-06-06 00:00:00 UTC

	if st.Year() != 1998 || st.Month() != 6 || st.Day() != 6 {
		t.Errorf("Gmtime(897091200) = %v", st)
	}
	if got := Strftime("%Y-%m-%d", st); got != "1998-06-06" {
		t.Errorf("Strftime = %q, want 1998-06-06", got)
	}
}

func TestLocaltime_ExplicitSecondsMatchesGmtime(t *testing.T) {
	// With an explicit argument both perform the same raw decomposition;
	// local semantics only enter through Mktime's offset.
	if !Localtime(123456789).Equal(Gmtime(123456789)) {
		t.Error("Localtime(s) differs from Gmtime(s)")
	}
}

func TestGmtime_FractionalSecondsFloor(t *testing.T) {
	a := Gmtime(100.9)
	b := Gmtime(100)
	if !a.Equal(b) {
		t.Errorf("fractional seconds must floor: %v != %v", a, b)
	}
	// Negative values floor toward the earlier second.
	c := Gmtime(-0.5)
	d := Gmtime(-1)
	if !c.Equal(d) {
		t.Errorf("negative fractional seconds must floor: %v != %v", c, d)
	}
}

func TestMktime_RoundTripOffset(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	const s = float64(897091200)
	st := Gmtime(s)

	got, err := Mktime(st)
	if err != nil {
		t.Fatalf("Mktime failed: %v", err)
	}

	// The round trip equals the input plus the standard offset exactly:
	// the pair models local time, and the decomposition reports isdst=0.
	want := s + float64(Timezone())
	if got != want {
		t.Errorf("Mktime(Gmtime(%v)) = %v, want %v (offset %d)", s, got, want, Timezone())
	}
}

func TestMktime_EpochOffsetAttribute(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	got, err := Mktime(Gmtime(0))
	if err != nil {
		t.Fatalf("Mktime failed: %v", err)
	}
	if got != float64(Timezone()) {
		t.Errorf("Mktime(Gmtime(0)) = %v, want timezone attribute %d", got, Timezone())
	}
}

func TestTimeAndGmtimeNowAgree(t *testing.T) {
	st := GmtimeNow()
	sys := time.Now().UTC()

	// Same instant up to a few seconds of scheduling slack.
	if st.Year() != sys.Year() {
		t.Errorf("GmtimeNow year = %d, system %d", st.Year(), sys.Year())
	}
}

func TestCtime_Layout(t *testing.T) {
	if got := Ctime(897151571); got != "Sat Jun  6 16:46:11 1998" {
		t.Errorf("Ctime = %q", got)
	}
}

func TestGetClockInfo(t *testing.T) {
	info, err := GetClockInfo("monotonic")
	if err != nil {
		t.Fatalf("GetClockInfo(monotonic) failed: %v", err)
	}
	if !info.Monotonic || info.Adjustable {
		t.Errorf("monotonic info wrong: %+v", info)
	}

	if _, err := GetClockInfo("bogus"); !stderrors.Is(err,
		&errors.Error{Phase: errors.PhaseClock, Kind: errors.KindInvalidClock}) {
		t.Errorf("GetClockInfo(bogus): expected invalid_clock, got %v", err)
	}
}

func TestSleepSurface(t *testing.T) {
	start := time.Now()
	if err := Sleep(0); err != nil {
		t.Fatalf("Sleep(0) failed: %v", err)
	}
	if time.Since(start) > time.Millisecond {
		t.Error("Sleep(0) must return immediately")
	}

	start = time.Now()
	if err := Sleep(0.05); err != nil {
		t.Fatalf("Sleep(0.05) failed: %v", err)
	}
	if time.Since(start) < 45*time.Millisecond {
		t.Errorf("Sleep(0.05) returned after %v", time.Since(start))
	}
}

func TestZoneAttributesConsistent(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if Daylight() {
		if Altzone() == Timezone() {
			t.Error("daylight exists but altzone == timezone")
		}
	} else if Altzone() != Timezone() {
		t.Error("no daylight rule but altzone != timezone")
	}
}

// stubParser exercises the external-parser contract shape.
type stubParser struct{}

func (stubParser) Parse(format, value string) (calendar.StructTime, error) {
	return calendar.New(1998, 6, 6, 0, 0, 0, 0), nil
}

func TestParserContractRoundTrip(t *testing.T) {
	var p Parser = stubParser{}

	st, err := p.Parse("%Y-%m-%d", "1998-06-06")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := Strftime("%Y-%m-%d", st); got != "1998-06-06" {
		t.Errorf("parser round trip = %q", got)
	}
}
