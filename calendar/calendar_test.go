package calendar

import "testing"

func TestFromEpoch_Zero(t *testing.T) {
	st := FromEpoch(0)

	want := [NumFields]int{1970, 1, 1, 0, 0, 0, 3, 1, 0}
	if st.Fields() != want {
		t.Errorf("FromEpoch(0) = %v, want %v", st.Fields(), want)
	}
}

func TestFromEpoch_KnownDates(t *testing.T) {
	tests := []struct {
		sec                      int64
		year, month, day         int
		hour, minute, second     int
		weekday, yearDay         int
	}{
		// 1998-06-06 00:00:00, a Saturday
		{897091200, 1998, 6, 6, 0, 0, 0, 5, 157},
		// 2024-02-29 12:30:45, leap day, a Thursday
		{1709209845, 2024, 2, 29, 12, 30, 45, 3, 60},
		// 2000-01-01 00:00:00, century leap year
		{946684800, 2000, 1, 1, 0, 0, 0, 5, 1},
		// 1999-12-31 23:59:59
		{946684799, 1999, 12, 31, 23, 59, 59, 4, 365},
	}

	for _, tt := range tests {
		st := FromEpoch(tt.sec)
		got := st.Fields()
		want := [NumFields]int{
			tt.year, tt.month, tt.day,
			tt.hour, tt.minute, tt.second,
			tt.weekday, tt.yearDay, 0,
		}
		if got != want {
			t.Errorf("FromEpoch(%d) = %v, want %v", tt.sec, got, want)
		}
	}
}

func TestFromEpoch_LeapBoundary(t *testing.T) {
	// 2024-02-29 00:00:00 UTC
	const feb29 = int64(1709164800)

	before := FromEpoch(feb29 - 1)
	if before.Month() != 2 || before.Day() != 28 || before.Hour() != 23 ||
		before.Minute() != 59 || before.Second() != 59 {
		t.Errorf("last second of Feb 28 2024: got %v", before)
	}

	after := FromEpoch(feb29)
	if after.Year() != 2024 || after.Month() != 2 || after.Day() != 29 {
		t.Errorf("first second of Feb 29 2024: got %v", after)
	}

	// 2023 February has no day 29: the second after Feb 28 is March 1.
	// 2023-03-01 00:00:00 UTC
	const mar1 = int64(1677628800)
	st := FromEpoch(mar1)
	if st.Year() != 2023 || st.Month() != 3 || st.Day() != 1 {
		t.Errorf("2023 leap rollover: got %v", st)
	}
	st = FromEpoch(mar1 - 1)
	if st.Month() != 2 || st.Day() != 28 {
		t.Errorf("2023 Feb end: got %v", st)
	}
}

func TestFromEpoch_PreEpoch(t *testing.T) {
	st := FromEpoch(-1)
	want := [NumFields]int{1969, 12, 31, 23, 59, 59, 2, 365, 0}
	if st.Fields() != want {
		t.Errorf("FromEpoch(-1) = %v, want %v", st.Fields(), want)
	}

	// Far pre-epoch must not misbehave either: 366 days before the epoch
	// lands on the last day of leap year 1968.
	st = FromEpoch(-86400 * 366)
	if st.Year() != 1968 || st.Month() != 12 || st.Day() != 31 {
		t.Errorf("FromEpoch one leap-year-length back: got %v", st)
	}
}

func TestFromEpoch_DerivedFieldsConsistent(t *testing.T) {
	// Sweep a range of epochs and cross-check the derived fields against
	// independent recomputation from the produced year/month/day.
	for s := int64(0); s < 4*365*86400; s += 13*3600 + 977 {
		st := FromEpoch(s)
		if got, want := st.Weekday(), Weekday(st.Year(), st.Month(), st.Day()); got != want {
			t.Fatalf("FromEpoch(%d): weekday %d, recomputed %d", s, got, want)
		}
		if got, want := st.YearDay(), YearDay(st.Year(), st.Month(), st.Day()); got != want {
			t.Fatalf("FromEpoch(%d): yday %d, recomputed %d", s, got, want)
		}
		if st.IsDST() != 0 {
			t.Fatalf("FromEpoch(%d): isdst %d, decomposition must report 0", s, st.IsDST())
		}
	}
}

func TestToEpoch_RoundTripAsymmetry(t *testing.T) {
	// With a nonzero UTC offset the round trip must differ from the input
	// by exactly the applied offset: the pair models local time, not UTC.
	offsets := []int64{0, 3600, -28800, 18000}
	seconds := []int64{0, 1, 86399, 86400, 897091200, 1709209845}

	for _, off := range offsets {
		for _, s := range seconds {
			got := ToEpoch(FromEpoch(s), off)
			if got != s+off {
				t.Errorf("ToEpoch(FromEpoch(%d), %d) = %d, want %d", s, off, got, s+off)
			}
		}
	}
}

func TestToEpoch_PreEpochYear(t *testing.T) {
	st := New(1969, 12, 31, 23, 59, 59, 0)
	if got := ToEpoch(st, 0); got != -1 {
		t.Errorf("ToEpoch(1969-12-31 23:59:59) = %d, want -1", got)
	}
}

func TestIsLeap(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2024, true},
		{2023, false},
		{2000, true},  // divisible by 400
		{1900, false}, // divisible by 100, not 400
		{1970, false},
		{1972, true},
	}
	for _, tt := range tests {
		if got := IsLeap(tt.year); got != tt.want {
			t.Errorf("IsLeap(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := DaysInMonth(2024, 2); got != 29 {
		t.Errorf("DaysInMonth(2024, 2) = %d, want 29", got)
	}
	if got := DaysInMonth(2023, 2); got != 28 {
		t.Errorf("DaysInMonth(2023, 2) = %d, want 28", got)
	}
	if got := DaysInMonth(2023, 12); got != 31 {
		t.Errorf("DaysInMonth(2023, 12) = %d, want 31", got)
	}
}

func TestWeekday_Known(t *testing.T) {
	tests := []struct {
		y, m, d int
		want    int // 0=Monday
	}{
		{1970, 1, 1, 3},  // Thursday
		{1998, 6, 6, 5},  // Saturday
		{2024, 2, 29, 3}, // Thursday
		{2000, 3, 1, 2},  // Wednesday
		{1969, 12, 31, 2}, // Wednesday
	}
	for _, tt := range tests {
		if got := Weekday(tt.y, tt.m, tt.d); got != tt.want {
			t.Errorf("Weekday(%d, %d, %d) = %d, want %d", tt.y, tt.m, tt.d, got, tt.want)
		}
	}
}

func TestYearDay_LeapPatched(t *testing.T) {
	if got := YearDay(2024, 3, 1); got != 61 {
		t.Errorf("YearDay(2024, 3, 1) = %d, want 61", got)
	}
	if got := YearDay(2023, 3, 1); got != 60 {
		t.Errorf("YearDay(2023, 3, 1) = %d, want 60", got)
	}
	if got := YearDay(2023, 12, 31); got != 365 {
		t.Errorf("YearDay(2023, 12, 31) = %d, want 365", got)
	}
	if got := YearDay(2024, 12, 31); got != 366 {
		t.Errorf("YearDay(2024, 12, 31) = %d, want 366", got)
	}
}
