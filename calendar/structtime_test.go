package calendar

import (
	"strings"
	"testing"
)

func TestNew_RecomputesDerivedFields(t *testing.T) {
	st := New(1998, 6, 6, 16, 26, 11, 0)

	if st.Weekday() != 5 {
		t.Errorf("weekday = %d, want 5 (Saturday)", st.Weekday())
	}
	if st.YearDay() != 157 {
		t.Errorf("yday = %d, want 157", st.YearDay())
	}
}

func TestFromFields_CarriesDerivedFieldsThrough(t *testing.T) {
	// Round-tripped values keep whatever derived fields they carry, even
	// inconsistent ones; only fresh construction recomputes.
	f := [NumFields]int{1998, 6, 6, 0, 0, 0, 0, 1, -1}
	st := FromFields(f)

	if st.Fields() != f {
		t.Errorf("FromFields did not carry fields through: %v != %v", st.Fields(), f)
	}
}

func TestStructTime_Index(t *testing.T) {
	st := New(2024, 2, 29, 12, 30, 45, 1)

	want := []int{2024, 2, 29, 12, 30, 45, 3, 60, 1}
	for i, w := range want {
		if got := st.Index(i); got != w {
			t.Errorf("Index(%d) = %d, want %d", i, got, w)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("Index(9) did not panic")
		}
	}()
	st.Index(NumFields)
}

func TestStructTime_Compare(t *testing.T) {
	a := New(1998, 6, 6, 0, 0, 0, 0)
	b := New(1998, 6, 7, 0, 0, 0, 0)

	if a.Compare(b) != -1 || b.Compare(a) != 1 {
		t.Error("Compare did not order by day")
	}
	if a.Compare(a) != 0 || !a.Equal(a) {
		t.Error("Compare/Equal not reflexive")
	}

	// Ordering is lexicographic over the positional sequence: an earlier
	// field dominates later ones.
	c := New(1997, 12, 31, 23, 59, 59, 1)
	if c.Compare(a) != -1 {
		t.Error("earlier year must compare less regardless of later fields")
	}
}

func TestStructTime_String(t *testing.T) {
	st := New(1998, 6, 6, 16, 26, 11, 0)
	s := st.String()

	for _, part := range []string{
		"year=1998", "mon=6", "mday=6", "hour=16", "min=26", "sec=11",
		"wday=5", "yday=157", "isdst=0",
	} {
		if !strings.Contains(s, part) {
			t.Errorf("String() = %q missing %q", s, part)
		}
	}
}
