package calendar

import "fmt"

// Field indexes for positional access to a StructTime.
const (
	FieldYear = iota
	FieldMonth
	FieldDay
	FieldHour
	FieldMinute
	FieldSecond
	FieldWeekday
	FieldYearDay
	FieldIsDST

	NumFields
)

// StructTime is the broken-down calendar representation: a 9-field
// tuple-like value. Weekday and YearDay are derived fields; New recomputes
// them from year/month/day, FromFields carries them through unchanged.
//
// The zero value is not a valid time. StructTime is an immutable value;
// construction copies its source fields and holds no reference to any clock.
type StructTime struct {
	year    int
	month   int // 1-12
	day     int // 1-31
	hour    int // 0-23
	minute  int // 0-59
	second  int // 0-61, tolerates leap-second inputs
	weekday int // 0=Monday .. 6=Sunday
	yearDay int // 1-366
	isDST   int // -1 unknown, 0 standard, 1 daylight
}

// New constructs a StructTime from calendar fields, recomputing the derived
// weekday and day-of-year from year/month/day.
func New(year, month, day, hour, minute, second, isDST int) StructTime {
	return StructTime{
		year:    year,
		month:   month,
		day:     day,
		hour:    hour,
		minute:  minute,
		second:  second,
		weekday: Weekday(year, month, day),
		yearDay: YearDay(year, month, day),
		isDST:   isDST,
	}
}

// FromFields constructs a StructTime from a full 9-field tuple in the fixed
// field order, trusting the carried-through weekday and day-of-year. Use it
// only for values that round-trip from a previously constructed StructTime,
// such as output from an external parser.
func FromFields(f [NumFields]int) StructTime {
	return StructTime{
		year:    f[FieldYear],
		month:   f[FieldMonth],
		day:     f[FieldDay],
		hour:    f[FieldHour],
		minute:  f[FieldMinute],
		second:  f[FieldSecond],
		weekday: f[FieldWeekday],
		yearDay: f[FieldYearDay],
		isDST:   f[FieldIsDST],
	}
}

func (t StructTime) Year() int    { return t.year }
func (t StructTime) Month() int   { return t.month }
func (t StructTime) Day() int     { return t.day }
func (t StructTime) Hour() int    { return t.hour }
func (t StructTime) Minute() int  { return t.minute }
func (t StructTime) Second() int  { return t.second }
func (t StructTime) Weekday() int { return t.weekday }
func (t StructTime) YearDay() int { return t.yearDay }
func (t StructTime) IsDST() int   { return t.isDST }

// Index returns field i in the fixed tuple order. It panics for an index
// outside [0, NumFields).
func (t StructTime) Index(i int) int {
	switch i {
	case FieldYear:
		return t.year
	case FieldMonth:
		return t.month
	case FieldDay:
		return t.day
	case FieldHour:
		return t.hour
	case FieldMinute:
		return t.minute
	case FieldSecond:
		return t.second
	case FieldWeekday:
		return t.weekday
	case FieldYearDay:
		return t.yearDay
	case FieldIsDST:
		return t.isDST
	}
	panic(fmt.Sprintf("calendar: field index %d out of range", i))
}

// Fields returns all 9 fields in the fixed tuple order.
func (t StructTime) Fields() [NumFields]int {
	return [NumFields]int{
		t.year, t.month, t.day,
		t.hour, t.minute, t.second,
		t.weekday, t.yearDay, t.isDST,
	}
}

// Compare orders two StructTime values as plain ordered sequences over the
// 9 fields. It returns -1, 0 or +1.
func (t StructTime) Compare(o StructTime) int {
	for i := 0; i < NumFields; i++ {
		a, b := t.Index(i), o.Index(i)
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}
	return 0
}

// Equal reports whether all 9 fields match.
func (t StructTime) Equal(o StructTime) bool {
	return t.Compare(o) == 0
}

// String renders all 9 named fields regardless of how the value was
// constructed.
func (t StructTime) String() string {
	return fmt.Sprintf(
		"StructTime(year=%d, mon=%d, mday=%d, hour=%d, min=%d, sec=%d, wday=%d, yday=%d, isdst=%d)",
		t.year, t.month, t.day, t.hour, t.minute, t.second, t.weekday, t.yearDay, t.isDST,
	)
}
