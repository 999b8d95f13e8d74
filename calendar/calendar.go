package calendar

// EpochYear is the calendar year of epoch second zero.
const EpochYear = 1970

const secondsPerDay = 86400

// monthDays holds the day count of each month in a non-leap year.
var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// sakamoto is the month offset table of the closed-form weekday congruence.
var sakamoto = [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}

// IsLeap reports whether year is a proleptic-Gregorian leap year:
// divisible by 4 and not by 100, unless divisible by 400.
func IsLeap(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

func daysInYear(year int) int64 {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in month (1-12) of year.
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeap(year) {
		return 29
	}
	return monthDays[month-1]
}

// Weekday computes the day of week (0=Monday .. 6=Sunday) for a calendar
// date with a closed-form congruence: the year is adjusted down by one for
// January and February so that March acts as the first month.
func Weekday(year, month, day int) int {
	y := year
	if month < 3 {
		y--
	}
	w := (y + y/4 - y/100 + y/400 + sakamoto[month-1] + day) % 7 // 0=Sunday
	return ((w-1)%7 + 7) % 7
}

// YearDay computes the 1-based day of year for a calendar date.
func YearDay(year, month, day int) int {
	yday := day
	for m := 1; m < month; m++ {
		yday += DaysInMonth(year, m)
	}
	return yday
}

// floorDiv and floorMod implement floored division so that decomposition
// works for any second count, including instants before the epoch.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

// FromEpoch decomposes seconds since the epoch into a broken-down time:
// successive division by 60/60/24 yields second/minute/hour, then whole
// 365/366-day year blocks are walked from the epoch year until the
// remaining day count fits the candidate year, then months are walked with
// February patched to 29 in leap years.
//
// The DST flag of the result is always 0: no DST inference is attempted
// from raw seconds, callers must treat the result as standard time unless
// told otherwise.
func FromEpoch(seconds int64) StructTime {
	second := floorMod(seconds, 60)
	seconds = floorDiv(seconds, 60)
	minute := floorMod(seconds, 60)
	seconds = floorDiv(seconds, 60)
	hour := floorMod(seconds, 24)
	days := floorDiv(seconds, 24)

	year := EpochYear
	for days >= daysInYear(year) {
		days -= daysInYear(year)
		year++
	}
	for days < 0 {
		year--
		days += daysInYear(year)
	}

	month := 1
	for days+1 > int64(DaysInMonth(year, month)) {
		days -= int64(DaysInMonth(year, month))
		month++
	}
	day := int(days) + 1

	return New(year, month, day, int(hour), int(minute), int(second), 0)
}

// ToEpoch is the inverse of FromEpoch for local times: it accumulates whole
// year day counts from the epoch year, preceding months (leap-patched) and
// the day, scales to seconds, adds hour/minute/second, then adds the given
// UTC offset in seconds. The offset is the one place the DST flag of t is
// consulted; derive it with a zone query before calling.
//
// ToEpoch(FromEpoch(s), off) equals s+off, not s, whenever off is nonzero:
// the pair models local time, not UTC.
func ToEpoch(t StructTime, utcOffset int64) int64 {
	var days int64
	if t.Year() >= EpochYear {
		for y := EpochYear; y < t.Year(); y++ {
			days += daysInYear(y)
		}
	} else {
		for y := t.Year(); y < EpochYear; y++ {
			days -= daysInYear(y)
		}
	}

	for m := 1; m < t.Month(); m++ {
		days += int64(DaysInMonth(t.Year(), m))
	}
	days += int64(t.Day() - 1)

	localSecs := days*secondsPerDay +
		int64(t.Hour())*3600 + int64(t.Minute())*60 + int64(t.Second())

	return localSecs + utcOffset
}
