package strftime

import (
	"fmt"
	"strings"

	"github.com/clockwerk-io/systime/calendar"
)

// handlers maps a format code to its renderer. Codes not present here pass
// through literally as "%<code>"; that leniency is part of the contract.
var handlers = map[byte]func(calendar.StructTime) string{
	'Y': func(t calendar.StructTime) string { return fmt.Sprintf("%d", t.Year()) },
	'y': func(t calendar.StructTime) string { return zero2(t.Year() % 100) },
	'm': func(t calendar.StructTime) string { return zero2(t.Month()) },
	'd': func(t calendar.StructTime) string { return zero2(t.Day()) },
	'H': func(t calendar.StructTime) string { return zero2(t.Hour()) },
	'M': func(t calendar.StructTime) string { return zero2(t.Minute()) },
	'S': func(t calendar.StructTime) string { return zero2(t.Second()) },
	'a': func(t calendar.StructTime) string { return weekdayAbbr[t.Weekday()] },
	'A': func(t calendar.StructTime) string { return weekdayFull[t.Weekday()] },
	'b': func(t calendar.StructTime) string { return monthAbbr[t.Month()-1] },
	'B': func(t calendar.StructTime) string { return monthFull[t.Month()-1] },
	'w': func(t calendar.StructTime) string { return fmt.Sprintf("%d", t.Weekday()) },
	'j': func(t calendar.StructTime) string { return fmt.Sprintf("%03d", t.YearDay()) },
	'%': func(calendar.StructTime) string { return "%" },
}

func zero2(n int) string {
	return fmt.Sprintf("%02d", n)
}

// Format renders t according to a strftime-style format string in a single
// pass. Each %<code> pair is replaced by its rendered value; unrecognized
// codes and all other characters pass through unchanged. A trailing bare
// '%' is emitted literally.
func Format(t calendar.StructTime, format string) string {
	var b strings.Builder
	b.Grow(len(format))

	for i := 0; i < len(format); {
		if format[i] == '%' && i+1 < len(format) {
			code := format[i+1]
			if fn, ok := handlers[code]; ok {
				b.WriteString(fn(t))
			} else {
				b.WriteByte('%')
				b.WriteByte(code)
			}
			i += 2
			continue
		}
		b.WriteByte(format[i])
		i++
	}

	return b.String()
}

// Asctime renders t in the fixed 24-character layout of asctime(3),
// e.g. "Sat Jun  6 16:26:11 1998". The day of month is space-padded.
func Asctime(t calendar.StructTime) string {
	return fmt.Sprintf("%s %s %2d %02d:%02d:%02d %d",
		weekdayAbbr[t.Weekday()%7],
		monthAbbr[t.Month()-1],
		t.Day(),
		t.Hour(), t.Minute(), t.Second(),
		t.Year(),
	)
}
