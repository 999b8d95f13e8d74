// Package systime provides wall-clock, monotonic and CPU-time access, a
// high-resolution sleep, and calendar conversion and formatting, sourced
// from raw OS timer and clock APIs rather than a higher-level runtime
// service.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	systime/        Root facade re-exporting the full public surface
//	├── calendar/   Proleptic-Gregorian math and the StructTime entity
//	├── clock/      Wall/monotonic/CPU clock sources, info registry, timezone
//	├── timer/      Absolute-deadline waitable-timer sleep
//	├── strftime/   Format-code rendering with fixed C-locale tables
//	├── errors/     Structured error types (Phase/Kind)
//	└── wasi/       wasi:clocks host bindings for wazero guests
//
// # Time Representations
//
// Two representations coexist and are never conflated. Epoch seconds are a
// signed real number (or integer nanoseconds) since the Unix epoch; wall
// clock readings are adjustable and tied to calendar time, while monotonic
// readings have no calendar meaning and only differences are significant.
// The broken-down representation is a 9-field tuple of integers:
//
//	year (full, e.g. 1998)
//	month (1-12)
//	day (1-31)
//	hour (0-23)
//	minute (0-59)
//	second (0-61)
//	weekday (0-6, Monday is 0)
//	day of year (1-366)
//	DST flag (-1 unknown, 0 standard, 1 daylight)
//
// # Quick Start
//
//	if err := systime.Init(); err != nil {
//	    log.Fatal(err)
//	}
//
//	now := systime.GmtimeNow()
//	fmt.Println(systime.Strftime("%Y-%m-%d %H:%M:%S", now))
//
//	if err := systime.Sleep(0.25); err != nil {
//	    log.Fatal(err)
//	}
//
// Every operation is a direct, synchronous OS call on the invoking thread;
// there is no internal scheduler, no retry, and no cancellation path.
package systime
