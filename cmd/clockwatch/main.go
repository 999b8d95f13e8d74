package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/clockwerk-io/systime"
	"github.com/clockwerk-io/systime/errors"
)

var clockNames = []string{"time", "monotonic", "perf_counter", "process_time", "thread_time"}

func main() {
	var (
		clockName   = flag.String("clock", "", "Clock to read (time, monotonic, perf_counter, process_time, thread_time)")
		info        = flag.Bool("info", false, "Print clock metadata instead of a reading")
		format      = flag.String("format", "", "Format the current local time with strftime codes")
		sleepFor    = flag.Float64("sleep", 0, "Sleep for the given number of seconds, then print elapsed monotonic time")
		zone        = flag.Bool("zone", false, "Print timezone attributes and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if err := systime.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *clockName == "" && *format == "" && *sleepFor == 0 && !*zone {
		fmt.Fprintln(os.Stderr, "Usage: clockwatch -clock <name> [-info]")
		fmt.Fprintln(os.Stderr, "       clockwatch -format <strftime codes>")
		fmt.Fprintln(os.Stderr, "       clockwatch -sleep <seconds>")
		fmt.Fprintln(os.Stderr, "       clockwatch -zone")
		fmt.Fprintln(os.Stderr, "       clockwatch -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*clockName, *info, *format, *sleepFor, *zone); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(clockName string, info bool, format string, sleepFor float64, zone bool) error {
	if zone {
		std, dst := systime.TZName()
		fmt.Printf("timezone: %d\n", systime.Timezone())
		fmt.Printf("altzone:  %d\n", systime.Altzone())
		fmt.Printf("daylight: %v\n", systime.Daylight())
		fmt.Printf("tzname:   (%q, %q)\n", std, dst)
		return nil
	}

	if clockName != "" {
		if info {
			return printInfo(clockName)
		}
		return printReading(clockName)
	}

	if format != "" {
		now, err := systime.LocaltimeNow()
		if err != nil {
			return err
		}
		fmt.Println(systime.Strftime(format, now))
		return nil
	}

	if sleepFor > 0 {
		before, err := systime.MonotonicNs()
		if err != nil {
			return err
		}
		if err := systime.Sleep(sleepFor); err != nil {
			return err
		}
		after, err := systime.MonotonicNs()
		if err != nil {
			return err
		}
		fmt.Printf("slept %.6fs (requested %.6fs)\n", float64(after-before)/1e9, sleepFor)
	}

	return nil
}

func printInfo(name string) error {
	ci, err := systime.GetClockInfo(name)
	if err != nil {
		return err
	}
	fmt.Printf("clock:          %s\n", strings.ToLower(name))
	fmt.Printf("implementation: %s\n", ci.Implementation)
	fmt.Printf("resolution:     %g\n", ci.Resolution)
	fmt.Printf("monotonic:      %v\n", ci.Monotonic)
	fmt.Printf("adjustable:     %v\n", ci.Adjustable)
	return nil
}

func printReading(name string) error {
	value, err := readClock(name)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %.9f\n", strings.ToLower(name), value)
	return nil
}

func readClock(name string) (float64, error) {
	switch strings.ToLower(name) {
	case "time":
		return systime.Time(), nil
	case "monotonic":
		return systime.Monotonic()
	case "perf_counter":
		return systime.PerfCounter()
	case "process_time":
		return systime.ProcessTime()
	case "thread_time":
		return systime.ThreadTime()
	default:
		return 0, errors.InvalidClock(name)
	}
}
