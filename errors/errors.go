package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which subsystem produced the error
type Phase string

const (
	PhaseClock    Phase = "clock"    // clock source reads
	PhaseTimer    Phase = "timer"    // waitable timer / sleep
	PhaseCalendar Phase = "calendar" // epoch <-> broken-down conversion
	PhaseFormat   Phase = "format"   // strftime rendering
	PhaseZone     Phase = "zone"     // timezone snapshot reads
	PhaseHost     Phase = "host"     // WASI host bindings
)

// Kind categorizes the error
type Kind string

const (
	KindOSFailure      Kind = "os_failure"      // an OS call failed; never retried
	KindInvalidClock   Kind = "invalid_clock"   // unknown clock identifier
	KindInvalidInput   Kind = "invalid_input"   // bad argument outside the clock registry
	KindNotInitialized Kind = "not_initialized" // process-wide state not yet initialized
	KindUnsupported    Kind = "unsupported"     // operation unavailable on this platform
	KindOverflow       Kind = "overflow"        // value outside representable range
	KindRegistration   Kind = "registration"    // host module registration failed
)

// Error is the structured error type used throughout systime.
// OS-call failures carry the underlying error (usually a syscall errno)
// in Cause; local validation errors leave Cause nil.
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Op     string // OS API or operation name, e.g. "QueryPerformanceCounter"
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Op != "" {
		b.WriteString(": ")
		b.WriteString(e.Op)
	}

	if e.Detail != "" {
		if e.Op != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by Phase and Kind
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Op sets the OS API or operation name
func (b *Builder) Op(op string) *Builder {
	b.err.Op = op
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// OSFailure wraps a failed OS call. The call is never retried; the caller
// sees the failure immediately with the underlying code attached.
func OSFailure(phase Phase, op string, cause error) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindOSFailure,
		Op:    op,
		Cause: cause,
	}
}

// InvalidClock reports an unknown clock identifier. This is a local
// validation error, not an OS error.
func InvalidClock(name string) *Error {
	return &Error{
		Phase:  PhaseClock,
		Kind:   KindInvalidClock,
		Detail: fmt.Sprintf("unknown clock: %s", name),
	}
}

// NotInitialized reports use of process-wide state before Init
func NotInitialized(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: what,
	}
}

// Unsupported reports an operation unavailable on the current platform
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}
