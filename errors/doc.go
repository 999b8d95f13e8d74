// Package errors provides structured error types for the systime library.
//
// Errors are categorized by Phase (which subsystem produced them) and Kind
// (error category). OS-call failures carry the underlying errno in the cause
// chain; validation errors such as an unknown clock name do not.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseTimer, errors.KindOSFailure).
//		Op("SetWaitableTimer").
//		Cause(errno).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OSFailure(errors.PhaseClock, "QueryPerformanceCounter", errno)
//	err := errors.InvalidClock("bogus")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
