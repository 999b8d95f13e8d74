// Package wasi exposes the systime clock engine to WebAssembly guests as
// WASI clock interfaces over wazero.
//
// Implements:
//   - wasi:clocks/wall-clock@0.2.0 - wall clock time
//   - wasi:clocks/monotonic-clock@0.2.0 - monotonic measurements and
//     deadline subscriptions
//   - wasi:io/poll@0.2.0 - pollable readiness and blocking
//
// All readings come from the systime clock sources, not from the Go
// runtime's time package, so guests observe the same raw-OS semantics as
// host callers.
package wasi
