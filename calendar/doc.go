// Package calendar implements proleptic-Gregorian conversion between epoch
// seconds and the 9-field broken-down time representation.
//
// The package is pure: it performs no OS calls and consults no timezone
// state. FromEpoch always reports a DST flag of 0, and ToEpoch takes the
// UTC offset as an explicit argument; resolving the live zone bias is the
// caller's job (see the clock package).
package calendar
