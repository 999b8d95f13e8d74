package clock

// Zone is a snapshot of the OS timezone rule: the standard bias, the
// additional daylight bias, and the display name pair. Biases are seconds
// to add to local time to reach UTC (west-positive).
type Zone struct {
	StdBias int64
	DstBias int64
	StdName string
	DstName string
	HasDST  bool
}

// ReadZone queries the OS for the current timezone rule. It is re-read on
// every call, never cached, so live zone and DST changes are observed.
func ReadZone() (Zone, error) {
	return sysReadZone()
}

// UTCOffset returns the seconds to add to a local broken-down time to
// obtain epoch seconds, for the given DST flag: 0 applies the standard
// bias only, a positive flag adds the daylight bias. The zone snapshot is
// re-read from the OS on every call.
func UTCOffset(isdst int) (int64, error) {
	z, err := sysReadZone()
	if err != nil {
		return 0, err
	}
	off := z.StdBias
	if isdst > 0 {
		off += z.DstBias
	}
	return off, nil
}
