package wasi

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/clockwerk-io/systime/clock"
)

// Datetime is the wall-clock representation of the wasi:clocks interface.
type Datetime struct {
	Seconds     uint64
	Nanoseconds uint32
}

// WallClockHost serves wasi:clocks/wall-clock from the systime wall clock.
type WallClockHost struct{}

func NewWallClockHost() *WallClockHost {
	return &WallClockHost{}
}

func (h *WallClockHost) Namespace() string {
	return "wasi:clocks/wall-clock@0.2.0"
}

func (h *WallClockHost) Now(_ context.Context) Datetime {
	s := clock.Time()
	whole := math.Floor(s)
	return Datetime{
		Seconds:     uint64(whole),
		Nanoseconds: uint32((s - whole) * 1e9),
	}
}

func (h *WallClockHost) Resolution(_ context.Context) Datetime {
	info, err := clock.GetInfo("time")
	if err != nil {
		Logger().Error("clock info lookup failed", zap.Error(err))
		return Datetime{Seconds: 1}
	}
	whole := math.Floor(info.Resolution)
	return Datetime{
		Seconds:     uint64(whole),
		Nanoseconds: uint32(math.Round((info.Resolution - whole) * 1e9)),
	}
}

// MonotonicClockHost serves wasi:clocks/monotonic-clock from the systime
// monotonic counter. Subscriptions are deadline pollables held in the
// resource table.
type MonotonicClockHost struct {
	resources *Table
}

func NewMonotonicClockHost(resources *Table) *MonotonicClockHost {
	return &MonotonicClockHost{resources: resources}
}

func (h *MonotonicClockHost) Namespace() string {
	return "wasi:clocks/monotonic-clock@0.2.0"
}

func (h *MonotonicClockHost) Now(_ context.Context) uint64 {
	ns, err := clock.MonotonicNs()
	if err != nil {
		Logger().Error("monotonic read failed", zap.Error(err))
		return 0
	}
	return uint64(ns)
}

func (h *MonotonicClockHost) Resolution(_ context.Context) uint64 {
	info, err := clock.GetInfo("monotonic")
	if err != nil {
		Logger().Error("clock info lookup failed", zap.Error(err))
		return 1
	}
	res := uint64(math.Round(info.Resolution * 1e9))
	if res == 0 {
		res = 1
	}
	return res
}

func (h *MonotonicClockHost) SubscribeInstant(_ context.Context, when uint64) uint32 {
	return h.resources.Add(NewTimerPollable(int64(when)))
}

func (h *MonotonicClockHost) SubscribeDuration(ctx context.Context, duration uint64) uint32 {
	return h.resources.Add(NewTimerPollable(int64(h.Now(ctx) + duration)))
}
