package wasi

import (
	"context"

	"go.uber.org/zap"

	"github.com/clockwerk-io/systime/clock"
	"github.com/clockwerk-io/systime/timer"
)

// blockSliceSeconds bounds each underlying timer wait so Block can observe
// context cancellation; the sleep primitive itself has no early-wake path.
const blockSliceSeconds = 0.01

// Pollable is the interface for async-ready resources that can be polled.
type Pollable interface {
	Resource
	// Ready returns true if the resource is ready.
	Ready() bool
	// Block waits until the resource becomes ready or ctx is canceled.
	Block(ctx context.Context)
}

// TimerPollable is a time-based pollable that becomes ready at a deadline
// on the monotonic clock, expressed in nanoseconds.
type TimerPollable struct {
	deadline int64
}

// NewTimerPollable creates a pollable that becomes ready once the
// monotonic clock reaches deadline nanoseconds.
func NewTimerPollable(deadline int64) *TimerPollable {
	return &TimerPollable{deadline: deadline}
}

func (p *TimerPollable) Type() ResourceType { return ResourcePollable }
func (p *TimerPollable) Drop()              {}

func (p *TimerPollable) Ready() bool {
	now, err := clock.MonotonicNs()
	if err != nil {
		Logger().Error("monotonic read failed in pollable", zap.Error(err))
		return false
	}
	return now >= p.deadline
}

func (p *TimerPollable) Block(ctx context.Context) {
	for {
		now, err := clock.MonotonicNs()
		if err != nil {
			Logger().Error("monotonic read failed in pollable", zap.Error(err))
			return
		}
		remaining := p.deadline - now
		if remaining <= 0 {
			return
		}
		if ctx.Err() != nil {
			return
		}

		slice := float64(remaining) / 1e9
		if slice > blockSliceSeconds {
			slice = blockSliceSeconds
		}
		if err := timer.Sleep(slice); err != nil {
			Logger().Error("timer wait failed in pollable", zap.Error(err))
			return
		}
	}
}
