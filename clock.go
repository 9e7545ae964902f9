package fftcompare

import (
	"errors"
	"fmt"
	"time"

	"github.com/cwbudde/fftcompare/internal/cpu"
)

// ErrUnknownClock is returned by ClockByName for unregistered names.
var ErrUnknownClock = errors.New("fftcompare: unknown clock")

// Clock names accepted by ClockByName.
const (
	ClockMonotonic = "monotonic"
	ClockCycles    = "cycles"
)

// Clock is a high-resolution counter used to time transform execution.
// Now returns raw ticks; Duration converts a tick count to wall time using
// the counter's frequency.
type Clock interface {
	Name() string
	Now() int64
	Duration(ticks int64) time.Duration
}

// MonotonicClock returns a clock backed by the runtime's monotonic time.
// Ticks are nanoseconds.
func MonotonicClock() Clock {
	return monotonicClock{base: time.Now()}
}

// CycleClock returns a clock backed by the CPU cycle counter (TSC on x86,
// CNTVCT on ARM). Tick to time conversion uses the calibrated counter
// frequency.
func CycleClock() Clock {
	return cycleClock{}
}

// ClockByName resolves a clock name.
func ClockByName(name string) (Clock, error) {
	switch name {
	case "", ClockMonotonic:
		return MonotonicClock(), nil
	case ClockCycles:
		return CycleClock(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownClock, name)
	}
}

type monotonicClock struct {
	base time.Time
}

func (c monotonicClock) Name() string { return ClockMonotonic }

func (c monotonicClock) Now() int64 {
	return int64(time.Since(c.base))
}

func (c monotonicClock) Duration(ticks int64) time.Duration {
	return time.Duration(ticks)
}

type cycleClock struct{}

func (cycleClock) Name() string { return ClockCycles }

func (cycleClock) Now() int64 {
	return cpu.ReadCycleCounter()
}

func (cycleClock) Duration(ticks int64) time.Duration {
	return time.Duration(cpu.CyclesToNanoseconds(ticks))
}

// elapsed converts a start/end tick pair into a non-negative duration.
func elapsed(c Clock, start, end int64) time.Duration {
	if end <= start {
		return 0
	}
	return c.Duration(end - start)
}
