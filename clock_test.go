package fftcompare

import (
	"errors"
	"testing"
	"time"
)

func TestClockByName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", ClockMonotonic, ClockCycles} {
		c, err := ClockByName(name)
		if err != nil {
			t.Fatalf("ClockByName(%q) failed: %v", name, err)
		}
		if name != "" && c.Name() != name {
			t.Errorf("Name() = %q, want %q", c.Name(), name)
		}
	}

	if _, err := ClockByName("sundial"); !errors.Is(err, ErrUnknownClock) {
		t.Errorf("err = %v, want ErrUnknownClock", err)
	}
}

func TestClocksMeasureSleep(t *testing.T) {
	t.Parallel()

	for _, c := range []Clock{MonotonicClock(), CycleClock()} {
		start := c.Now()
		time.Sleep(5 * time.Millisecond)
		end := c.Now()

		d := elapsed(c, start, end)
		if d < 2*time.Millisecond || d > time.Second {
			t.Errorf("%s: measured %v for a 5ms sleep", c.Name(), d)
		}
	}
}

func TestElapsedNeverNegative(t *testing.T) {
	t.Parallel()

	c := MonotonicClock()
	if d := elapsed(c, 100, 50); d != 0 {
		t.Errorf("elapsed(100, 50) = %v, want 0", d)
	}
	if d := elapsed(c, 50, 1050); d != 1000*time.Nanosecond {
		t.Errorf("elapsed(50, 1050) = %v, want 1µs", d)
	}
}
