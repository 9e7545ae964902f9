package cpu

import (
	"sync"
	"time"
)

// ReadCycleCounter reads the CPU's cycle counter (TSC on x86, CNTVCT on ARM).
// This provides high-precision timing for micro-benchmarking.
// On platforms without assembly support, falls back to time.Now().
func ReadCycleCounter() int64 {
	return readCycleCounter()
}

// CyclesSince returns the number of cycles elapsed since the given start cycle count.
func CyclesSince(start int64) int64 {
	return ReadCycleCounter() - start
}

// CyclesToNanoseconds converts a cycle count to nanoseconds using the
// counter frequency. The first call calibrates the counter if the hardware
// does not report its frequency.
func CyclesToNanoseconds(cycles int64) int64 {
	calibrateOnce.Do(initCycleCounter)

	if counterFrequencyHz != 0 {
		// Counter runs at a fixed frequency (CNTFRQ_EL0 on ARM64).
		return int64(float64(cycles) * 1e9 / float64(counterFrequencyHz))
	}
	if nanosPerCycle == 0 {
		// time.Now() fallback: cycles are already nanoseconds.
		return cycles
	}
	return int64(float64(cycles) * nanosPerCycle)
}

// CounterFrequencyHz returns the counter frequency in Hz, either reported
// by the hardware or calibrated against wall time. It returns 1e9 on
// platforms using the time.Now() fallback.
func CounterFrequencyHz() int64 {
	calibrateOnce.Do(initCycleCounter)

	if counterFrequencyHz != 0 {
		return counterFrequencyHz
	}
	if nanosPerCycle == 0 {
		return 1_000_000_000
	}
	return int64(1e9 / nanosPerCycle)
}

var (
	calibrateOnce sync.Once

	// counterFrequencyHz is the hardware-reported counter frequency (ARM64).
	counterFrequencyHz int64

	// nanosPerCycle is the calibrated counter period (AMD64).
	nanosPerCycle float64
)

// initCycleCounter reads the hardware frequency register where one exists
// and calibrates against wall time otherwise.
func initCycleCounter() {
	counterFrequencyHz = getCounterFrequencyHz()
	if counterFrequencyHz == 0 && isHighPrecisionPlatform() {
		calibrateCycleCounter()
	}
}

// calibrateCycleCounter measures cycles over a short busy-wait to estimate
// the counter period.
func calibrateCycleCounter() {
	const calibrationDuration = 10 * time.Millisecond

	start := time.Now()
	startCycles := ReadCycleCounter()

	for time.Since(start) < calibrationDuration {
		// Spin
	}

	cycles := CyclesSince(startCycles)
	elapsed := time.Since(start)

	nanoseconds := elapsed.Nanoseconds()

	if nanoseconds > 0 && cycles > 0 {
		nanosPerCycle = float64(nanoseconds) / float64(cycles)
	}
}
