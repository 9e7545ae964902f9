//go:build amd64

package cpu

// readCycleCounter reads the CPU timestamp counter using RDTSC.
// Implemented in cycles_amd64.s
//
//go:noescape
func readCycleCounter() int64

// getCounterFrequencyHz returns 0: the TSC rate is not architecturally
// exposed and is calibrated instead.
func getCounterFrequencyHz() int64 {
	return 0
}

func isHighPrecisionPlatform() bool {
	return true
}
