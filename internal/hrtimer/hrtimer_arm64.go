//go:build arm64

package hrtimer

// readTicks reads the virtual counter (CNTVCT_EL0) behind an ISB barrier.
// Implemented in hrtimer_arm64.s
//
//go:noescape
func readTicks() uint64

// counterFrequencyHz reads the counter frequency register (CNTFRQ_EL0).
// Implemented in hrtimer_arm64.s
//
//go:noescape
func counterFrequencyHz() uint64

func counterName() string {
	return "cntvct_el0"
}
