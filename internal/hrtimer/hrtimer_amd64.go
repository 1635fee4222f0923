//go:build amd64

package hrtimer

// readTicks reads the time stamp counter, serialized with LFENCE on both
// sides so the read neither starts before earlier loads retire nor finishes
// after later ones begin.
// Implemented in hrtimer_amd64.s
//
//go:noescape
func readTicks() uint64

// counterFrequencyHz returns 0: x86 exposes no architectural register with
// the TSC rate, so the frequency is calibrated against the monotonic clock.
func counterFrequencyHz() uint64 {
	return 0
}

func counterName() string {
	return "rdtsc"
}
