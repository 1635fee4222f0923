//go:build !amd64 && !arm64

package hrtimer

// readTicks falls back to the runtime monotonic clock on platforms without
// a hardware counter read, so ticks are already nanoseconds.
func readTicks() uint64 {
	return uint64(Nanotime())
}

// counterFrequencyHz pins the fallback frequency at 1 GHz: one tick per
// nanosecond.
func counterFrequencyHz() uint64 {
	return nanosPerSecond
}

func counterName() string {
	return "nanotime"
}
