// Package hrtimer reads the CPU's high-resolution tick counter and converts
// tick deltas to nanoseconds.
//
// On amd64 the time stamp counter is read with RDTSC bracketed by LFENCE;
// on arm64 the virtual counter (CNTVCT_EL0) is used. Other platforms fall
// back to the runtime monotonic clock. The tick frequency comes from the
// hardware register where the architecture provides one (CNTFRQ_EL0) and is
// otherwise calibrated once, lazily, against the monotonic clock.
package hrtimer

import (
	"math/bits"
	"sync"
	"sync/atomic"
)

const nanosPerSecond = 1_000_000_000

// calibrationWindowNs is how long the calibration spin-wait samples the
// tick counter against the monotonic clock.
const calibrationWindowNs = 10_000_000 // 10ms

var (
	calibrateOnce sync.Once
	tickHz        atomic.Uint64
)

// Ticks reads the raw tick counter.
func Ticks() uint64 {
	return readTicks()
}

// CounterName reports which counter backs Ticks on this platform.
func CounterName() string {
	return counterName()
}

// Frequency returns the tick frequency in Hz, calibrating on first use.
func Frequency() uint64 {
	if hz := tickHz.Load(); hz != 0 {
		return hz
	}
	calibrateOnce.Do(func() {
		tickHz.CompareAndSwap(0, calibrateTickHz())
	})
	return tickHz.Load()
}

// SetFrequency overrides the calibrated frequency, for hosts where the tick
// rate is already known. Zero is ignored.
func SetFrequency(hz uint64) {
	if hz != 0 {
		tickHz.Store(hz)
	}
}

// ToNanoseconds converts a tick delta to nanoseconds. The tick-to-ns
// product is widened to 128 bits before dividing by the frequency, since
// delta*1e9 overflows uint64 after a couple of seconds at GHz rates.
func ToNanoseconds(delta uint64) uint64 {
	hi, lo := bits.Mul64(delta, nanosPerSecond)
	ns, _ := bits.Div64(hi, lo, Frequency())
	return ns
}

// calibrateTickHz determines the tick frequency. Architectures with a
// frequency register answer directly; the rest measure how many ticks
// elapse over a fixed monotonic-clock window.
func calibrateTickHz() uint64 {
	if hz := counterFrequencyHz(); hz != 0 {
		return hz
	}

	startNs := Nanotime()
	startTicks := readTicks()

	// Busy-wait so the counter is sampled without scheduler gaps
	for Nanotime()-startNs < calibrationWindowNs {
	}

	endNs := Nanotime()
	endTicks := readTicks()

	deltaTicks := endTicks - startTicks
	deltaNs := uint64(endNs - startNs)
	if deltaTicks == 0 || deltaNs == 0 {
		// Counter stuck or clock went nowhere; treat ticks as nanoseconds
		return nanosPerSecond
	}

	hi, lo := bits.Mul64(deltaTicks, nanosPerSecond)
	hz, _ := bits.Div64(hi, lo, deltaNs)
	return hz
}

// Timer measures elapsed nanoseconds from a fixed starting tick.
type Timer struct {
	startTicks uint64
}

// Start captures the current tick count. Calibration is forced first so the
// initial ElapsedNanos call is not charged for it.
func Start() *Timer {
	Frequency()
	return &Timer{startTicks: readTicks()}
}

// ElapsedNanos returns nanoseconds elapsed since Start. The tick
// subtraction wraps, matching counter semantics across a rollover.
func (t *Timer) ElapsedNanos() uint64 {
	return ToNanoseconds(readTicks() - t.startTicks)
}
