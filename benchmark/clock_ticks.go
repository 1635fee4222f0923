package benchmark

import (
	"fmt"

	"github.com/philipgreat/timing-evaluation-nanoseconds/internal/hrtimer"
)

// TickClock reads the CPU tick counter and converts every read to elapsed
// nanoseconds, so each call measures the raw counter plus the conversion.
type TickClock struct {
	timer *hrtimer.Timer
}

// NewTickClock creates the tick counter source. A non-zero tickHz skips
// calibration and trusts the supplied rate.
func NewTickClock(tickHz uint64) *TickClock {
	hrtimer.SetFrequency(tickHz)
	return &TickClock{timer: hrtimer.Start()}
}

func (c *TickClock) Name() string {
	return "ticks"
}

func (c *TickClock) SectionHeader() string {
	return "High Resolution Time with CPU tick"
}

func (c *TickClock) Description() string {
	return fmt.Sprintf("CPU tick counter (%s) at %d Hz, tick delta converted to nanoseconds per call",
		hrtimer.CounterName(), hrtimer.Frequency())
}

func (c *TickClock) Now() uint64 {
	return c.timer.ElapsedNanos()
}
