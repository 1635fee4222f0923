package benchmark

import (
	"github.com/philipgreat/timing-evaluation-nanoseconds/internal/hrtimer"
)

// MonoClock reads the runtime's monotonic clock directly, skipping the
// paired wall-clock read time.Now performs. Useful as a middle ground
// between the full system call and the raw tick counter.
type MonoClock struct{}

// NewMonoClock creates the monotonic clock source
func NewMonoClock() *MonoClock {
	return &MonoClock{}
}

func (c *MonoClock) Name() string {
	return "mono"
}

func (c *MonoClock) SectionHeader() string {
	return "Runtime monotonic clock nanotime()"
}

func (c *MonoClock) Description() string {
	return "Monotonic nanoseconds via runtime.nanotime, vDSO clock_gettime where available"
}

func (c *MonoClock) Now() uint64 {
	return uint64(hrtimer.Nanotime())
}
