package benchmark

import "time"

// SystemClock reads the wall clock through the standard library. Each call
// pays for the full clock_gettime path, wall and monotonic readings both.
type SystemClock struct{}

// NewSystemClock creates the wall clock source
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

func (c *SystemClock) Name() string {
	return "system"
}

func (c *SystemClock) SectionHeader() string {
	return "System call time.Now()"
}

func (c *SystemClock) Description() string {
	return "Unix nanoseconds via time.Now().UnixNano(), one full system clock read per call"
}

func (c *SystemClock) Now() uint64 {
	return uint64(time.Now().UnixNano())
}

// wallclockNanos brackets every measurement loop, whichever source runs
// inside it.
func wallclockNanos() uint64 {
	return uint64(time.Now().UnixNano())
}
