package benchmark

import (
	"fmt"
	"strings"
)

// ClockSource defines the interface for the time-retrieval primitives whose
// per-call cost the benchmark measures
type ClockSource interface {
	// Name returns the short name used for selection and logs
	Name() string

	// SectionHeader returns the report section title for this source
	SectionHeader() string

	// Description returns a detailed description of the source
	Description() string

	// Now performs one timed call: a timestamp or a tick-derived
	// nanosecond value
	Now() uint64
}

// ClockType represents available clock sources
type ClockType string

const (
	ClockSystem ClockType = "system"
	ClockTicks  ClockType = "ticks"
	ClockMono   ClockType = "mono"
)

// CreateClockSource creates a clock source instance based on the type
func CreateClockSource(t ClockType, cfg Config) ClockSource {
	switch t {
	case ClockTicks:
		return NewTickClock(cfg.TickHz)
	case ClockMono:
		return NewMonoClock()
	case ClockSystem:
		fallthrough
	default:
		return NewSystemClock()
	}
}

// ParseClockTypes parses a comma-separated clock selection. An empty
// selection yields the two stock sections.
func ParseClockTypes(s string) ([]ClockType, error) {
	if strings.TrimSpace(s) == "" {
		s = DefaultClocks
	}

	var types []ClockType
	for _, part := range strings.Split(s, ",") {
		switch ct := ClockType(strings.ToLower(strings.TrimSpace(part))); ct {
		case ClockSystem, ClockTicks, ClockMono:
			types = append(types, ct)
		default:
			return nil, fmt.Errorf("unknown clock source %q", part)
		}
	}
	return types, nil
}
