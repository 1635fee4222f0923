package benchmark

import (
	"fmt"
	"io"
)

// Sample holds the measured cost of one timing section
type Sample struct {
	ElapsedNs uint64
	LoopCount uint64
	PerCallNs float64
	Valid     bool // false if the clock stepped backwards across the loop
}

// NewSample derives per-call cost from the wall-clock bracket around a
// loop. A bracket whose end precedes its start yields an invalid sample;
// the report prints an error line for it and the run carries on.
func NewSample(startNs, endNs, loopCount uint64) Sample {
	if endNs < startNs {
		return Sample{LoopCount: loopCount}
	}

	s := Sample{
		ElapsedNs: endNs - startNs,
		LoopCount: loopCount,
		Valid:     true,
	}
	if loopCount > 0 {
		s.PerCallNs = float64(s.ElapsedNs) / float64(loopCount)
	}
	return s
}

// WriteReport prints the fixed-format result section for one clock source.
// Per-call cost of a whole nanosecond or more prints as an integer,
// sub-nanosecond cost as a float.
func (s Sample) WriteReport(w io.Writer, last uint64) {
	if !s.Valid {
		fmt.Fprintln(w, "Error: end time must be after start time")
		writeDecoyLine(w, last)
		return
	}

	fmt.Fprintf(w, "Time consumed: \t\t%d ns\n", s.ElapsedNs)
	fmt.Fprintf(w, "Loop count: \t\t%d\n", s.LoopCount)

	switch {
	case s.LoopCount == 0:
		fmt.Fprintln(w, "Time per call: \t\tN/A (loop count is 0)")
	case s.ElapsedNs/s.LoopCount > 0:
		fmt.Fprintf(w, "Time per call: \t\t%d ns\n", s.ElapsedNs/s.LoopCount)
	default:
		fmt.Fprintf(w, "Time per call: \t\t%g ns\n", s.PerCallNs)
	}

	writeDecoyLine(w, last)
}

// writeDecoyLine prints the retained loop value so the measured calls
// cannot be optimized away.
func writeDecoyLine(w io.Writer, last uint64) {
	fmt.Fprintf(w, "show last to prevent optimized by compiler %d \n\n", last)
}
