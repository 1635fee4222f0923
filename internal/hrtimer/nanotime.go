package hrtimer

import (
	_ "unsafe" // required for go:linkname
)

// Nanotime returns the runtime's monotonic clock reading in nanoseconds
// since an unspecified start point. Linked directly against
// runtime.nanotime, which takes the vDSO clock_gettime path without the
// paired wall-clock read time.Now performs.
//
//go:noescape
//go:linkname Nanotime runtime.nanotime
func Nanotime() int64
