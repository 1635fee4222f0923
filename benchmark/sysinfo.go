package benchmark

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// ReportSysInfo prints the OS and CPU banner that precedes the timing
// sections.
func ReportSysInfo(w io.Writer) {
	fmt.Fprintf(w, "\n ---------------OS and CPU info----------------- \n\n")
	fmt.Fprintf(w, "Operation system: \t%s\n", runtime.GOOS)
	fmt.Fprintf(w, "OS Family: \t\t%s\n", osFamily())
	fmt.Fprintf(w, "Architecture: \t\t%s\n", runtime.GOARCH)
	fmt.Fprintf(w, "Logical CPUs: \t\t%d\n", runtime.NumCPU())
	fmt.Fprintf(w, "Go version: \t\t%s\n", runtime.Version())
	if features := cpuFeatures(); features != "" {
		fmt.Fprintf(w, "CPU features: \t\t%s\n", features)
	}
}

// osFamily mirrors the coarse unix/windows/wasm split over GOOS values
func osFamily() string {
	switch runtime.GOOS {
	case "windows":
		return "windows"
	case "js", "wasip1":
		return "wasm"
	default:
		return "unix"
	}
}

// cpuFeatures lists the detected instruction-set flags for this
// architecture.
func cpuFeatures() string {
	var features []string

	switch runtime.GOARCH {
	case "amd64", "386":
		if cpu.X86.HasSSE2 {
			features = append(features, "sse2")
		}
		if cpu.X86.HasAVX {
			features = append(features, "avx")
		}
		if cpu.X86.HasAVX2 {
			features = append(features, "avx2")
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			features = append(features, "asimd")
		}
		if cpu.ARM64.HasATOMICS {
			features = append(features, "atomics")
		}
	}

	return strings.Join(features, " ")
}
