package benchmark

import (
	"strings"
	"testing"
)

func TestDefaultLoopCount(t *testing.T) {
	// The stock run makes exactly ten million calls per section
	if DefaultLoopCount != 10_000_000 {
		t.Fatalf("DefaultLoopCount = %d, want 10000000", DefaultLoopCount)
	}
}

func TestRunSection(t *testing.T) {
	source := NewSystemClock()
	cfg := Config{LoopCount: 1_000, WarmupCount: 10}

	sample, last := runSection(source, cfg)
	if !sample.Valid {
		t.Fatal("runSection produced an invalid sample on a forward-moving clock")
	}

	if sample.LoopCount != cfg.LoopCount {
		t.Errorf("LoopCount = %d, want %d", sample.LoopCount, cfg.LoopCount)
	}
	if sample.ElapsedNs == 0 {
		t.Error("ElapsedNs should be positive for a non-empty loop")
	}
	if last == 0 {
		t.Error("last retained value should be a real timestamp")
	}

	wantPerCall := float64(sample.ElapsedNs) / float64(sample.LoopCount)
	if sample.PerCallNs != wantPerCall {
		t.Errorf("PerCallNs = %g, want %g", sample.PerCallNs, wantPerCall)
	}
}

func TestRunReportShape(t *testing.T) {
	cfg := Config{
		LoopCount:   10_000,
		Clocks:      DefaultClocks,
		BenchmarkID: "test",
		LogFormat:   "console",
	}

	var buf strings.Builder
	if err := runTo(&buf, cfg); err != nil {
		t.Fatalf("runTo returned error: %v", err)
	}
	out := buf.String()

	// Each section header appears exactly once, after the sysinfo banner
	for _, header := range []string{
		"OS and CPU info",
		"System call time.Now()",
		"High Resolution Time with CPU tick",
	} {
		if got := strings.Count(out, header); got != 1 {
			t.Errorf("header %q appears %d times, want 1", header, got)
		}
	}

	if got := strings.Count(out, "Time consumed"); got != 2 {
		t.Errorf("%d 'Time consumed' lines, want 2", got)
	}
	if got := strings.Count(out, "Loop count: \t\t10000"); got != 2 {
		t.Errorf("%d loop count lines, want 2", got)
	}
	if got := strings.Count(out, "show last to prevent optimized by compiler"); got != 2 {
		t.Errorf("%d decoy lines, want 2", got)
	}
	if !strings.Contains(out, "====================") {
		t.Error("missing trailing separator")
	}
}

func TestRunMonoSelection(t *testing.T) {
	cfg := Config{
		LoopCount:   10_000,
		Clocks:      "mono",
		BenchmarkID: "test",
		LogFormat:   "console",
	}

	var buf strings.Builder
	if err := runTo(&buf, cfg); err != nil {
		t.Fatalf("runTo returned error: %v", err)
	}
	out := buf.String()

	if got := strings.Count(out, "Runtime monotonic clock nanotime()"); got != 1 {
		t.Errorf("mono section header appears %d times, want 1", got)
	}
	if got := strings.Count(out, "Time consumed"); got != 1 {
		t.Errorf("%d 'Time consumed' lines, want 1", got)
	}

	// Only the selected section runs
	for _, header := range []string{
		"System call time.Now()",
		"High Resolution Time with CPU tick",
	} {
		if strings.Contains(out, header) {
			t.Errorf("unselected section %q present in output:\n%s", header, out)
		}
	}
}

func TestRunRejectsUnknownClock(t *testing.T) {
	cfg := Config{LoopCount: 10, Clocks: "hourglass", LogFormat: "console"}

	var buf strings.Builder
	if err := runTo(&buf, cfg); err == nil {
		t.Fatal("expected error for unknown clock selection")
	}
}
