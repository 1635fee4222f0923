package benchmark

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultLoopCount is the number of clock calls per timing section
	DefaultLoopCount = 10_000_000

	// DefaultClocks selects the two stock sections: wall clock and tick counter
	DefaultClocks = "system,ticks"
)

// Config defines the benchmark parameters passed from CLI
type Config struct {
	LoopCount   uint64 // clock calls per timing section
	Clocks      string // comma-separated clock source names
	TickHz      uint64 // assumed tick frequency in Hz, 0 means calibrate
	WarmupCount uint64 // unmeasured calls before each section
	BenchmarkID string // label for this benchmark run
	LogFormat   string // "json" or "console", default is "console"
}

// Run orchestrates the full benchmark lifecycle
func Run(cfg Config) error {
	return runTo(os.Stdout, cfg)
}

func runTo(out io.Writer, cfg Config) error {
	setupLog(cfg)
	initialLog(cfg)

	types, err := ParseClockTypes(cfg.Clocks)
	if err != nil {
		return fmt.Errorf("invalid clock selection: %w", err)
	}

	ReportSysInfo(out)

	for _, clockType := range types {
		source := CreateClockSource(clockType, cfg)

		log.Info().
			Str("clock", source.Name()).
			Str("description", source.Description()).
			Msg("Using clock source")

		fmt.Fprintf(out, "\n---------- %s -------------\n\n", source.SectionHeader())

		sample, last := runSection(source, cfg)
		sample.WriteReport(out, last)

		if !sample.Valid {
			log.Warn().
				Str("clock", source.Name()).
				Msg("Clock stepped backwards across the loop, section discarded")
			continue
		}

		log.Info().
			Str("clock", source.Name()).
			Uint64("elapsed_ns", sample.ElapsedNs).
			Uint64("loop_count", sample.LoopCount).
			Float64("per_call_ns", sample.PerCallNs).
			Msg("Section complete")
	}

	fmt.Fprintf(out, "\n====================================================\n\n")

	log.Info().Str("benchmark_id", cfg.BenchmarkID).Msg("Benchmark complete")
	return nil
}

// runSection runs the tight loop for a single clock source.
//
// The loop is bracketed by wall-clock reads rather than by the source under
// test, and the last value read survives the loop so the calls cannot be
// optimized away.
func runSection(source ClockSource, cfg Config) (Sample, uint64) {
	for i := uint64(0); i < cfg.WarmupCount; i++ {
		_ = source.Now()
	}

	var last uint64
	start := wallclockNanos()
	for i := uint64(0); i < cfg.LoopCount; i++ {
		last = source.Now()
	}
	end := wallclockNanos()

	return NewSample(start, end, cfg.LoopCount), last
}

func initialLog(cfg Config) {
	log.Info().
		Str("benchmark_id", cfg.BenchmarkID).
		Uint64("loop_count", cfg.LoopCount).
		Str("clocks", cfg.Clocks).
		Uint64("tick_hz", cfg.TickHz).
		Uint64("warmup", cfg.WarmupCount).
		Msg("Starting benchmark")
}

func setupLog(cfg Config) {
	if strings.ToLower(cfg.LogFormat) == "json" {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}
}
