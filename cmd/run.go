package cmd

import (
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/philipgreat/timing-evaluation-nanoseconds/benchmark"
)

var (
	loopCount   uint64
	clocks      string
	tickHz      uint64
	warmupCount uint64
	benchmarkID string
	logFormat   string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the clock-call overhead benchmark",
	Run: func(cmd *cobra.Command, args []string) {
		runBenchmark()
	},
}

func runBenchmark() {
	id := benchmarkID
	if id == "" {
		id = uuid.NewString()
	}

	cfg := benchmark.Config{
		LoopCount:   loopCount,
		Clocks:      clocks,
		TickHz:      tickHz,
		WarmupCount: warmupCount,
		BenchmarkID: id,
		LogFormat:   logFormat,
	}
	if err := benchmark.Run(cfg); err != nil {
		log.Fatalf("Benchmark failed: %v", err)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Uint64Var(&loopCount, "loop-count", benchmark.DefaultLoopCount, "Number of clock calls per timing section")
	runCmd.Flags().StringVar(&clocks, "clocks", benchmark.DefaultClocks, "Comma-separated clock sources to measure: system, ticks, mono")
	runCmd.Flags().Uint64Var(&tickHz, "tick-hz", 0, "Assumed tick counter frequency in Hz (0 = calibrate at startup)")
	runCmd.Flags().Uint64Var(&warmupCount, "warmup", 0, "Unmeasured warmup calls before each timing section")
	runCmd.Flags().StringVar(&benchmarkID, "benchmark-id", "", "Optional benchmark ID tag for logs (default: random UUID)")
	runCmd.Flags().StringVar(&logFormat, "log-format", "console", "Log format: 'json' or 'console'")
}
