package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
// A bare invocation runs the benchmark with all defaults, so the binary
// needs no arguments at all.
var rootCmd = &cobra.Command{
	Use:   "timing-evaluation-nanoseconds",
	Short: "Measure the per-call overhead of time-retrieval primitives",
	Long: `Runs each selected clock primitive (system wall clock, CPU tick
counter) in a tight loop and reports total elapsed nanoseconds, loop count,
and derived per-call cost.`,
	Run: func(cmd *cobra.Command, args []string) {
		runBenchmark()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
