package cmd

import (
	"github.com/daedaleanai/cobra"

	"crateaudit/linepipes"
)

var fTestBench *bool

var testCmd = &cobra.Command{
	Use:   "test [-- cargo args]",
	Short: "Runs the workspace tests",
	Long:  `Runs the cargo test runner (or the benchmark runner) and streams its output.`,
	RunE:  RunAndHandleError(runTest),
}

func runTest(command *cobra.Command, args []string) error {
	runner := "test"
	if *fTestBench {
		runner = "bench"
	}
	cargoArgs := append([]string{runner}, args...)
	return linepipes.Out(linepipes.Run(cargoProg(), cargoArgs...))
}

// Registers the test command
func init() {
	fTestBench = testCmd.PersistentFlags().Bool("bench", false, "Run benchmarks instead of tests.")
	rootCmd.AddCommand(testCmd)
}
