package cmd

import (
	"fmt"
	"os"
	"reflect"
	"runtime"
	"strings"

	"github.com/daedaleanai/cobra"
	"github.com/pkg/errors"

	"crateaudit/config"
	"crateaudit/logging"
	"crateaudit/util"
)

var rootCmd = &cobra.Command{
	Use:   "crateaudit",
	Short: "Crateaudit inspects a Rust workspace for known issues.",
	Long: `Crateaudit wraps the cargo linter and manifest inspector, turning their
machine-readable output into a filtered, sorted report: code diagnostics with
known-noisy macro-generated ones suppressed, missing recommended manifest
fields, and pinned dependencies tracking a stale upstream branch.`,
	Version: fmt.Sprintf("%d.%d.%d", util.Version.Major, util.Version.Minor, util.Version.Revision),
}

var fVerbose *bool
var fConfigPath *string

var auditConfig *config.Config

// Sets up the global auditConfig variable from the policy file, falling back
// to the compiled-in defaults when the workspace has none.
func setupConfiguration() error {
	cfg, err := config.ParseConfig(*fConfigPath)
	if err != nil {
		return errors.Wrap(err, "loading audit policy")
	}
	auditConfig = &cfg
	return nil
}

// cargoProg returns the cargo binary to invoke. The CARGO environment
// variable overrides the lookup, matching cargo's convention for nested
// invocations.
func cargoProg() string {
	if prog := os.Getenv("CARGO"); prog != "" {
		return prog
	}
	return "cargo"
}

// Initializes the root command flags
func init() {
	fVerbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logs.")
	fConfigPath = rootCmd.PersistentFlags().String("config", "crateaudit_config.toml", "Path to the audit policy file.")
}

// RunRootCommand configures logging once the flags are known and runs the
// root command.
func RunRootCommand() error {
	cobra.OnInitialize(func() {
		if err := logging.InitLogger(*fVerbose); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	})
	return rootCmd.Execute()
}

// RunAndHandleError returns a RunE function that runs the specified RunE
// function and exits if it returns an error.
func RunAndHandleError(runE func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	// Wrap the specified runE func in a new func with the same signature.
	return func(cmd *cobra.Command, args []string) error {
		// At some place in Cobra they lose track of whether the error is
		// returned by a RunE function or it's an arguments parsing error.
		// That's why we need to handle our errors ourselves and exit with an
		// appropriate error code.
		// See https://github.com/spf13/cobra/issues/914
		if errRun := runE(cmd, args); errRun != nil {
			// For example: "crateaudit/cmd.runCode"
			s := runtime.FuncForPC(reflect.ValueOf(runE).Pointer()).Name()
			s = s[strings.LastIndex(s, "/")+1:]
			fmt.Println(errors.Wrap(errRun, s))
			os.Exit(1)
		}
		return nil
	}
}
