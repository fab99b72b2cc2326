package cmd

import (
	"github.com/spf13/cobra"

	"setup-doctor/internal/logger"
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// rootCmd is the base command for the CLI tool `setup-doctor`.
// Running it with no arguments performs the full checkup; `--help` / `-h` is
// handled by cobra before the Run function, so asking for help never executes
// a single probe.
var rootCmd = &cobra.Command{
	Use:   "setup-doctor",
	Short: "Check your development environment for class",
	Long: `setup-doctor inspects this machine for the tools the course expects:
Node.js and npm, Visual Studio Code with the required extensions, Git with a
configured identity, and the state of the Git repository in the current
directory. Every finding is reported with a severity and remediation steps,
followed by a manual checklist and a summary.

The exit status is always zero; read the report, not the exit code.`,

	// PersistentPreRun is a hook that runs before the command body.
	// Here, we initialize the logger based on the debug flag.
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},

	Run: runDoctor,
}

// Execute initializes flags and starts the command execution.
// It's the entry point for the CLI when invoked by the user.
func Execute() {
	// Register the global --debug flag before the command is executed.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	// Execute runs the checkup or displays help when requested.
	// Failed checks are reported on stdout and never alter the exit status,
	// so the returned error is ignored as cobra has already surfaced it.
	_ = rootCmd.Execute()
}
