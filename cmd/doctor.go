package cmd

import (
	"github.com/spf13/cobra"

	"setup-doctor/internal/checkup"
	"setup-doctor/internal/config"
	"setup-doctor/internal/system"
)

// configPath holds the path to an optional YAML override file for the
// required-extension table, the accepted email domains, and the recognized
// remote hosts. Empty means the built-in course defaults apply.
var configPath string

// runDoctor loads the configuration and performs the full checkup against the
// real host through the shell-backed runner. All reporting happens inside the
// checkup package; nothing here inspects the result.
func runDoctor(cmd *cobra.Command, args []string) {
	cfg := config.LoadConfig(configPath)
	checkup.Run(system.Shell{}, cfg)
}

// init sets up the CLI flags for the checkup run.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML file overriding the course defaults")
}
