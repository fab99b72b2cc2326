package main

import (
	"setup-doctor/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// This design cleanly separates the CLI interface (cmd package) from main,
// allowing easier testing, extension, and reuse of the CLI commands.
//
// The setup-doctor project is a developer environment verification tool that:
//   - Probes the local machine for Node.js, npm, Visual Studio Code, a set of
//     required VS Code extensions, Git, and the Git identity configuration
//   - Inspects the current directory for repository state (remote, branch,
//     uncommitted changes) when it is a Git repository
//   - Classifies every finding as a pass, failure, or warning, tagging failures
//     and actionable warnings with a severity (critical, important, optional)
//   - Prints a manual checklist of conditions it cannot verify automatically
//   - Ends with a tally, a completion percentage, and a single summary sentence
//     chosen from the collected results
//
// Error handling strategy:
//   - Every external command fault (binary missing, non-zero exit) is absorbed at
//     the command-runner boundary and reported as "not detected" with remediation
//     text; no probe fault ever crashes the run
//   - The process always runs every probe and always exits with status zero;
//     failures are reported on stdout, never signaled through the exit code
//
// Integration points:
//   - Shells out to node, npm, code, and git for version and configuration queries
//   - Checks a small fixed set of conventional VS Code install paths per platform
//     when the editor is not on the search path
//   - Reads nothing but command output and filesystem existence; writes no files
//     and performs no network calls of its own
func main() {
	cmd.Execute()
}
