package logger

import (
	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Define colorized printing functions for the different kinds of report lines
// using fatih/color. These are package-level variables holding functions that
// behave like fmt.Printf, but with text colored appropriately for the line kind.

// Pass prints passing check lines in green color.
// Green signals that the probed tool or setting is present and correct.
var Pass = color.New(color.FgGreen).PrintfFunc()

// Fail prints failing check lines in red color.
// Red draws immediate attention to something that must be installed or fixed.
var Fail = color.New(color.FgRed).PrintfFunc()

// Warn prints warning lines in yellow color.
// Yellow signals a condition that works but is not recommended as-is.
var Warn = color.New(color.FgYellow).PrintfFunc()

// Note prints informational lines (skips, hints, branch names) in cyan color.
// These lines are reported but never counted in the final tally.
var Note = color.New(color.FgCyan).PrintfFunc()

// Head prints section headings in bold so each probe's block stands out.
var Head = color.New(color.Bold).PrintfFunc()

// Plain prints uncolored body text such as remediation steps and the checklist.
var Plain = color.New().PrintfFunc()

// Debug prints debug messages in bright black if enabled, otherwise is a no-op.
// This is a function variable that is assigned dynamically during Init based on
// the debug flag. It starts as a no-op so packages that log before Init runs
// never hit a nil function.
var Debug func(format string, a ...any) = func(format string, a ...any) {}

// Init initializes the logger package, specifically enabling or disabling debug
// logging.
// Parameters:
// - enableDebug: boolean flag to turn debug messages on or off.
// When enabled, Debug will print dimmed debug messages.
// When disabled, Debug will be a no-op function that silently ignores debug logs.
func Init(enableDebug bool) {
	if enableDebug {
		// Assign Debug to print dimmed debug messages.
		Debug = color.New(color.FgHiBlack).PrintfFunc()
	} else {
		// Assign Debug to a no-op function so debug logs cost nothing when off.
		Debug = func(format string, a ...any) {}
	}
}
