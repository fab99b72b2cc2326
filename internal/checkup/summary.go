package checkup

import (
	"setup-doctor/internal/logger"
)

// Summary messages. Exactly one is printed per run, selected by summaryStatus.
const (
	msgAllClear  = "Everything checks out — your machine is ready for class!"
	msgOptional  = "Your setup is working correctly; the remaining items are optional."
	msgCritical  = "Some critical pieces are missing. Fix those before the first class."
	msgImportant = "Your core setup works, but some recommended items need attention."
)

// summaryStatus selects the single summary message for a finished report.
// The four messages are mutually exclusive and exhaustive, in this precedence:
// nothing failed or warned → all clear; no critical and no important findings
// → only optional items remain; at least one critical finding → must fix;
// otherwise → important items need attention.
func summaryStatus(rep *Report) string {
	switch {
	case len(rep.Failed) == 0 && len(rep.Warned) == 0:
		return msgAllClear
	case len(rep.Critical) == 0 && len(rep.Important) == 0:
		return msgOptional
	case len(rep.Critical) > 0:
		return msgCritical
	default:
		return msgImportant
	}
}

// PrintSummary prints the final tally: counts per status, counts per severity
// bucket, the completion percentage, and the selected summary sentence.
func PrintSummary(rep *Report) {
	logger.Head("\nSummary\n")
	logger.Plain("  Passed: %d   Failed: %d   Warnings: %d\n",
		len(rep.Passed), len(rep.Failed), len(rep.Warned))
	logger.Plain("  Critical: %d   Important: %d   Optional: %d\n",
		len(rep.Critical), len(rep.Important), len(rep.Optional))
	logger.Plain("  Setup completion: %d%%\n", rep.Percent())

	message := summaryStatus(rep)
	switch message {
	case msgAllClear, msgOptional:
		logger.Pass("\n  %s\n", message)
	case msgCritical:
		logger.Fail("\n  %s\n", message)
	default:
		logger.Warn("\n  %s\n", message)
	}
}
