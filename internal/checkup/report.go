package checkup

import (
	"math"

	"setup-doctor/internal/logger"
)

// Severity classifies how badly a failed or warned check degrades the course
// workflow. It is attached only to failures and to warnings that are
// actionable; plain passes and informational notes carry no severity.
type Severity string

const (
	// SeverityCritical marks something whose absence blocks core functionality,
	// such as a missing Git install or an unset identity field.
	SeverityCritical Severity = "critical"
	// SeverityImportant marks something whose absence degrades a recommended
	// workflow, such as a missing repository remote.
	SeverityImportant Severity = "important"
	// SeverityOptional marks cosmetic or convenience findings, such as a
	// non-institutional email address or uncommitted local changes.
	SeverityOptional Severity = "optional"
)

// ParseSeverity maps a configuration string onto a Severity.
// Unknown values fall back to important so a typo in an override file surfaces
// the finding prominently rather than silently demoting it.
func ParseSeverity(s string) Severity {
	switch Severity(s) {
	case SeverityCritical, SeverityImportant, SeverityOptional:
		return Severity(s)
	default:
		return SeverityImportant
	}
}

// Status is the classification of a single check outcome.
type Status string

const (
	// StatusPass means the probed tool or setting is present and correct.
	StatusPass Status = "pass"
	// StatusFail means something is missing or misconfigured.
	StatusFail Status = "fail"
	// StatusWarn means the setup works but a condition deserves attention.
	StatusWarn Status = "warn"
	// StatusNote is informational output (skips, branch names) that is printed
	// but never counted toward the final tally.
	StatusNote Status = "note"
)

// Outcome is one finding produced by a probe: a status, a human-readable
// message, and optional supporting material (detail text, a severity for
// failures and actionable warnings, ordered remediation steps, a reference
// link).
type Outcome struct {
	Status   Status
	Message  string
	Detail   string
	Severity Severity
	Fixes    []string
	Link     string
}

// Pass builds a passing outcome.
func Pass(message string) Outcome {
	return Outcome{Status: StatusPass, Message: message}
}

// Fail builds a failing outcome at the given severity with remediation steps.
func Fail(sev Severity, message string, fixes ...string) Outcome {
	return Outcome{Status: StatusFail, Severity: sev, Message: message, Fixes: fixes}
}

// Warn builds a severity-tagged warning with remediation steps.
func Warn(sev Severity, message string, fixes ...string) Outcome {
	return Outcome{Status: StatusWarn, Severity: sev, Message: message, Fixes: fixes}
}

// Note builds an informational outcome that is printed but not counted.
func Note(message string) Outcome {
	return Outcome{Status: StatusNote, Message: message}
}

// WithDetail returns a copy of the outcome carrying extra detail text.
func (o Outcome) WithDetail(detail string) Outcome {
	o.Detail = detail
	return o
}

// WithLink returns a copy of the outcome carrying a reference link.
func (o Outcome) WithLink(link string) Outcome {
	o.Link = link
	return o
}

// Report accumulates every outcome of one doctor run.
// It holds six append-only sequences: three by status (passed, failed, warned)
// and three by severity (critical, important, optional). Every failure and
// every severity-tagged warning lands in exactly one severity bucket; passes
// land only in Passed; notes land nowhere. The report lives for a single
// process run and is read once at the end for the summary.
//
// The report is an explicit value created by the orchestrator and threaded
// through every probe — there is no package-level accumulator.
type Report struct {
	Passed    []Outcome
	Failed    []Outcome
	Warned    []Outcome
	Critical  []Outcome
	Important []Outcome
	Optional  []Outcome
}

// NewReport returns an empty report.
func NewReport() *Report {
	return &Report{}
}

// Record prints the outcome to the console and files it into the report.
// Keeping the console line and the accumulator entry in one place guarantees
// the final tally always matches what the user watched scroll by.
func (r *Report) Record(o Outcome) {
	switch o.Status {
	case StatusPass:
		logger.Pass("  [PASS] %s\n", o.Message)
		r.Passed = append(r.Passed, o)
	case StatusFail:
		logger.Fail("  [FAIL] %s (%s)\n", o.Message, o.Severity)
		r.Failed = append(r.Failed, o)
		r.bucket(o)
	case StatusWarn:
		if o.Severity != "" {
			logger.Warn("  [WARN] %s (%s)\n", o.Message, o.Severity)
			r.bucket(o)
		} else {
			logger.Warn("  [WARN] %s\n", o.Message)
		}
		r.Warned = append(r.Warned, o)
	case StatusNote:
		logger.Note("  [NOTE] %s\n", o.Message)
	}

	if o.Detail != "" {
		logger.Plain("         %s\n", o.Detail)
	}
	for i, fix := range o.Fixes {
		logger.Plain("         %d. %s\n", i+1, fix)
	}
	if o.Link != "" {
		logger.Plain("         see: %s\n", o.Link)
	}
}

// RecordAll records a sequence of outcomes in order.
func (r *Report) RecordAll(outcomes ...Outcome) {
	for _, o := range outcomes {
		r.Record(o)
	}
}

// bucket files a severity-tagged outcome into its single severity sequence.
func (r *Report) bucket(o Outcome) {
	switch o.Severity {
	case SeverityCritical:
		r.Critical = append(r.Critical, o)
	case SeverityImportant:
		r.Important = append(r.Important, o)
	case SeverityOptional:
		r.Optional = append(r.Optional, o)
	}
}

// Total is the number of counted outcomes: passed + failed + warned.
// Notes are excluded.
func (r *Report) Total() int {
	return len(r.Passed) + len(r.Failed) + len(r.Warned)
}

// Percent is the setup completion percentage: round(100 * passed / total).
// It is exactly 0 when no outcomes were counted, avoiding a division by zero.
func (r *Report) Percent() int {
	total := r.Total()
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(len(r.Passed)) / float64(total)))
}
