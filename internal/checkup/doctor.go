// Package checkup implements the environment probes and the report model for
// setup-doctor. Each probe runs one or more external commands through the
// system.Runner abstraction, classifies what it finds, and records outcomes
// into a Report; the run ends with a static manual checklist and a summary
// computed from the accumulated outcomes.
package checkup

import (
	"setup-doctor/internal/config"
	"setup-doctor/internal/logger"
	"setup-doctor/internal/system"
)

// Run executes every probe in fixed order and returns the populated report.
// The order matters only in one place: the extension probe consumes the
// editor launcher discovered by the editor probe. Every probe runs even when
// earlier ones fail; nothing here ever aborts the sequence.
func Run(run system.Runner, cfg config.Config) *Report {
	rep := NewReport()

	logger.Head("setup-doctor — checking your development environment\n")

	logger.Head("\nNode.js runtime\n")
	CheckRuntime(run, rep)

	logger.Head("\nVisual Studio Code\n")
	editorPath := CheckEditor(run, rep)

	logger.Head("\nVS Code extensions\n")
	CheckExtensions(run, cfg, editorPath, rep)

	logger.Head("\nGit and identity\n")
	CheckGit(run, cfg, rep)

	logger.Head("\nLocal repository\n")
	CheckRepository(run, cfg, rep)

	PrintChecklist()
	PrintSummary(rep)

	return rep
}
