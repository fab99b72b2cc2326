package checkup

import (
	"strconv"
	"strings"

	"setup-doctor/internal/config"
	"setup-doctor/internal/logger"
	"setup-doctor/internal/system"
)

// CheckRepository inspects the Git repository in the current working
// directory. When there is no .git metadata directory here the probe emits a
// single optional warning and returns — every other check below assumes a
// repository. The probe never fails critically: students run the doctor from
// arbitrary directories and an unmanaged one is a nudge, not a defect.
func CheckRepository(run system.Runner, cfg config.Config, rep *Report) {
	if !run.FileExists(".git") {
		rep.Record(Warn(SeverityOptional,
			"The current directory is not a Git repository",
			"Run the doctor from your coursework folder, or create one with `git init`",
		))
		return
	}
	rep.Record(Pass("The current directory is a Git repository"))

	// Remote link. Absence is important rather than critical: local work
	// is possible, but submission and backup both go through the remote.
	remote, ok := run.Output("git", "remote", "get-url", "origin")
	if !ok || remote == "" {
		rep.Record(Fail(SeverityImportant, "This repository has no \"origin\" remote",
			"Create an empty repository on github.com (no README)",
			"Run: git remote add origin <the repository URL>",
			"Run: git push -u origin main",
		))
	} else {
		rep.Record(Pass("Remote \"origin\" is configured (" + remote + ")"))
		for _, host := range cfg.RemoteHosts {
			if strings.Contains(strings.ToLower(remote), strings.ToLower(host)) {
				rep.Record(Pass("Your remote is hosted on " + host))
				break
			}
		}
	}

	// Current branch, when resolvable. Purely informational — detached HEAD
	// or a brand-new repository simply produces no line.
	if branch, ok := run.Output("git", "branch", "--show-current"); ok && branch != "" {
		rep.Record(Note("You are on branch \"" + branch + "\""))
	}

	// Working tree state via the porcelain status format: one line per
	// modified or untracked path, so counting non-empty lines counts changes.
	status, ok := run.Output("git", "status", "--porcelain")
	if !ok {
		logger.Debug("[DEBUG] git status --porcelain yielded no result\n")
		return
	}
	changes := countStatusLines(status)
	if changes == 0 {
		rep.Record(Pass("Your working tree is clean"))
		return
	}
	rep.Record(Warn(SeverityOptional,
		"You have "+strconv.Itoa(changes)+" uncommitted change(s)",
		"Run: git add -A",
		"Run: git commit -m \"describe your change\"",
		"Run: git push",
	))
}

// countStatusLines counts the non-empty lines of a porcelain status listing.
// A trimmed-empty result (the no-changes case) counts zero.
func countStatusLines(status string) int {
	count := 0
	for _, line := range strings.Split(status, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}
