package checkup

import (
	"runtime"
	"strings"

	"setup-doctor/internal/config"
	"setup-doctor/internal/logger"
	"setup-doctor/internal/system"
)

// gitInstallFixes returns the platform-specific install steps for Git.
func gitInstallFixes(goos string) []string {
	switch goos {
	case "darwin":
		return []string{
			"Run `xcode-select --install` and accept the Command Line Tools prompt",
			"Or install via Homebrew: `brew install git`",
			"Open a new terminal window and run `git --version` to confirm",
		}
	case "windows":
		return []string{
			"Download Git for Windows from https://git-scm.com/download/win",
			"Run the installer with the default options",
			"Open a new terminal window and run `git --version` to confirm",
		}
	default:
		return []string{
			"Install git with your package manager, e.g. `sudo apt install git`",
			"Run `git --version` in a new terminal to confirm",
		}
	}
}

// CheckGit verifies the Git install and the global identity configuration.
// When Git itself is missing the identity checks are skipped outright — a
// user name and email are meaningless without the tool, and probing them
// would just shell out to a binary we know is absent.
func CheckGit(run system.Runner, cfg config.Config, rep *Report) {
	version, ok := run.Output("git", "--version")
	if !ok {
		rep.Record(Fail(SeverityCritical, "Git is not installed",
			gitInstallFixes(runtime.GOOS)...).WithLink("https://git-scm.com/downloads"))
		return
	}
	rep.Record(Pass(version + " is installed"))

	name, ok := run.Output("git", "config", "--global", "user.name")
	if !ok || name == "" {
		rep.Record(Fail(SeverityCritical, "Your Git user name is not configured",
			"Run: git config --global user.name \"Your Full Name\"",
		))
	} else {
		rep.Record(Pass("Git user name is set to \"" + name + "\""))
	}

	email, ok := run.Output("git", "config", "--global", "user.email")
	if !ok || email == "" {
		rep.Record(Fail(SeverityCritical, "Your Git email is not configured",
			"Run: git config --global user.email \"you@ocadu.ca\"",
		))
		return
	}

	// Email is present; check it against the accepted institutional domains.
	// A personal address still works everywhere, so a mismatch is only a
	// convenience warning, with the current value echoed back.
	for _, domain := range cfg.EmailDomains {
		if strings.HasSuffix(strings.ToLower(email), strings.ToLower(domain)) {
			rep.Record(Pass("Git email is set to your school address (" + email + ")"))
			return
		}
	}
	logger.Debug("[DEBUG] Email %q matched none of %d accepted domains\n", email, len(cfg.EmailDomains))
	rep.Record(Warn(SeverityOptional,
		"Git email is set to "+email+", which is not a school address",
		"Consider: git config --global user.email \"you"+firstDomain(cfg)+"\"",
	))
}

// firstDomain returns the preferred institutional domain for suggestion text,
// or an empty string when none are configured.
func firstDomain(cfg config.Config) string {
	if len(cfg.EmailDomains) == 0 {
		return ""
	}
	return cfg.EmailDomains[0]
}
