package checkup

import (
	"strings"

	"setup-doctor/internal/config"
	"setup-doctor/internal/logger"
	"setup-doctor/internal/system"
)

// marketplaceURL is the browse page for a VS Code extension identifier.
const marketplaceURL = "https://marketplace.visualstudio.com/items?itemName="

// CheckExtensions verifies each required extension against the editor's
// installed-extension list. editorPath is the launcher discovered by
// CheckEditor; when it is empty the probe degrades to a single informational
// line and performs no per-extension checks. The same soft skip applies when
// `--list-extensions` itself yields no usable result — an editor that cannot
// enumerate extensions is reported, not counted as five failures.
func CheckExtensions(run system.Runner, cfg config.Config, editorPath string, rep *Report) {
	if editorPath == "" {
		rep.Record(Note("Skipping extension checks because Visual Studio Code was not found"))
		return
	}

	listing, ok := run.Output(editorPath, "--list-extensions")
	if !ok {
		rep.Record(Note("Could not list installed extensions; skipping extension checks"))
		return
	}

	// Build a lowercased membership set. Extension identifiers are matched
	// case-insensitively: the marketplace shows mixed case but `code`
	// historically reports identifiers in varying casings.
	installed := make(map[string]bool)
	for _, line := range strings.Split(listing, "\n") {
		if id := strings.TrimSpace(line); id != "" {
			installed[strings.ToLower(id)] = true
		}
	}
	logger.Debug("[DEBUG] Editor reports %d installed extensions\n", len(installed))

	for _, ext := range cfg.Extensions {
		if installed[strings.ToLower(ext.ID)] {
			rep.Record(Pass(ext.Name + " extension is installed"))
			continue
		}
		rep.Record(Fail(ParseSeverity(ext.Severity),
			ext.Name+" extension is not installed",
			"Run: "+editorPath+" --install-extension "+ext.ID,
			"Or open the Extensions panel in VS Code (Ctrl+Shift+X), search for \""+ext.Name+"\" and click Install",
		).WithDetail(ext.Reason).WithLink(marketplaceURL + ext.ID))
	}
}
