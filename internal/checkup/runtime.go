package checkup

import (
	"setup-doctor/internal/logger"
	"setup-doctor/internal/system"
)

// CheckRuntime verifies the Node.js runtime and its package manager.
// Node missing is critical — nothing in the course runs without it. npm
// missing is important: installs and scripts degrade, but the runtime itself
// still works.
func CheckRuntime(run system.Runner, rep *Report) {
	logger.Debug("[DEBUG] Probing node and npm versions\n")

	if version, ok := run.Output("node", "--version"); ok {
		rep.Record(Pass("Node.js " + version + " is installed"))
	} else {
		rep.Record(Fail(SeverityCritical, "Node.js is not installed",
			"Download the LTS installer from https://nodejs.org",
			"Run the installer with the default options",
			"Open a new terminal window and run `node --version` to confirm",
		).WithLink("https://nodejs.org/en/download"))
	}

	if version, ok := run.Output("npm", "--version"); ok {
		rep.Record(Pass("npm " + version + " is installed"))
	} else {
		rep.Record(Fail(SeverityImportant, "npm is not installed",
			"npm ships with the Node.js installer; reinstall Node.js from https://nodejs.org",
			"Open a new terminal window and run `npm --version` to confirm",
		))
	}
}
