package checkup

import (
	"os"
	"path/filepath"
	"runtime"

	"setup-doctor/internal/logger"
	"setup-doctor/internal/system"
)

// editorCommand is the VS Code launcher name probed on the shell search path.
const editorCommand = "code"

// editorCandidates returns the conventional VS Code install locations for the
// given platform, in probe order. The table is pure data: callers decide which
// candidates actually exist. env supplies environment lookups so tests can
// pin the Windows directory roots without touching the process environment.
//
// Three platform families are covered: path-based Unix-likes, the macOS
// application-bundle layout with a system and a per-user root, and the
// Windows layout with three roots derived from environment directories.
func editorCandidates(goos string, env func(string) string) []string {
	switch goos {
	case "darwin":
		bundle := filepath.Join("Visual Studio Code.app", "Contents", "Resources", "app", "bin", "code")
		return []string{
			filepath.Join("/Applications", bundle),
			filepath.Join(env("HOME"), "Applications", bundle),
		}
	case "windows":
		launcher := filepath.Join("Microsoft VS Code", "bin", "code.cmd")
		return []string{
			filepath.Join(env("LOCALAPPDATA"), "Programs", launcher),
			filepath.Join(env("ProgramFiles"), launcher),
			filepath.Join(env("ProgramFiles(x86)"), launcher),
		}
	default:
		// linux and the remaining Unix-likes share a small set of bin dirs.
		return []string{
			"/usr/local/bin/code",
			"/usr/bin/code",
			"/snap/bin/code",
		}
	}
}

// pathFixes returns the platform-specific steps for putting the code launcher
// onto the shell search path.
func pathFixes(goos string) []string {
	switch goos {
	case "darwin":
		return []string{
			"Open VS Code, press Cmd+Shift+P and run \"Shell Command: Install 'code' command in PATH\"",
			"Open a new terminal window and run `code --version` to confirm",
		}
	case "windows":
		return []string{
			"Re-run the VS Code installer and keep \"Add to PATH\" checked",
			"Sign out and back in, then run `code --version` in a new terminal to confirm",
		}
	default:
		return []string{
			"Add the directory containing the `code` binary to PATH in your shell profile",
			"Open a new terminal window and run `code --version` to confirm",
		}
	}
}

// installFixes returns the platform-specific install steps for VS Code.
func installFixes(goos string) []string {
	switch goos {
	case "darwin":
		return []string{
			"Download Visual Studio Code for macOS from https://code.visualstudio.com",
			"Drag \"Visual Studio Code.app\" into your Applications folder",
			"Launch it once so macOS registers the app",
		}
	case "windows":
		return []string{
			"Download the Visual Studio Code installer from https://code.visualstudio.com",
			"Run the installer and keep \"Add to PATH\" checked",
			"Open a new terminal window and run `code --version` to confirm",
		}
	default:
		return []string{
			"Install Visual Studio Code from https://code.visualstudio.com or your distribution's package manager",
			"On Ubuntu: `sudo snap install code --classic`",
			"Run `code --version` in a new terminal to confirm",
		}
	}
}

// CheckEditor locates a usable Visual Studio Code executable and reports on it.
// It returns the discovered launcher — the bare command name when it resolves
// on PATH, otherwise the first conventional install path that exists — or the
// empty string when the editor cannot be found at all. The extension probe
// consumes the returned value.
func CheckEditor(run system.Runner, rep *Report) string {
	return checkEditorOn(run, runtime.GOOS, os.Getenv, rep)
}

// checkEditorOn is CheckEditor with the platform identifier and environment
// lookup injected, so every branch is reachable from tests on any host.
func checkEditorOn(run system.Runner, goos string, env func(string) string, rep *Report) string {
	// Fast path: the launcher resolves on the shell search path.
	if resolved, ok := run.LookPath(editorCommand); ok {
		logger.Debug("[DEBUG] %s resolved on PATH at %s\n", editorCommand, resolved)
		rep.Record(Pass("Visual Studio Code is installed and on your PATH"))
		return editorCommand
	}

	// Fall back to the conventional install locations for this platform.
	for _, candidate := range editorCandidates(goos, env) {
		if !run.FileExists(candidate) {
			continue
		}
		logger.Debug("[DEBUG] Found editor binary off PATH at %s\n", candidate)
		rep.Record(Pass("Visual Studio Code is installed").WithDetail("found at " + candidate))
		// Installed but not path-resolvable: everything works when launched
		// from the dock or start menu, only terminal convenience is reduced.
		rep.Record(Warn(SeverityOptional,
			"The `code` command is not on your PATH", pathFixes(goos)...))
		return candidate
	}

	rep.Record(Fail(SeverityCritical, "Visual Studio Code is not installed",
		installFixes(goos)...).WithLink("https://code.visualstudio.com/download"))
	return ""
}
