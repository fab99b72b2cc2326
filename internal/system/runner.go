package system

import (
	"os"
	"os/exec"
	"strings"

	"setup-doctor/internal/logger"
)

// Runner abstracts every interaction the probes have with the host machine:
// running an external command, resolving a binary on PATH, and checking whether
// a filesystem path exists. Probes only ever see this interface, so tests can
// substitute a fake that returns canned text per command and exercise every
// classification branch without touching a real environment.
//
// The executor contract is deliberately lossy: Output reports only whether a
// usable result was obtained, never why one wasn't. A missing binary, a
// non-zero exit, and a garbled invocation all collapse to ("", false), which
// lets every probe treat "tool absent" and "tool errored" identically.
type Runner interface {
	// Output runs the command synchronously and returns its trimmed standard
	// output. The boolean is false on any execution error; no error value is
	// ever surfaced to the caller.
	Output(name string, args ...string) (string, bool)

	// LookPath resolves name against the shell search path, returning the
	// resolved location and whether resolution succeeded.
	LookPath(name string) (string, bool)

	// FileExists reports whether the given filesystem path exists.
	FileExists(path string) bool
}

// Shell is the production Runner backed by os/exec and os.Stat.
type Shell struct{}

// Output executes the command and captures stdout.
// Every failure mode — binary not found, non-zero exit, an I/O error reading
// the pipe — is logged at debug level and converted to the absent result.
// There is no explicit timeout: if the underlying command hangs, the whole
// run hangs with it (a known gap, inherited from the probes being thin
// wrappers over the host tools).
func (Shell) Output(name string, args ...string) (string, bool) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		logger.Debug("[DEBUG] %s %s failed: %v\n", name, strings.Join(args, " "), err)
		return "", false
	}
	return strings.TrimSpace(string(out)), true
}

// LookPath resolves name on PATH via exec.LookPath.
func (Shell) LookPath(name string) (string, bool) {
	path, err := exec.LookPath(name)
	if err != nil {
		logger.Debug("[DEBUG] %s not on PATH: %v\n", name, err)
		return "", false
	}
	return path, true
}

// FileExists reports whether path exists on the local filesystem.
// Permission errors count as absent, matching the executor's lossy contract.
func (Shell) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
