package checkup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"setup-doctor/internal/config"
)

func TestCheckExtensionsSkipsWithoutEditor(t *testing.T) {
	run := &fakeRunner{}
	rep := NewReport()

	CheckExtensions(run, config.Default(), "", rep)

	// One informational line, zero per-extension checks, zero bucket entries.
	assert.Empty(t, run.calls)
	assert.Empty(t, rep.Passed)
	assert.Empty(t, rep.Failed)
	assert.Empty(t, rep.Warned)
	assert.Empty(t, rep.Critical)
	assert.Empty(t, rep.Important)
	assert.Empty(t, rep.Optional)
}

func TestCheckExtensionsListingUnavailableIsSoft(t *testing.T) {
	// The list command failing is reported, not counted as five failures.
	run := &fakeRunner{}
	rep := NewReport()

	CheckExtensions(run, config.Default(), "code", rep)

	assert.Equal(t, []string{"code --list-extensions"}, run.calls)
	assert.Empty(t, rep.Failed)
	assert.Empty(t, rep.Passed)
	assert.Equal(t, 0, rep.Total())
}

func TestCheckExtensionsAllPresentCaseInsensitive(t *testing.T) {
	// The listing uses casings that differ from the requirement table.
	run := &fakeRunner{outputs: map[string]string{
		"code --list-extensions": strings.Join([]string{
			"RITWICKDEY.liveserver",
			"Esbenp.Prettier-VSCode",
			"eamodio.GITLENS",
			"github.vscode-pull-request-github",
			"StreetSideSoftware.Code-Spell-Checker",
		}, "\n"),
	}}
	rep := NewReport()

	CheckExtensions(run, config.Default(), "code", rep)

	assert.Len(t, rep.Passed, 5)
	assert.Empty(t, rep.Failed)
	assert.Empty(t, rep.Critical)
	assert.Empty(t, rep.Important)
	assert.Empty(t, rep.Optional)
}

func TestCheckExtensionsMissingUsesTableSeverity(t *testing.T) {
	// Only GitLens (important) is missing.
	run := &fakeRunner{outputs: map[string]string{
		"code --list-extensions": strings.Join([]string{
			"ritwickdey.LiveServer",
			"esbenp.prettier-vscode",
			"GitHub.vscode-pull-request-github",
			"streetsidesoftware.code-spell-checker",
		}, "\n"),
	}}
	rep := NewReport()

	CheckExtensions(run, config.Default(), "code", rep)

	assert.Len(t, rep.Passed, 4)
	require.Len(t, rep.Failed, 1)
	failed := rep.Failed[0]
	assert.Equal(t, SeverityImportant, failed.Severity)
	assert.Contains(t, failed.Message, "GitLens")
	require.NotEmpty(t, failed.Fixes)
	assert.Contains(t, failed.Fixes[0], "code --install-extension eamodio.gitlens")
	assert.Contains(t, failed.Link, "eamodio.gitlens")
}

func TestCheckExtensionsInstallCommandUsesDiscoveredPath(t *testing.T) {
	// When the editor was found off PATH the install command must use the
	// absolute launcher path, since the bare name would not resolve.
	launcher := "/Applications/Visual Studio Code.app/Contents/Resources/app/bin/code"
	run := &fakeRunner{outputs: map[string]string{
		launcher + " --list-extensions": "",
	}}
	rep := NewReport()

	CheckExtensions(run, config.Default(), launcher, rep)

	require.Len(t, rep.Failed, 5)
	for _, failed := range rep.Failed {
		require.NotEmpty(t, failed.Fixes)
		assert.Contains(t, failed.Fixes[0], launcher+" --install-extension")
	}
}
