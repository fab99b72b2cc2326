package checkup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"setup-doctor/internal/config"
)

func TestCheckRepositoryOutsideRepo(t *testing.T) {
	run := &fakeRunner{}
	rep := NewReport()

	CheckRepository(run, config.Default(), rep)

	// Exactly one optional warning, and no git commands at all.
	assert.Empty(t, run.calls)
	assert.Empty(t, rep.Passed)
	assert.Empty(t, rep.Failed)
	require.Len(t, rep.Warned, 1)
	assert.Equal(t, SeverityOptional, rep.Warned[0].Severity)
	assert.Len(t, rep.Optional, 1)
}

func TestCheckRepositoryCleanWithGitHubRemote(t *testing.T) {
	run := &fakeRunner{
		files: map[string]bool{".git": true},
		outputs: map[string]string{
			"git remote get-url origin": "git@github.com:sam/coursework.git",
			"git branch --show-current": "main",
			"git status --porcelain":    "",
		},
	}
	rep := NewReport()

	CheckRepository(run, config.Default(), rep)

	// Repository, remote, hosted-on-github, clean tree: four passes. The
	// branch name is a note and stays out of the tally.
	assert.Len(t, rep.Passed, 4)
	assert.Empty(t, rep.Failed)
	assert.Empty(t, rep.Warned)
	assert.Equal(t, 4, rep.Total())
}

func TestCheckRepositoryMissingRemote(t *testing.T) {
	run := &fakeRunner{
		files: map[string]bool{".git": true},
		outputs: map[string]string{
			"git status --porcelain": "",
		},
	}
	rep := NewReport()

	CheckRepository(run, config.Default(), rep)

	require.Len(t, rep.Failed, 1)
	assert.Equal(t, SeverityImportant, rep.Failed[0].Severity)
	assert.NotEmpty(t, rep.Failed[0].Fixes)
}

func TestCheckRepositoryUncommittedChanges(t *testing.T) {
	run := &fakeRunner{
		files: map[string]bool{".git": true},
		outputs: map[string]string{
			"git remote get-url origin": "https://github.com/sam/coursework.git",
			"git status --porcelain":    " M index.html\n?? notes.md\n M css/style.css",
		},
	}
	rep := NewReport()

	CheckRepository(run, config.Default(), rep)

	require.Len(t, rep.Warned, 1)
	warned := rep.Warned[0]
	assert.Equal(t, SeverityOptional, warned.Severity)
	assert.Contains(t, warned.Message, "3 uncommitted change(s)")
}

func TestCountStatusLines(t *testing.T) {
	assert.Equal(t, 0, countStatusLines(""))
	assert.Equal(t, 1, countStatusLines(" M index.html"))
	assert.Equal(t, 2, countStatusLines(" M a\n\n?? b"))
}
