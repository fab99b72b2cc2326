package checkup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRuntimeAllPresent(t *testing.T) {
	run := &fakeRunner{outputs: map[string]string{
		"node --version": "v22.11.0",
		"npm --version":  "10.9.0",
	}}
	rep := NewReport()
	CheckRuntime(run, rep)

	require.Len(t, rep.Passed, 2)
	assert.Contains(t, rep.Passed[0].Message, "v22.11.0")
	assert.Empty(t, rep.Failed)
}

func TestCheckRuntimeNodeMissing(t *testing.T) {
	run := &fakeRunner{outputs: map[string]string{"npm --version": "10.9.0"}}
	rep := NewReport()
	CheckRuntime(run, rep)

	require.Len(t, rep.Failed, 1)
	assert.Equal(t, SeverityCritical, rep.Failed[0].Severity)
	assert.NotEmpty(t, rep.Failed[0].Fixes)
	assert.NotEmpty(t, rep.Failed[0].Link)
}

func TestCheckRuntimeNpmMissingIsImportant(t *testing.T) {
	run := &fakeRunner{outputs: map[string]string{"node --version": "v22.11.0"}}
	rep := NewReport()
	CheckRuntime(run, rep)

	require.Len(t, rep.Failed, 1)
	assert.Equal(t, SeverityImportant, rep.Failed[0].Severity)
	assert.Empty(t, rep.Critical)
}
