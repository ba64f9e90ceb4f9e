package linepipes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_StdoutOnlyLineSource(t *testing.T) {
	// Record streams live on stdout; human progress goes to stderr and must
	// never reach the line channel, or it would surface as a bogus decode
	// failure downstream.
	lines, runErrors := RunStdout("sh", "-c",
		`echo '{"reason":"build-finished","success":true}'; echo '    Checking demo v0.1.0 (/work)' 1>&2`)

	collected := []string{}
	for line := range lines {
		collected = append(collected, line)
	}
	require.NoError(t, Wait(runErrors, false))
	assert.Equal(t, []string{`{"reason":"build-finished","success":true}`}, collected)
}

func TestRun_CombinedOutput(t *testing.T) {
	lines, runErrors := Run("sh", "-c", "echo out; echo err 1>&2")

	collected := []string{}
	for line := range lines {
		collected = append(collected, line)
	}
	require.NoError(t, Wait(runErrors, false))
	assert.ElementsMatch(t, []string{"out", "err"}, collected)
}

func TestRun_ExitStatusTolerance(t *testing.T) {
	lines, runErrors := RunStdout("sh", "-c", "exit 1")
	for range lines {
	}
	// Linters exit non-zero when they find something; that is not a failure.
	assert.NoError(t, Wait(runErrors, true))

	lines, runErrors = RunStdout("sh", "-c", "exit 1")
	for range lines {
	}
	assert.Error(t, Wait(runErrors, false))
}
