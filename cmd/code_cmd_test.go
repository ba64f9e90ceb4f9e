package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crateaudit/report"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	previous, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(previous) })
}

func TestCode_EnsureLinterConfigCreatesAndRemoves(t *testing.T) {
	chdir(t, t.TempDir())

	cleanup, err := ensureLinterConfig("too-many-lines-threshold=30")
	require.NoError(t, err)

	contents, err := os.ReadFile(linterConfigFile)
	require.NoError(t, err)
	assert.Equal(t, "too-many-lines-threshold=30", string(contents))

	cleanup()
	_, err = os.Stat(linterConfigFile)
	assert.True(t, os.IsNotExist(err))
}

func TestCode_EnsureLinterConfigKeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(linterConfigFile, []byte("user settings"), 0644))

	cleanup, err := ensureLinterConfig("too-many-lines-threshold=30")
	require.NoError(t, err)
	cleanup()

	// The user's own file is neither overwritten nor removed.
	contents, err := os.ReadFile(filepath.Join(dir, linterConfigFile))
	require.NoError(t, err)
	assert.Equal(t, "user settings", string(contents))
}

func TestCode_CargoProgOverride(t *testing.T) {
	t.Setenv("CARGO", "/opt/rust/bin/cargo")
	assert.Equal(t, "/opt/rust/bin/cargo", cargoProg())

	t.Setenv("CARGO", "")
	assert.Equal(t, "cargo", cargoProg())
}

func TestCode_ExportedFindings(t *testing.T) {
	dir := t.TempDir()
	findings := []report.Finding{
		{
			Severity: report.SeverityError,
			Label:    "error",
			Code:     "clippy::unwrap_used",
			Message:  "used unwrap()",
			Location: &report.Location{Path: "src/lib.rs", Line: 10, Column: 13},
		},
		{Severity: report.SeverityInfo, Message: "license: MIT"},
	}

	jsonPath := filepath.Join(dir, "findings.json")
	require.NoError(t, writeJsonFindings(jsonPath, findings))
	jsonOut, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t,
		`{"severity":"error","code":"clippy::unwrap_used","message":"used unwrap()","path":"src/lib.rs","line":10,"char":13}`+"\n"+
			`{"severity":"info","code":"","message":"license: MIT","path":"","line":0,"char":0}`+"\n",
		string(jsonOut))

	csvPath := filepath.Join(dir, "findings.csv")
	require.NoError(t, writeCsvFindings(csvPath, findings))
	csvOut, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t,
		"Severity,Code,Message,Path,Line,Column\n"+
			"error,clippy::unwrap_used,used unwrap(),src/lib.rs,10,13\n"+
			"info,,license: MIT,,0,0\n",
		string(csvOut))
}
