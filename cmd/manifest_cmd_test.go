package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crateaudit/config"
	"crateaudit/report"
)

const testMetadata = `{
	"packages": [
		{
			"name": "demo",
			"manifest_path": "/work/Cargo.toml",
			"version": "0.1.0",
			"license": "MIT",
			"description": null,
			"authors": [],
			"repository": null,
			"dependencies": [
				{"name": "frame-support", "source": "git+https://github.com/paritytech/substrate?branch=polkadot-v0.9.30"}
			]
		}
	]
}`

func TestManifest_AuditFindings(t *testing.T) {
	cfg := config.DefaultConfig()

	findings, err := auditManifest([]byte(testMetadata), &cfg)
	require.NoError(t, err)

	messages := []string{}
	for _, f := range findings {
		messages = append(messages, f.Message)
	}
	assert.Equal(t, []string{
		"demo 0.1.0 (/work/Cargo.toml)",
		"no 'authors' found in demo",
		"no 'description' found in demo",
		"license: MIT",
		"no 'repository' found in demo",
		"polkadot-v0.9.30 for 'frame-support' is out of date",
	}, messages)
}

func TestManifest_UndecodableDocumentFailsTheRun(t *testing.T) {
	cfg := config.DefaultConfig()

	// The fatal condition is still rendered as a report finding, but the
	// command must not exit as if the audit ran clean.
	findings, err := auditManifest([]byte("error: could not find Cargo.toml"), &cfg)
	require.Error(t, err)
	require.Len(t, findings, 1)
	assert.Equal(t, report.KindError, findings[0].Kind)
	assert.Contains(t, findings[0].Message, "could not deserialise")
}
