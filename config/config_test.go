package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_ParseConfig(t *testing.T) {
	config, err := ParseConfig("testdata/crateaudit_config.toml")
	require.NoError(t, err)

	assert.Equal(t, []string{"-Wclippy::too-many-lines", "-Dclippy::unwrap_used"}, config.Checks)
	assert.Equal(t, "too-many-lines-threshold=50", config.LinterConfig)

	assert.Equal(t, []SuppressionRule{
		{
			Marker: "construct_runtime!",
			Codes: map[string]bool{
				"clippy::too_many_lines":     true,
				"clippy::integer_arithmetic": true,
			},
		},
		{
			Marker: "#[pallet::",
		},
	}, config.Suppressions)

	assert.Equal(t, "git+https://github.com/paritytech/polkadot-sdk", config.Staleness.SourcePrefix)
	assert.Equal(t, map[string]bool{
		"polkadot-v1.1.0": true,
		"polkadot-v1.2.0": true,
	}, config.Staleness.CurrentTags)

	assert.Equal(t, map[FieldCheck]bool{
		CheckAuthors: true,
		CheckLicense: true,
	}, config.ManifestChecks)

	assert.Equal(t, "https://example.com/lints#", config.CatalogURL)
}

func TestConfig_ParseConfigMissingFile(t *testing.T) {
	config, err := ParseConfig("testdata/does_not_exist.toml")
	require.NoError(t, err)

	// A missing file falls back to the compiled-in defaults.
	assert.Equal(t, DefaultConfig(), config)
}

func TestConfig_ParseConfigUnknownCheck(t *testing.T) {
	_, err := convertConfig(tomlConfig{
		Manifest: tomlManifest{Checks: []string{"homepage"}},
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "homepage")
}

func TestConfig_SuppressionRuleAppliesTo(t *testing.T) {
	unscoped := SuppressionRule{Marker: "#[derive("}
	assert.True(t, unscoped.AppliesTo("clippy::unwrap_used"))
	assert.True(t, unscoped.AppliesTo(""))

	scoped := SuppressionRule{
		Marker: "construct_runtime!",
		Codes:  map[string]bool{"clippy::too_many_lines": true},
	}
	assert.True(t, scoped.AppliesTo("clippy::too_many_lines"))
	assert.False(t, scoped.AppliesTo("clippy::unwrap_used"))
}
