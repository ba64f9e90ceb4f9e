// Reads audit policy from a crateaudit_config.toml file

package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// FieldCheck names one recommended manifest field the completeness checker
// can be asked to verify.
type FieldCheck string

const (
	CheckAuthors     FieldCheck = "authors"
	CheckDescription FieldCheck = "description"
	CheckLicense     FieldCheck = "license"
	CheckRepository  FieldCheck = "repository"
)

/// Internal types for parsing toml files

type tomlLints struct {
	Checks       []string `toml:"checks"`
	LinterConfig string   `toml:"linter_config"`
}

type tomlSuppression struct {
	Marker string   `toml:"marker"`
	Codes  []string `toml:"codes"`
}

type tomlStaleness struct {
	SourcePrefix string   `toml:"source_prefix"`
	CurrentTags  []string `toml:"current_tags"`
}

type tomlManifest struct {
	Checks []string `toml:"checks"`
}

type tomlReport struct {
	CatalogURL string `toml:"catalog_url"`
}

type tomlConfig struct {
	Lints     tomlLints         `toml:"lints"`
	Suppress  []tomlSuppression `toml:"suppress"`
	Staleness tomlStaleness     `toml:"staleness"`
	Manifest  tomlManifest      `toml:"manifest"`
	Report    tomlReport        `toml:"report"`
}

/// Types exported for application use

// A single suppression rule: a literal marker searched for in the source text
// covered by a diagnostic's spans. An empty Codes set means the rule is
// unscoped and applies regardless of the diagnostic's code.
type SuppressionRule struct {
	Marker string
	Codes  map[string]bool
}

// AppliesTo reports whether the rule is relevant for a diagnostic carrying
// the given code.
func (r *SuppressionRule) AppliesTo(code string) bool {
	if len(r.Codes) == 0 {
		return true
	}
	return r.Codes[code]
}

// StalenessPolicy identifies the dependency ecosystem being audited and the
// set of version tags still considered current for it.
type StalenessPolicy struct {
	SourcePrefix string
	CurrentTags  map[string]bool
}

// Config carries the complete, immutable audit policy. It is loaded once at
// startup and passed into the pipelines.
type Config struct {
	// Lint flags passed to the linter invocation, e.g. "-Dclippy::unwrap_used".
	Checks []string
	// Contents of the transient linter configuration file.
	LinterConfig string
	Suppressions []SuppressionRule
	Staleness    StalenessPolicy
	// Which recommended manifest fields to verify.
	ManifestChecks map[FieldCheck]bool
	// Base URL of the browsable rule catalog.
	CatalogURL string
}

// DefaultConfig returns the policy used when no configuration file is present.
func DefaultConfig() Config {
	return Config{
		Checks: []string{
			"-Wclippy::too-many-lines",
			"-Dclippy::expect_used",
			"-Dclippy::unwrap_used",
			"-Dclippy::ok_expect",
			"-Dclippy::integer_division",
			"-Dclippy::indexing_slicing",
			"-Dclippy::integer_arithmetic",
			"-Dclippy::match_on_vec_items",
			"-Dclippy::manual_strip",
			"-Dclippy::await_holding_refcell_ref",
		},
		LinterConfig: "too-many-lines-threshold=30",
		Suppressions: []SuppressionRule{
			{Marker: "#[derive("},
			{Marker: "construct_runtime!", Codes: map[string]bool{"clippy::too_many_lines": true}},
			{Marker: "decl_storage!"},
			{Marker: "decl_module!"},
		},
		Staleness: StalenessPolicy{
			SourcePrefix: "git+https://github.com/paritytech/substrate",
			CurrentTags: map[string]bool{
				"polkadot-v0.9.42": true,
				"polkadot-v0.9.43": true,
				"polkadot-v1.0.0":  true,
			},
		},
		ManifestChecks: map[FieldCheck]bool{
			CheckAuthors:     true,
			CheckDescription: true,
			CheckLicense:     true,
			CheckRepository:  true,
		},
		CatalogURL: "https://rust-lang.github.io/rust-clippy/master/index.html#",
	}
}

// ParseConfig reads the policy from the given path. A missing file is not an
// error: the compiled-in defaults are returned instead.
func ParseConfig(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, errors.Wrapf(err, "reading config file `%s`", path)
	}

	var parsed tomlConfig
	if err := toml.Unmarshal(contents, &parsed); err != nil {
		return Config{}, errors.Wrapf(err, "parsing config file `%s`", path)
	}

	return convertConfig(parsed)
}

// Converts the raw toml representation into the exported configuration,
// filling in defaults for omitted sections.
func convertConfig(parsed tomlConfig) (Config, error) {
	config := DefaultConfig()

	if len(parsed.Lints.Checks) > 0 {
		config.Checks = parsed.Lints.Checks
	}
	if parsed.Lints.LinterConfig != "" {
		config.LinterConfig = parsed.Lints.LinterConfig
	}

	if parsed.Suppress != nil {
		config.Suppressions = nil
		for _, rule := range parsed.Suppress {
			if rule.Marker == "" {
				return Config{}, errors.New("suppression rule without a marker")
			}
			converted := SuppressionRule{Marker: rule.Marker}
			if len(rule.Codes) > 0 {
				converted.Codes = make(map[string]bool, len(rule.Codes))
				for _, code := range rule.Codes {
					converted.Codes[code] = true
				}
			}
			config.Suppressions = append(config.Suppressions, converted)
		}
	}

	if parsed.Staleness.SourcePrefix != "" {
		config.Staleness.SourcePrefix = parsed.Staleness.SourcePrefix
	}
	if parsed.Staleness.CurrentTags != nil {
		config.Staleness.CurrentTags = make(map[string]bool, len(parsed.Staleness.CurrentTags))
		for _, tag := range parsed.Staleness.CurrentTags {
			config.Staleness.CurrentTags[tag] = true
		}
	}

	if parsed.Manifest.Checks != nil {
		config.ManifestChecks = make(map[FieldCheck]bool, len(parsed.Manifest.Checks))
		for _, name := range parsed.Manifest.Checks {
			check := FieldCheck(name)
			switch check {
			case CheckAuthors, CheckDescription, CheckLicense, CheckRepository:
				config.ManifestChecks[check] = true
			default:
				return Config{}, errors.Errorf("unknown manifest check `%s`", name)
			}
		}
	}

	if parsed.Report.CatalogURL != "" {
		config.CatalogURL = parsed.Report.CatalogURL
	}

	return config, nil
}
