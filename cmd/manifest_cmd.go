package cmd

import (
	"fmt"
	"os"

	"github.com/daedaleanai/cobra"
	"github.com/pkg/errors"

	"crateaudit/config"
	"crateaudit/linepipes"
	"crateaudit/manifest"
	"crateaudit/render"
	"crateaudit/report"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Analyses the manifest for known issues",
	Long: `Inspects the workspace manifest and reports missing recommended fields and
pinned dependencies whose branch is no longer current.`,
	RunE: RunAndHandleError(runManifest),
}

// auditManifest decodes the metadata document and produces the report
// findings. A document that fails to decode is fatal to this pipeline: the
// single error finding is returned for rendering, together with an error so
// the run does not pass as a clean audit.
func auditManifest(document []byte, cfg *config.Config) ([]report.Finding, error) {
	metadata, err := manifest.Parse(document)
	if err != nil {
		finding := report.Finding{
			Kind:     report.KindError,
			Severity: report.SeverityError,
			Label:    "error",
			Message:  fmt.Sprintf("could not deserialise: %v", err),
		}
		return []report.Finding{finding}, errors.New("could not deserialise the metadata document")
	}

	var findings []report.Finding
	for _, pkg := range metadata.Packages {
		findings = append(findings, manifest.PackageHeader(pkg))
		findings = append(findings, manifest.CheckCompleteness(pkg, cfg.ManifestChecks)...)
		findings = append(findings, manifest.CheckStaleness(pkg, cfg.Staleness)...)
	}
	return findings, nil
}

// runManifest drives the manifest pipeline: spawn the inspector, decode the
// document, check completeness and staleness per package, render.
func runManifest(command *cobra.Command, args []string) error {
	if err := setupConfiguration(); err != nil {
		return err
	}
	fmt.Println("Analysing manifest via metadata...")

	lines, runErrors := linepipes.RunStdout(cargoProg(), "metadata", "--no-deps", "--format-version=1")
	document, err := linepipes.All(lines, runErrors)
	if err != nil {
		return errors.Wrap(err, "running manifest inspector")
	}

	findings, auditErr := auditManifest([]byte(document), auditConfig)
	if err := render.New(os.Stdout).Render(findings); err != nil {
		return err
	}
	return auditErr
}

// Registers the manifest command
func init() {
	rootCmd.AddCommand(manifestCmd)
}
