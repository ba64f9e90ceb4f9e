package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/daedaleanai/cobra"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"crateaudit/diagnostics"
	"crateaudit/linepipes"
	"crateaudit/render"
	"crateaudit/report"
)

var fCodeJson *string
var fCodeCsv *string
var fCodeSnippets *bool

var codeCmd = &cobra.Command{
	Use:   "code",
	Short: "Analyses code for known issues",
	Long: `Runs the linter over the workspace and reports the diagnostics that
survive the suppression rules, ordered by source location.`,
	RunE: RunAndHandleError(runCode),
}

// The linter reads its thresholds from this file in the workspace root.
const linterConfigFile = "clippy.toml"

// ensureLinterConfig writes the transient linter configuration file when the
// workspace has none and returns a cleanup function. A pre-existing file is
// left untouched and kept.
func ensureLinterConfig(contents string) (func(), error) {
	if _, err := os.Stat(linterConfigFile); err == nil {
		return func() {}, nil
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "checking for %s", linterConfigFile)
	}
	if err := os.WriteFile(linterConfigFile, []byte(contents), 0644); err != nil {
		return nil, errors.Wrapf(err, "writing %s", linterConfigFile)
	}
	return func() { os.Remove(linterConfigFile) }, nil
}

// runCode drives the diagnostic pipeline: spawn the linter, parse its stream,
// suppress, sort, render.
func runCode(command *cobra.Command, args []string) error {
	if err := setupConfiguration(); err != nil {
		return err
	}
	fmt.Println("Analysing code via clippy...")

	cleanup, err := ensureLinterConfig(auditConfig.LinterConfig)
	if err != nil {
		return err
	}
	defer cleanup()

	// The record stream is stdout-only; cargo's progress output on stderr
	// is not part of it.
	cargoArgs := append([]string{"clippy", "--message-format=json", "--"}, auditConfig.Checks...)
	lines, runErrors := linepipes.RunStdout(cargoProg(), cargoArgs...)

	var parseFailures []report.Finding
	var parsed []*diagnostics.Diagnostic
	for line := range lines {
		d, err := diagnostics.ParseLine(line)
		if err != nil {
			parseFailures = append(parseFailures, report.ParseError(line, err))
			continue
		}
		if d != nil {
			parsed = append(parsed, d)
		}
	}
	// The linter exits non-zero when denied lints fire. That is a report,
	// not a failure.
	if err := linepipes.Wait(runErrors, true); err != nil {
		return errors.Wrap(err, "running linter")
	}

	var surviving []*diagnostics.Diagnostic
	for _, d := range parsed {
		if !diagnostics.IsSuppressed(d, auditConfig.Suppressions) {
			surviving = append(surviving, d)
		}
	}
	diagnostics.SortByLocation(surviving)

	workDir, err := os.Getwd()
	if err != nil {
		return err
	}
	findings := append(parseFailures,
		report.BuildDiagnostics(surviving, auditConfig.CatalogURL, workDir)...)

	renderer := render.New(os.Stdout)
	renderer.Snippets = *fCodeSnippets
	if err := renderer.Render(findings); err != nil {
		return err
	}

	if *fCodeJson != "" {
		if err := writeJsonFindings(*fCodeJson, findings); err != nil {
			return err
		}
	}
	if *fCodeCsv != "" {
		if err := writeCsvFindings(*fCodeCsv, findings); err != nil {
			return err
		}
	}
	return nil
}

type lintMessage struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Path     string `json:"path"`
	Line     int    `json:"line"`
	Char     int    `json:"char"`
}

func toLintMessage(f *report.Finding) lintMessage {
	message := lintMessage{
		Severity: f.Label,
		Code:     f.Code,
		Message:  f.Message,
	}
	if message.Severity == "" {
		message.Severity = "info"
	}
	if f.Location != nil {
		message.Path = f.Location.Path
		message.Line = f.Location.Line
		message.Char = f.Location.Column
	}
	return message
}

// writeJsonFindings exports the findings as one json object per line, for
// consumption by editors and CI annotations.
func writeJsonFindings(path string, findings []report.Finding) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating json file")
	}
	defer file.Close()

	jsonWriter := json.NewEncoder(file)
	for i := range findings {
		if err := jsonWriter.Encode(toLintMessage(&findings[i])); err != nil {
			return err
		}
	}
	return nil
}

// writeCsvFindings exports the findings as csv with title-cased headers.
func writeCsvFindings(path string, findings []report.Finding) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating csv file")
	}
	defer file.Close()

	csvwriter := csv.NewWriter(file)
	titler := cases.Title(language.BritishEnglish)
	header := []string{}
	for _, column := range []string{"severity", "code", "message", "path", "line", "column"} {
		header = append(header, titler.String(column))
	}
	csvwriter.Write(header)
	for i := range findings {
		m := toLintMessage(&findings[i])
		csvwriter.Write([]string{
			m.Severity, m.Code, m.Message, m.Path,
			strconv.Itoa(m.Line), strconv.Itoa(m.Char),
		})
	}
	csvwriter.Flush()
	return csvwriter.Error()
}

// Registers the code command
func init() {
	fCodeJson = codeCmd.PersistentFlags().String("json", "", "Also write the findings to a json file.")
	fCodeCsv = codeCmd.PersistentFlags().String("csv", "", "Also write the findings to a csv file.")
	fCodeSnippets = codeCmd.PersistentFlags().Bool("snippets", false, "Show the highlighted source excerpt under each diagnostic.")
	rootCmd.AddCommand(codeCmd)
}
