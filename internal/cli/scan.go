// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"schema-audit/internal/audit"
	"schema-audit/internal/config"
	"schema-audit/internal/core"
	"schema-audit/internal/formatters"
	_ "schema-audit/internal/formatters/csv"
	_ "schema-audit/internal/formatters/json"
	_ "schema-audit/internal/formatters/text"
	_ "schema-audit/internal/formatters/yaml"
	"schema-audit/internal/observability"
	"schema-audit/internal/paths"
	"schema-audit/internal/progress"
	"schema-audit/internal/redactors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// stdoutOutput writes the report to stdout instead of a file.
const stdoutOutput = "-"

type scanFlags struct {
	directory      string
	output         string
	format         string
	configFile     string
	profile        string
	maxRows        int
	fuzzyThreshold float64
	disableHash    bool
	documentInfo   bool
	compact        bool
	verbose        bool
	debug          bool
	quiet          bool
	noColor        bool
}

func newScanCommand() *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "scan --directory DIR",
		Short: "Audit a directory tree and write the report",
		Example: `  schema-audit scan --directory ./exports
  schema-audit scan -d ./exports --format yaml --output audit.yaml
  schema-audit scan -d ./exports --profile quick --disable-hash`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.directory, "directory", "d", "", "Directory to audit (required)")
	f.StringVarP(&flags.output, "output", "o", config.DefaultOutput, "Report file, or - for stdout")
	f.StringVarP(&flags.format, "format", "f", config.DefaultFormat, "Report format: "+strings.Join(config.SupportedFormats, ", "))
	f.StringVar(&flags.configFile, "config", "", "Path to a YAML configuration file")
	f.StringVar(&flags.profile, "profile", "", "Configuration profile to apply")
	f.IntVar(&flags.maxRows, "max-rows", config.DefaultMaxRows, "Stop counting rows per file or sheet at this number")
	f.Float64Var(&flags.fuzzyThreshold, "fuzzy-threshold", config.DefaultFuzzyThreshold, "Minimum column-set similarity for fuzzy groups (0 disables)")
	f.BoolVar(&flags.disableHash, "disable-hash", false, "Skip CRC-32 content hashing")
	f.BoolVar(&flags.documentInfo, "document-info", false, "Record PDF and DOCX page counts")
	f.BoolVar(&flags.compact, "compact", false, "Write JSON without indentation")
	f.BoolVarP(&flags.verbose, "verbose", "v", false, "List every file in text output")
	f.BoolVar(&flags.debug, "debug", false, "Write debug records to stderr")
	f.BoolVarP(&flags.quiet, "quiet", "q", false, "Suppress progress and summary output")
	f.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")

	return cmd
}

// loadConfiguration reads configFile, or the first discovered config file
// when configFile is empty. It returns the path actually used.
func loadConfiguration(configFile string) (*config.Config, string, error) {
	path := configFile
	if path == "" {
		path = config.FindConfigFile()
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}
	return cfg, path, nil
}

// resolveSettings merges defaults, the config file, the environment and the
// flags that were set explicitly, in that order.
func resolveSettings(cmd *cobra.Command, flags *scanFlags) (config.Settings, error) {
	cfg, _, err := loadConfiguration(flags.configFile)
	if err != nil {
		return config.Settings{}, err
	}

	settings, err := cfg.Resolve(flags.profile)
	if err != nil {
		return config.Settings{}, err
	}

	changed := cmd.Flags().Changed
	if changed("output") {
		settings.Output = flags.output
	}
	if changed("format") {
		settings.Format = strings.ToLower(flags.format)
	}
	if changed("max-rows") {
		settings.MaxRows = flags.maxRows
	}
	if changed("fuzzy-threshold") {
		settings.FuzzyThreshold = flags.fuzzyThreshold
	}
	if changed("disable-hash") {
		settings.DisableHash = flags.disableHash
	}
	if changed("document-info") {
		settings.DocumentInfo = flags.documentInfo
	}
	if changed("verbose") {
		settings.Verbose = flags.verbose
	}
	if changed("debug") {
		settings.Debug = flags.debug
	}
	if changed("quiet") {
		settings.Quiet = flags.quiet
	}
	if changed("no-color") {
		settings.NoColor = flags.noColor
	}

	if err := settings.Validate(); err != nil {
		return config.Settings{}, err
	}

	// The default report name follows the selected format
	if !changed("output") && settings.Output == config.DefaultOutput {
		if formatter, ok := formatters.Get(settings.Format); ok {
			settings.Output = paths.WithExtension(config.DefaultOutput, formatter.FileExtension())
		}
	}
	return settings, nil
}

func runScan(cmd *cobra.Command, flags *scanFlags) error {
	if strings.TrimSpace(flags.directory) == "" {
		return fmt.Errorf("%w: --directory is required", ErrUsage)
	}

	settings, err := resolveSettings(cmd, flags)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	interactive := progress.IsTerminal(os.Stderr) && stderr == os.Stderr
	if settings.NoColor || !interactive {
		color.NoColor = true
	}

	observer := observability.New(settings.Debug, stderr)

	var progressFn core.ProgressFunc
	if !progress.ShouldSuppress(settings.Debug, settings.Quiet, interactive) {
		fmt.Fprintln(stderr, scanBanner(flags.directory))
		progressFn = progress.New(stderr).Func()
	}

	report, err := audit.Run(audit.Settings{
		Directory: flags.directory,
		Options: core.Options{
			EnableHash:   !settings.DisableHash,
			MaxRows:      settings.MaxRows,
			DocumentInfo: settings.DocumentInfo,
		},
		FuzzyThreshold: settings.FuzzyThreshold,
	}, observer, progressFn)
	if err != nil {
		return err
	}

	formatOptions := formatters.FormatterOptions{
		Verbose: settings.Verbose,
		NoColor: settings.NoColor || !interactive,
		Compact: flags.compact,
	}

	if settings.Output == stdoutOutput {
		if err := formatters.WriteReport(cmd.OutOrStdout(), settings.Format, report, formatOptions); err != nil {
			return err
		}
	} else {
		rendered, err := formatters.Export(settings.Format, report, formatOptions)
		if err != nil {
			return fmt.Errorf("failed to format report: %w", err)
		}
		output := paths.NormalizePath(settings.Output)
		if err := os.WriteFile(output, []byte(rendered), 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		settings.Output = output
	}

	if !settings.Quiet {
		printSummary(stderr, report, settings)
	}
	return nil
}

// printSummary writes the end-of-run summary to w.
func printSummary(w io.Writer, report *audit.Report, settings config.Settings) {
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	stats := report.Stats
	green.Fprintf(w, "Scan complete: %d files recorded in %d directories", stats.FilesRecorded, len(report.Directories))
	if stats.FilesDropped > 0 {
		yellow.Fprintf(w, ", %d files dropped", stats.FilesDropped)
	}
	fmt.Fprintf(w, " in %s\n", stats.Duration.Round(time.Millisecond))

	fmt.Fprintf(w, "Identical schemas: %d  Identical content: %d  Similar schemas: %d\n",
		len(report.ColumnSimilarityTable), len(report.CRC32SimilarityTable), len(report.FuzzySimilarityGroups))
	if !stats.HashingEnabled {
		yellow.Fprintln(w, "Content hashing disabled")
	}
	if settings.Output != stdoutOutput {
		fmt.Fprintf(w, "Report written to: %s\n", settings.Output)
	}
}

// scanBanner is the progress header printed before a scan. The directory is
// redacted like every other path that reaches the console.
func scanBanner(directory string) string {
	return fmt.Sprintf("Scanning %s...", redactors.Redact(directory))
}
