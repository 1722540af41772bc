// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"
	"time"

	"schema-audit/internal/audit"
	"schema-audit/internal/core"
	"schema-audit/internal/formatters"

	"github.com/fatih/color"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":   color.New(color.FgGreen),
			"yellow":  color.New(color.FgYellow),
			"red":     color.New(color.FgRed),
			"cyan":    color.New(color.FgCyan),
			"magenta": color.New(color.FgMagenta),
			"white":   color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable summary of directories and duplicate groups"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) MimeType() string {
	return "text/plain"
}

func (f *Formatter) Format(report *audit.Report, options formatters.FormatterOptions) (string, error) {
	if report == nil {
		return "", fmt.Errorf("no report to format")
	}

	// Disable colors if requested
	if options.NoColor {
		color.NoColor = true
	}

	var builder strings.Builder
	f.appendSummary(&builder, report, options)
	f.appendDirectories(&builder, report, options)
	f.appendSchemaGroups(&builder, report, options)
	f.appendContentGroups(&builder, report, options)
	f.appendFuzzyGroups(&builder, report, options)
	return builder.String(), nil
}

// paint applies the named color unless colors are disabled
func (f *Formatter) paint(name string, options formatters.FormatterOptions, format string, args ...interface{}) string {
	if options.NoColor {
		return fmt.Sprintf(format, args...)
	}
	return f.colors[name].Sprintf(format, args...)
}

func (f *Formatter) appendSummary(builder *strings.Builder, report *audit.Report, options formatters.FormatterOptions) {
	builder.WriteString(f.paint("white", options, "Schema audit of %s\n", report.ScanDirectory))

	stats := report.Stats
	fileCount := 0
	for _, dir := range report.Directories {
		fileCount += len(dir.Files)
	}
	fmt.Fprintf(builder, "  Files recorded: %d in %d directories", fileCount, len(report.Directories))
	if stats.FilesDropped > 0 {
		builder.WriteString(f.paint("yellow", options, " (%d unreadable files dropped)", stats.FilesDropped))
	}
	builder.WriteString("\n")

	if stats.RunID != "" {
		fmt.Fprintf(builder, "  Run ID: %s\n", stats.RunID)
	}
	if stats.Duration > 0 {
		fmt.Fprintf(builder, "  Duration: %s\n", stats.Duration.Round(time.Millisecond))
	}
	if !stats.HashingEnabled {
		builder.WriteString(f.paint("yellow", options, "  Content hashing disabled\n"))
	}
}

func (f *Formatter) appendDirectories(builder *strings.Builder, report *audit.Report, options formatters.FormatterOptions) {
	if !options.Verbose || len(report.Directories) == 0 {
		return
	}

	builder.WriteString("\n")
	builder.WriteString(f.paint("white", options, "Directories\n"))
	for _, dir := range report.Directories {
		builder.WriteString(f.paint("cyan", options, "  %s\n", dir.Path))
		for _, file := range dir.Files {
			fmt.Fprintf(builder, "    %-40s %-6s %s\n", file.Name, file.FileType, f.describeFile(file))
		}
	}
}

// describeFile renders the schema and size details of a file on one line
func (f *Formatter) describeFile(file core.FileRecord) string {
	var parts []string
	if file.ContentHash != "" {
		parts = append(parts, "crc32 "+file.ContentHash)
	}
	if file.FileSize != nil {
		parts = append(parts, fmt.Sprintf("%d bytes", *file.FileSize))
	}
	if file.CSV != nil {
		parts = append(parts, describeTable(len(file.CSV.Columns), file.CSV.RowCount, file.CSV.Truncated()))
	}
	if file.Excel != nil {
		parts = append(parts, fmt.Sprintf("%d sheets", len(file.Excel.Sheets)))
	}
	if file.Document != nil {
		parts = append(parts, fmt.Sprintf("%d pages", file.Document.PageCount))
	}
	return strings.Join(parts, ", ")
}

func describeTable(columns, rows int, truncated bool) string {
	desc := fmt.Sprintf("%d columns, %d rows", columns, rows)
	if truncated {
		desc += " (stopped at cap)"
	}
	return desc
}

func (f *Formatter) appendSchemaGroups(builder *strings.Builder, report *audit.Report, options formatters.FormatterOptions) {
	builder.WriteString("\n")
	builder.WriteString(f.paint("white", options, "Identical schemas: %d groups\n", len(report.ColumnSimilarityTable)))
	for _, group := range report.ColumnSimilarityTable {
		builder.WriteString(f.paint("magenta", options, "  [%08x]", group.Hash))
		fmt.Fprintf(builder, " %s\n", strings.Join(group.ExampleColumns, ", "))
		f.appendSources(builder, group.Sources)
	}
}

func (f *Formatter) appendContentGroups(builder *strings.Builder, report *audit.Report, options formatters.FormatterOptions) {
	builder.WriteString("\n")
	builder.WriteString(f.paint("white", options, "Identical content: %d groups\n", len(report.CRC32SimilarityTable)))
	for _, group := range report.CRC32SimilarityTable {
		builder.WriteString(f.paint("red", options, "  [%s]\n", group.Hash))
		f.appendSources(builder, group.Sources)
	}
}

func (f *Formatter) appendFuzzyGroups(builder *strings.Builder, report *audit.Report, options formatters.FormatterOptions) {
	builder.WriteString("\n")
	builder.WriteString(f.paint("white", options, "Similar schemas: %d clusters\n", len(report.FuzzySimilarityGroups)))
	for _, group := range report.FuzzySimilarityGroups {
		builder.WriteString(f.paint("green", options, "  #%d (>= %.2f)", group.ID, group.SimilarityScore))
		fmt.Fprintf(builder, " %s\n", strings.Join(group.RepresentativeColumns, ", "))
		f.appendSources(builder, group.Sources)
	}
}

func (f *Formatter) appendSources(builder *strings.Builder, sources []string) {
	for _, source := range sources {
		fmt.Fprintf(builder, "      - %s\n", source)
	}
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
