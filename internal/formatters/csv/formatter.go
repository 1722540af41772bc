// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"schema-audit/internal/audit"
	"schema-audit/internal/core"
	"schema-audit/internal/formatters"
)

// Formatter implements a flat CSV inventory: one row per file, or one row per
// worksheet for workbooks.
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Flat file and worksheet inventory for spreadsheet import"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) MimeType() string {
	return "text/csv"
}

var headers = []string{
	"Directory", "File", "Type", "Created", "CRC32", "Size",
	"Sheet", "Columns", "Row Count", "Truncated", "Schema Hash",
}

func (f *Formatter) Format(report *audit.Report, options formatters.FormatterOptions) (string, error) {
	if report == nil {
		return "", fmt.Errorf("no report to format")
	}

	var builder strings.Builder
	w := csv.NewWriter(&builder)
	if err := w.Write(headers); err != nil {
		return "", err
	}

	for _, dir := range report.Directories {
		for _, file := range dir.Files {
			for _, row := range f.rows(dir, file) {
				if err := w.Write(row); err != nil {
					return "", err
				}
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("error formatting CSV: %w", err)
	}
	return builder.String(), nil
}

// rows returns the inventory rows of one file.
func (f *Formatter) rows(dir core.DirectoryEntry, file core.FileRecord) [][]string {
	size := ""
	if file.FileSize != nil {
		size = strconv.FormatInt(*file.FileSize, 10)
	}
	base := []string{dir.Path, file.Name, string(file.FileType), file.Created, file.ContentHash, size}

	switch {
	case file.CSV != nil:
		m := file.CSV
		return [][]string{append(base, "", strings.Join(m.Columns, "|"),
			strconv.Itoa(m.RowCount), strconv.FormatBool(m.Truncated()), fmt.Sprintf("%d", m.Fingerprint))}
	case file.Excel != nil && len(file.Excel.Sheets) > 0:
		rows := make([][]string, 0, len(file.Excel.Sheets))
		for i := range file.Excel.Sheets {
			s := &file.Excel.Sheets[i]
			row := append(append([]string{}, base...), s.SheetName, strings.Join(s.Columns, "|"),
				strconv.Itoa(s.RowCount), strconv.FormatBool(s.Truncated()), fmt.Sprintf("%d", s.Fingerprint))
			rows = append(rows, row)
		}
		return rows
	default:
		return [][]string{append(base, "", "", "", "", "")}
	}
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
