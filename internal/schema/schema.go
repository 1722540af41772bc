// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package schema extracts column headers and row counts from tabular files.
// Row data is counted and discarded; only redacted header text is kept.
package schema

import "errors"

var (
	// ErrMalformedHeader is returned when a CSV header record cannot be parsed.
	ErrMalformedHeader = errors.New("malformed CSV header")

	// ErrUnsupportedWorkbook is returned for workbook formats with no available reader.
	ErrUnsupportedWorkbook = errors.New("unsupported workbook format")

	// ErrCorruptWorkbook is returned when a workbook cannot be opened or parsed.
	ErrCorruptWorkbook = errors.New("corrupt workbook")
)

// CSVMeta describes the header and size of a CSV file.
type CSVMeta struct {
	Columns     []string `json:"columns" yaml:"columns"`
	RowCount    int      `json:"row_count" yaml:"row_count"`
	Fingerprint uint32   `json:"column_similarity_hash" yaml:"column_similarity_hash"`
	StoppedAt   *int     `json:"stopped_row_count_at,omitempty" yaml:"stopped_row_count_at,omitempty"`
}

// Truncated reports whether row counting stopped at the cap.
func (m *CSVMeta) Truncated() bool {
	return m.StoppedAt != nil
}

// SheetMeta describes one worksheet of a workbook.
type SheetMeta struct {
	SheetName   string   `json:"sheet_name" yaml:"sheet_name"`
	Columns     []string `json:"columns" yaml:"columns"`
	RowCount    int      `json:"row_count" yaml:"row_count"`
	Fingerprint uint32   `json:"column_similarity_hash" yaml:"column_similarity_hash"`
	StoppedAt   *int     `json:"stopped_row_count_at,omitempty" yaml:"stopped_row_count_at,omitempty"`
}

// Truncated reports whether the sheet's row count was clamped to the cap.
func (m *SheetMeta) Truncated() bool {
	return m.StoppedAt != nil
}

// ExcelMeta holds one entry per readable worksheet, in workbook order.
type ExcelMeta struct {
	Sheets []SheetMeta `json:"sheets" yaml:"sheets"`
}

func intPtr(v int) *int {
	return &v
}
