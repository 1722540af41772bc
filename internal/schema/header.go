// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"strings"
	"unicode"

	"schema-audit/internal/checksum"
	"schema-audit/internal/redactors"
)

// headerScanRows is how many leading rows of a sheet are considered as header candidates.
const headerScanRows = 5

// usedRange accumulates the rows of a sheet as they are streamed. Leading and
// trailing fully empty rows are excluded from the height; interior empty rows count.
type usedRange struct {
	index int
	first int
	last  int
	head  [][]string
}

func newUsedRange() *usedRange {
	return &usedRange{first: -1, last: -1}
}

// add records the next row of the sheet.
func (u *usedRange) add(cells []string) {
	if !isBlankRow(cells) {
		if u.first < 0 {
			u.first = u.index
		}
		u.last = u.index
	}

	if u.first >= 0 && u.index-u.first < headerScanRows {
		row := make([]string, len(cells))
		copy(row, cells)
		u.head = append(u.head, row)
	}
	u.index++
}

func (u *usedRange) height() int {
	if u.first < 0 {
		return 0
	}
	return u.last - u.first + 1
}

// candidates returns the header candidate rows, at most min(headerScanRows, height).
func (u *usedRange) candidates() [][]string {
	n := u.height()
	if n > len(u.head) {
		n = len(u.head)
	}
	return u.head[:n]
}

// sheetMeta applies the header heuristic and row cap to a streamed sheet.
// Unlike the CSV reader, which marks truncation as soon as the data row
// count reaches the cap, a workbook sheet is only marked when its used range
// holds more data rows than the cap. A sheet with exactly rowCap data rows
// reports RowCount == rowCap and no StoppedAt.
func (u *usedRange) sheetMeta(name string, rowCap int) SheetMeta {
	columns, headerIndex := selectHeader(u.candidates())

	rowCount := u.height() - (headerIndex + 1)
	if rowCount < 0 {
		rowCount = 0
	}

	meta := SheetMeta{
		SheetName:   redactors.Redact(name),
		Columns:     columns,
		RowCount:    rowCount,
		Fingerprint: checksum.Fingerprint(columns),
	}
	if rowCap > 0 && rowCount > rowCap {
		meta.RowCount = rowCap
		meta.StoppedAt = intPtr(rowCap)
	}
	return meta
}

// selectHeader picks the candidate row with the most textual cells.
// The strictly highest score wins and ties keep the earliest row. When no row
// has a textual cell, row 0 is used.
func selectHeader(rows [][]string) ([]string, int) {
	bestScore := 0
	bestIndex := 0
	var best []string

	for i, row := range rows {
		cells, score := scoreRow(row)
		if score > bestScore {
			bestScore = score
			bestIndex = i
			best = cells
		}
	}

	if best == nil {
		bestIndex = 0
		if len(rows) > 0 {
			best, _ = scoreRow(rows[0])
		}
	}
	if best == nil {
		best = []string{}
	}
	return best, bestIndex
}

// scoreRow returns the redacted non-empty cells of row and the number of them
// that are not purely numeric.
func scoreRow(row []string) ([]string, int) {
	var cells []string
	score := 0
	for _, raw := range row {
		cell := strings.TrimSpace(raw)
		if cell == "" {
			continue
		}
		cells = append(cells, redactors.Redact(cell))
		if !isNumericCell(cell) {
			score++
		}
	}
	return cells, score
}

// isNumericCell reports whether every rune of s is a number or '.'.
func isNumericCell(s string) bool {
	for _, r := range s {
		if r != '.' && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
