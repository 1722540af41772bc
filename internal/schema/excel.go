// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExtractExcel reads every worksheet of the workbook at path.
//
// The reader is chosen by extension: .xlsx and .xlsm use the OOXML reader,
// .xls uses the BIFF reader, and .xlsb returns ErrUnsupportedWorkbook.
// Worksheets that cannot be read are skipped.
func ExtractExcel(path string, rowCap int) (*ExcelMeta, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		return extractXLSX(path, rowCap)
	case ".xls":
		return extractXLS(path, rowCap)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedWorkbook, ext)
	}
}

func extractXLSX(path string, rowCap int) (*ExcelMeta, error) {
	f, err := excelize.OpenFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptWorkbook, err)
	}
	defer f.Close()

	meta := &ExcelMeta{Sheets: []SheetMeta{}}
	for _, name := range f.GetSheetList() {
		used, err := readXLSXSheet(f, name)
		if err != nil {
			continue
		}
		meta.Sheets = append(meta.Sheets, used.sheetMeta(name, rowCap))
	}
	return meta, nil
}

// readXLSXSheet streams a worksheet row by row. Cell values are read raw so
// number formats cannot turn a numeric cell into text.
func readXLSXSheet(f *excelize.File, sheet string) (*usedRange, error) {
	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to open sheet %q: %w", sheet, err)
	}
	defer rows.Close()

	used := newUsedRange()
	for rows.Next() {
		cells, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}
		used.add(cells)
	}
	if err := rows.Error(); err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return used, nil
}
