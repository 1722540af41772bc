// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/extrame/xls"
)

// extractXLS reads a legacy BIFF workbook. The parser panics on some malformed
// input, so panics are recovered and reported as ErrCorruptWorkbook.
func extractXLS(path string, rowCap int) (meta *ExcelMeta, err error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	defer func() {
		if r := recover(); r != nil {
			meta = nil
			err = fmt.Errorf("%w: %v", ErrCorruptWorkbook, r)
		}
	}()

	wb, err := xls.OpenReader(f, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptWorkbook, err)
	}
	if wb == nil {
		return nil, fmt.Errorf("%w: no workbook stream", ErrCorruptWorkbook)
	}

	meta = &ExcelMeta{Sheets: []SheetMeta{}}
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil {
			continue
		}
		used, err := readXLSSheet(sheet)
		if err != nil {
			continue
		}
		meta.Sheets = append(meta.Sheets, used.sheetMeta(sheet.Name, rowCap))
	}
	return meta, nil
}

func readXLSSheet(sheet *xls.WorkSheet) (used *usedRange, err error) {
	defer func() {
		if r := recover(); r != nil {
			used = nil
			err = fmt.Errorf("failed to read sheet %q: %v", sheet.Name, r)
		}
	}()

	used = newUsedRange()
	for i := 0; i <= int(sheet.MaxRow); i++ {
		used.add(xlsRowCells(sheet, i))
	}
	return used, nil
}

// xlsRowCells returns the cells of row i, or nil for a row with no records.
func xlsRowCells(sheet *xls.WorkSheet, i int) (cells []string) {
	defer func() {
		if recover() != nil {
			cells = nil
		}
	}()

	row := sheet.Row(i)
	if row == nil {
		return nil
	}
	for c := row.FirstCol(); c < row.LastCol(); c++ {
		cells = append(cells, row.Col(c))
	}
	return cells
}
