// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"schema-audit/internal/checksum"
	"schema-audit/internal/redactors"
)

const utf8BOM = "\uFEFF"

// ExtractCSVFile opens path and runs ExtractCSV over it.
func ExtractCSVFile(path string, rowCap int) (*CSVMeta, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	return ExtractCSV(f, rowCap)
}

// ExtractCSV reads the header record and counts data records.
//
// Records that fail to parse, including ones with the wrong number of fields,
// are skipped and not counted. Counting stops once rowCap records have been
// seen; a rowCap below 1 disables the cap.
func ExtractCSV(r io.Reader, rowCap int) (*CSVMeta, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	meta := &CSVMeta{Columns: []string{}}

	header, err := reader.Read()
	switch {
	case errors.Is(err, io.EOF):
		meta.Fingerprint = checksum.Fingerprint(meta.Columns)
		return meta, nil
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}

	columns := make([]string, len(header))
	copy(columns, header)
	if len(columns) > 0 {
		columns[0] = strings.TrimPrefix(columns[0], utf8BOM)
	}
	meta.Columns = redactors.RedactAll(columns)

	for {
		_, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			return nil, fmt.Errorf("failed to read CSV records: %w", err)
		}

		meta.RowCount++
		if rowCap > 0 && meta.RowCount >= rowCap {
			meta.StoppedAt = intPtr(meta.RowCount)
			break
		}
	}

	meta.Fingerprint = checksum.Fingerprint(meta.Columns)
	return meta, nil
}
