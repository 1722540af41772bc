// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"fmt"
	"os"
	"path/filepath"

	"schema-audit/internal/checksum"
	"schema-audit/internal/docinfo"
	"schema-audit/internal/observability"
	"schema-audit/internal/platform"
	"schema-audit/internal/redactors"
	"schema-audit/internal/schema"
)

// Processor builds FileRecords. Failures of optional extraction steps are
// reported to the observer and leave the matching field empty.
type Processor struct {
	opts     Options
	observer *observability.StandardObserver
}

// NewProcessor creates a Processor. observer may be nil.
func NewProcessor(opts Options, observer *observability.StandardObserver) *Processor {
	return &Processor{opts: opts, observer: observer}
}

// ProcessFile builds the record for path without an observer.
func ProcessFile(path string, opts Options) (*FileRecord, error) {
	return NewProcessor(opts, nil).Process(path)
}

// Process builds the record for the file at path. An error means the file
// produces no record: it could not be stat'ed, is not a supported regular
// file, or could not be hashed.
func (p *Processor) Process(path string) (*FileRecord, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("not a regular file: %s", path)
	}

	fileType, ok := TypeForPath(path)
	if !ok {
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}

	record := &FileRecord{
		Name:     redactors.Redact(filepath.Base(path)),
		Created:  platform.FormatTimestamp(platform.CreationTime(path, info)),
		FileType: fileType,
	}

	if checksum.ShouldHash(p.opts.EnableHash, info.Size()) {
		hash, err := checksum.HashFile(path)
		if err != nil {
			return nil, err
		}
		record.ContentHash = hash
	} else {
		size := info.Size()
		record.FileSize = &size
	}

	switch fileType {
	case TypeCSV:
		record.CSV = p.extractCSV(path)
	case TypeExcel:
		record.Excel = p.extractExcel(path)
	case TypePDF, TypeDOCX:
		if p.opts.DocumentInfo {
			record.Document = p.readDocument(path)
		}
	}

	return record, nil
}

func (p *Processor) extractCSV(path string) *schema.CSVMeta {
	finishTiming := p.observer.StartTiming("schema", "extract_csv", path)
	finishStep := p.observer.Debug().StartStep("schema", "extract_csv", path)

	meta, err := schema.ExtractCSVFile(path, p.opts.MaxRows)
	if err != nil {
		finishTiming(false, map[string]interface{}{"error": err})
		finishStep(false, err.Error())
		return nil
	}

	finishTiming(true, map[string]interface{}{
		"columns":   len(meta.Columns),
		"rows":      meta.RowCount,
		"truncated": meta.Truncated(),
	})
	finishStep(true, fmt.Sprintf("%d columns, %d rows", len(meta.Columns), meta.RowCount))
	return meta
}

func (p *Processor) extractExcel(path string) *schema.ExcelMeta {
	finishTiming := p.observer.StartTiming("schema", "extract_excel", path)
	finishStep := p.observer.Debug().StartStep("schema", "extract_excel", path)

	meta, err := schema.ExtractExcel(path, p.opts.MaxRows)
	if err != nil {
		finishTiming(false, map[string]interface{}{"error": err})
		finishStep(false, err.Error())
		return nil
	}

	finishTiming(true, map[string]interface{}{"sheets": len(meta.Sheets)})
	finishStep(true, fmt.Sprintf("%d sheets", len(meta.Sheets)))
	return meta
}

func (p *Processor) readDocument(path string) *docinfo.Info {
	finishTiming := p.observer.StartTiming("docinfo", "read", path)

	info, err := docinfo.Read(path)
	if err != nil {
		finishTiming(false, map[string]interface{}{"error": err})
		p.observer.Debug().LogDetail("docinfo", err.Error())
		return nil
	}

	finishTiming(true, map[string]interface{}{"pages": info.PageCount})
	return info
}
