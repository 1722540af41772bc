// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"path/filepath"
	"strings"

	"schema-audit/internal/docinfo"
	"schema-audit/internal/schema"
)

// FileType tags a record with the family of its source file.
type FileType string

const (
	TypeCSV   FileType = "csv"
	TypeExcel FileType = "excel"
	TypePDF   FileType = "pdf"
	TypeDOCX  FileType = "docx"
	TypeEML   FileType = "eml"
	TypeNone  FileType = "none"
)

var supportedExtensions = map[string]FileType{
	".csv":  TypeCSV,
	".xlsx": TypeExcel,
	".xls":  TypeExcel,
	".xlsm": TypeExcel,
	".xlsb": TypeExcel,
	".pdf":  TypePDF,
	".docx": TypeDOCX,
	".eml":  TypeEML,
}

// TypeForPath returns the file type for path's extension, matched
// case-insensitively. Unsupported files report TypeNone and false.
func TypeForPath(path string) (FileType, bool) {
	ft, ok := supportedExtensions[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return TypeNone, false
	}
	return ft, true
}

// IsSupported reports whether path has a supported extension.
func IsSupported(path string) bool {
	_, ok := TypeForPath(path)
	return ok
}

// FileRecord is the audit entry for one file. Every string in it has been redacted.
type FileRecord struct {
	Name        string            `json:"name" yaml:"name"`
	Created     string            `json:"created" yaml:"created"`
	FileType    FileType          `json:"file_type,omitempty" yaml:"file_type,omitempty"`
	FileSize    *int64            `json:"file_size,omitempty" yaml:"file_size,omitempty"`
	ContentHash string            `json:"crc32_hash,omitempty" yaml:"crc32_hash,omitempty"`
	CSV         *schema.CSVMeta   `json:"csv_metadata,omitempty" yaml:"csv_metadata,omitempty"`
	Excel       *schema.ExcelMeta `json:"excel_metadata,omitempty" yaml:"excel_metadata,omitempty"`
	Document    *docinfo.Info     `json:"document_info,omitempty" yaml:"document_info,omitempty"`
}

// Hashed reports whether the record carries a content hash.
func (r *FileRecord) Hashed() bool {
	return r.ContentHash != ""
}

// DirectoryEntry groups the records of one directory. Path is relative to the
// scan root, slash-separated and redacted; the root itself is ".".
type DirectoryEntry struct {
	Path  string       `json:"path" yaml:"path"`
	Files []FileRecord `json:"files" yaml:"files"`
}

// Label returns the source label used in duplicate indices for a file in d.
func (d DirectoryEntry) Label(file FileRecord) string {
	return d.Path + "/" + file.Name
}

// SheetLabel returns the source label of one worksheet of a file in d.
func (d DirectoryEntry) SheetLabel(file FileRecord, sheet string) string {
	return d.Label(file) + " (" + sheet + ")"
}
