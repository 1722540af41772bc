// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package docinfo reads structural metadata from PDF and DOCX files.
// Document text is never extracted.
package docinfo

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrNoDocumentInfo is returned when a file type carries no readable document metadata.
var ErrNoDocumentInfo = errors.New("no document info for file type")

// Info is the structural metadata recorded for a document.
type Info struct {
	PageCount int    `json:"page_count" yaml:"page_count"`
	Source    string `json:"page_count_source" yaml:"page_count_source"`
}

// Read returns document metadata for the file at path based on its extension.
func Read(path string) (*Info, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".pdf":
		return readPDF(path)
	case ".docx":
		return readDOCX(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrNoDocumentInfo, ext)
	}
}
