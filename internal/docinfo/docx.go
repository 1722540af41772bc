// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package docinfo

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
)

// maxAppPropertiesSize caps how much of docProps/app.xml is read.
const maxAppPropertiesSize = 1 << 20

const appPropertiesPath = "docProps/app.xml"

type appProperties struct {
	Pages string `xml:"Pages"`
}

// readDOCX reads the page count Word stores in the extended properties part.
func readDOCX(path string) (*Info, error) {
	reader, err := zip.OpenReader(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open DOCX archive: %w", err)
	}
	defer reader.Close()

	var part *zip.File
	for _, f := range reader.File {
		if f.Name == appPropertiesPath {
			part = f
			break
		}
	}
	if part == nil {
		return nil, fmt.Errorf("app properties not found in %s", filepath.Base(path))
	}

	rc, err := part.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open app properties: %w", err)
	}
	defer rc.Close()

	var props appProperties
	decoder := xml.NewDecoder(io.LimitReader(rc, maxAppPropertiesSize))
	decoder.Strict = false
	decoder.Entity = xml.HTMLEntity
	if err := decoder.Decode(&props); err != nil {
		return nil, fmt.Errorf("failed to parse app properties: %w", err)
	}

	pages, err := strconv.Atoi(strings.TrimSpace(props.Pages))
	if err != nil {
		return nil, fmt.Errorf("invalid page count %q: %w", props.Pages, err)
	}
	return &Info{PageCount: pages, Source: "docProps"}, nil
}
