// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package docinfo

import (
	"fmt"
	"path/filepath"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// readPDF counts pages with pdfcpu and falls back to the more lenient
// ledongthuc/pdf reader for files pdfcpu rejects.
func readPDF(path string) (*Info, error) {
	path = filepath.Clean(path)

	ctx, err := api.ReadContextFile(path)
	if err == nil && ctx.PageCount > 0 {
		return &Info{PageCount: ctx.PageCount, Source: "pdfcpu"}, nil
	}

	pages, fallbackErr := lenientPageCount(path)
	if fallbackErr != nil {
		if err == nil {
			err = fallbackErr
		}
		return nil, fmt.Errorf("failed to read PDF page count: %w", err)
	}
	return &Info{PageCount: pages, Source: "pdf"}, nil
}

func lenientPageCount(path string) (pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF reader panic: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return r.NumPage(), nil
}
