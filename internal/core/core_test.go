// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-audit/internal/checksum"
)

var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}$`)

func writeFile(t *testing.T, root, rel string, content []byte) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestTypeForPath(t *testing.T) {
	tests := []struct {
		path string
		want FileType
		ok   bool
	}{
		{"a.csv", TypeCSV, true},
		{"A.CSV", TypeCSV, true},
		{"book.xlsx", TypeExcel, true},
		{"book.XLS", TypeExcel, true},
		{"book.xlsm", TypeExcel, true},
		{"book.xlsb", TypeExcel, true},
		{"doc.pdf", TypePDF, true},
		{"doc.docx", TypeDOCX, true},
		{"mail.eml", TypeEML, true},
		{"notes.txt", TypeNone, false},
		{"README", TypeNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := TypeForPath(tt.path)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestCollectFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b.csv", []byte("x\n"))
	writeFile(t, root, "a.CSV", []byte("x\n"))
	writeFile(t, root, "notes.txt", []byte("x\n"))
	writeFile(t, root, "sub/deep/report.pdf", []byte("x"))
	writeFile(t, root, "sub/mail.eml", []byte("x"))

	files, err := CollectFiles(root)
	require.NoError(t, err)

	var rel []string
	for _, f := range files {
		r, err := filepath.Rel(root, f)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}
	assert.Equal(t, []string{"a.CSV", "b.csv", "sub/deep/report.pdf", "sub/mail.eml"}, rel)
}

func TestProcessFile_CSV(t *testing.T) {
	content := []byte("Name,Age\nAnn,30\n")
	path := writeFile(t, t.TempDir(), "patients_1234567890.csv", content)

	record, err := ProcessFile(path, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "patients_[REDACTED].csv", record.Name)
	assert.Regexp(t, timestampPattern, record.Created)
	assert.Equal(t, TypeCSV, record.FileType)
	assert.True(t, record.Hashed())
	assert.Nil(t, record.FileSize)

	want, err := checksum.HashReader(bytes.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, want, record.ContentHash)

	require.NotNil(t, record.CSV)
	assert.Equal(t, []string{"Name", "Age"}, record.CSV.Columns)
	assert.Equal(t, 1, record.CSV.RowCount)
	assert.Nil(t, record.Excel)
}

func TestProcessFile_HashPolicy(t *testing.T) {
	dir := t.TempDir()
	small := writeFile(t, dir, "small.pdf", []byte("%PDF-1.4"))
	large := writeFile(t, dir, "large.pdf", bytes.Repeat([]byte("a"), int(checksum.MaxHashSize)+1))

	record, err := ProcessFile(large, DefaultOptions())
	require.NoError(t, err)
	assert.False(t, record.Hashed())
	require.NotNil(t, record.FileSize)
	assert.Equal(t, checksum.MaxHashSize+1, *record.FileSize)

	opts := DefaultOptions()
	opts.EnableHash = false
	record, err = ProcessFile(small, opts)
	require.NoError(t, err)
	assert.False(t, record.Hashed())
	require.NotNil(t, record.FileSize)
	assert.Equal(t, int64(8), *record.FileSize)
	assert.Nil(t, record.Document, "document info is off by default")
}

func TestProcessFile_FeatureFailureKeepsRecord(t *testing.T) {
	dir := t.TempDir()
	csvPath := writeFile(t, dir, "bad.csv", []byte("a\"b,c\n1,2\n"))
	xlsxPath := writeFile(t, dir, "bad.xlsx", []byte("not a workbook"))
	pdfPath := writeFile(t, dir, "bad.pdf", []byte("not a pdf"))

	opts := DefaultOptions()
	opts.DocumentInfo = true

	record, err := ProcessFile(csvPath, opts)
	require.NoError(t, err)
	assert.Equal(t, TypeCSV, record.FileType)
	assert.Nil(t, record.CSV)

	record, err = ProcessFile(xlsxPath, opts)
	require.NoError(t, err)
	assert.Equal(t, TypeExcel, record.FileType)
	assert.Nil(t, record.Excel)

	record, err = ProcessFile(pdfPath, opts)
	require.NoError(t, err)
	assert.Equal(t, TypePDF, record.FileType)
	assert.Nil(t, record.Document)
}

func TestProcessFile_Dropped(t *testing.T) {
	dir := t.TempDir()

	_, err := ProcessFile(filepath.Join(dir, "missing.csv"), DefaultOptions())
	assert.Error(t, err)

	_, err = ProcessFile(writeFile(t, dir, "notes.txt", []byte("x")), DefaultOptions())
	assert.Error(t, err)
}

func TestScan_MissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"), DefaultOptions())
	assert.ErrorIs(t, err, ErrRootNotFound)

	file := writeFile(t, t.TempDir(), "a.csv", []byte("x\n"))
	_, err = Scan(file, DefaultOptions())
	assert.ErrorIs(t, err, ErrRootNotFound)
}

func TestScan_GroupsByDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.csv", []byte("x\n1\n"))
	writeFile(t, root, "1234567890/b.csv", []byte("y\n"))
	writeFile(t, root, "zeta/c.eml", []byte("mail"))
	writeFile(t, root, "zeta/b.pdf", []byte("pdf"))
	writeFile(t, root, "ignored.txt", []byte("x"))

	var calls [][2]int
	scanner := NewScanner(DefaultOptions(), nil, func(completed, total int) {
		calls = append(calls, [2]int{completed, total})
	})

	result, err := scanner.Scan(root)
	require.NoError(t, err)

	resolved, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, resolved, result.Root)
	assert.Equal(t, 4, result.FilesFound)
	assert.Equal(t, 0, result.FilesDropped)

	require.Len(t, result.Directories, 3)
	assert.Equal(t, ".", result.Directories[0].Path)
	assert.Equal(t, "[REDACTED]", result.Directories[1].Path)
	assert.Equal(t, "zeta", result.Directories[2].Path)

	zeta := result.Directories[2]
	require.Len(t, zeta.Files, 2)
	assert.Equal(t, "b.pdf", zeta.Files[0].Name)
	assert.Equal(t, "c.eml", zeta.Files[1].Name)
	assert.Equal(t, "zeta/b.pdf", zeta.Label(zeta.Files[0]))
	assert.Equal(t, "zeta/b.pdf (Sheet1)", zeta.SheetLabel(zeta.Files[0], "Sheet1"))

	assert.Equal(t, [][2]int{{0, 4}, {1, 4}, {2, 4}, {3, 4}, {4, 4}}, calls)
}

func TestScan_EmptyDirectory(t *testing.T) {
	result, err := Scan(t.TempDir(), DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, result.Directories)
	assert.NotNil(t, result.Directories)
}
