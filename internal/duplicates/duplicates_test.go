// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package duplicates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-audit/internal/checksum"
	"schema-audit/internal/core"
	"schema-audit/internal/schema"
)

func csvFile(name, hash string, columns ...string) core.FileRecord {
	return core.FileRecord{
		Name:        name,
		FileType:    core.TypeCSV,
		ContentHash: hash,
		CSV: &schema.CSVMeta{
			Columns:     columns,
			Fingerprint: checksum.Fingerprint(columns),
		},
	}
}

func excelFile(name string, sheets ...schema.SheetMeta) core.FileRecord {
	size := int64(200000)
	return core.FileRecord{
		Name:     name,
		FileType: core.TypeExcel,
		FileSize: &size,
		Excel:    &schema.ExcelMeta{Sheets: sheets},
	}
}

func sheet(name string, columns ...string) schema.SheetMeta {
	return schema.SheetMeta{SheetName: name, Columns: columns, Fingerprint: checksum.Fingerprint(columns)}
}

func fixture() []core.DirectoryEntry {
	return []core.DirectoryEntry{
		{Path: ".", Files: []core.FileRecord{
			csvFile("a.csv", "0000aaaa", "Name", "Age"),
			csvFile("b.csv", "0000bbbb", "name", " age"),
			csvFile("copy.csv", "0000aaaa", "Name", "Age"),
		}},
		{Path: "sub", Files: []core.FileRecord{
			excelFile("book.xlsx", sheet("People", "AGE", "NAME"), sheet("Orders", "Order", "Total")),
			csvFile("orders.csv", "0000cccc", "Invoice", "Amount"),
			{Name: "memo.pdf", FileType: core.TypePDF, ContentHash: "0000bbbb"},
		}},
	}
}

func TestContentGroups(t *testing.T) {
	groups := ContentGroups(fixture())

	require.Len(t, groups, 2)
	assert.Equal(t, "0000aaaa", groups[0].Hash)
	assert.Equal(t, []string{"./a.csv", "./copy.csv"}, groups[0].Sources)
	assert.Equal(t, "0000bbbb", groups[1].Hash)
	assert.Equal(t, []string{"./b.csv", "sub/memo.pdf"}, groups[1].Sources)
}

func TestSchemaGroups(t *testing.T) {
	groups := SchemaGroups(fixture())

	require.Len(t, groups, 1)
	assert.Equal(t, checksum.Fingerprint([]string{"name", "age"}), groups[0].Hash)
	assert.Equal(t, []string{"Name", "Age"}, groups[0].ExampleColumns)
	assert.Equal(t, []string{"./a.csv", "./b.csv", "./copy.csv", "sub/book.xlsx (People)"}, groups[0].Sources)
}

func TestSchemaGroups_SortedByHash(t *testing.T) {
	dirs := []core.DirectoryEntry{{Path: ".", Files: []core.FileRecord{
		csvFile("1.csv", "", "zeta"),
		csvFile("2.csv", "", "alpha"),
		csvFile("3.csv", "", "zeta"),
		csvFile("4.csv", "", "alpha"),
	}}}

	groups := SchemaGroups(dirs)
	require.Len(t, groups, 2)
	assert.Less(t, groups[0].Hash, groups[1].Hash)
}

func TestItems(t *testing.T) {
	items := Items(fixture())

	var sources []string
	for _, item := range items {
		sources = append(sources, item.Source)
	}
	assert.Equal(t, []string{
		"./a.csv", "./b.csv", "./copy.csv",
		"sub/book.xlsx (People)", "sub/book.xlsx (Orders)", "sub/orders.csv",
	}, sources)
}

func TestBuild(t *testing.T) {
	indices := Build(fixture(), 0.8)

	assert.Len(t, indices.Content, 2)
	assert.Len(t, indices.Schema, 1)
	require.Len(t, indices.Fuzzy, 1)
	assert.Equal(t, []string{"./a.csv", "./b.csv", "./copy.csv", "sub/book.xlsx (People)"}, indices.Fuzzy[0].Sources)
}

func TestBuild_FuzzyDisabled(t *testing.T) {
	indices := Build(fixture(), 0)

	assert.Empty(t, indices.Fuzzy)
	assert.NotNil(t, indices.Fuzzy)
	assert.Len(t, indices.Schema, 1)
}

func TestBuild_Empty(t *testing.T) {
	indices := Build(nil, 0.8)

	assert.Empty(t, indices.Content)
	assert.Empty(t, indices.Schema)
	assert.Empty(t, indices.Fuzzy)
}
