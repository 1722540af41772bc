// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package audit

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-audit/internal/core"
	"schema-audit/internal/observability"
)

func settingsFor(dir string) Settings {
	return Settings{
		Directory:      dir,
		Options:        core.DefaultOptions(),
		FuzzyThreshold: DefaultFuzzyThreshold,
	}
}

func TestRun_SimilarHeadersClusterAndShareFingerprint(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte("Name,Age\nAnn,30\nBob,41\nCat,25\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.csv"), []byte("name, age\nDan,52\nEve,19\nFay,33\n"), 0o600))

	report, err := Run(settingsFor(dir), nil, nil)
	require.NoError(t, err)

	require.Len(t, report.Directories, 1)
	assert.Equal(t, ".", report.Directories[0].Path)
	require.Len(t, report.Directories[0].Files, 2)
	for _, f := range report.Directories[0].Files {
		require.NotNil(t, f.CSV)
		assert.Equal(t, 3, f.CSV.RowCount)
	}

	require.Len(t, report.FuzzySimilarityGroups, 1)
	assert.Equal(t, []string{"./a.csv", "./b.csv"}, report.FuzzySimilarityGroups[0].Sources)
	assert.Equal(t, 0, report.FuzzySimilarityGroups[0].ID)
	assert.Equal(t, DefaultFuzzyThreshold, report.FuzzySimilarityGroups[0].SimilarityScore)

	require.Len(t, report.ColumnSimilarityTable, 1)
	assert.Equal(t, []string{"./a.csv", "./b.csv"}, report.ColumnSimilarityTable[0].Sources)
	assert.Equal(t, []string{"Name", "Age"}, report.ColumnSimilarityTable[0].ExampleColumns)

	assert.Empty(t, report.CRC32SimilarityTable)
	assert.Equal(t, 2, report.Stats.FilesRecorded)
}

func TestRun_IdenticalFilesShareContentHash(t *testing.T) {
	dir := t.TempDir()
	content := []byte("id,value\n1,2\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.csv"), content, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "two.csv"), content, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "three.csv"), []byte("id,value\n1,3\n"), 0o600))

	report, err := Run(settingsFor(dir), nil, nil)
	require.NoError(t, err)

	require.Len(t, report.CRC32SimilarityTable, 1)
	assert.Equal(t, []string{"./one.csv", "./two.csv"}, report.CRC32SimilarityTable[0].Sources)
	assert.Len(t, report.CRC32SimilarityTable[0].Hash, 8)
}

func TestRun_FuzzyDisabled(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte("Name,Age\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.csv"), []byte("name,age\n"), 0o600))

	settings := settingsFor(dir)
	settings.FuzzyThreshold = 0
	report, err := Run(settings, nil, nil)
	require.NoError(t, err)

	assert.Empty(t, report.FuzzySimilarityGroups)
	assert.Len(t, report.ColumnSimilarityTable, 1)
}

func TestRun_MissingDirectory(t *testing.T) {
	_, err := Run(settingsFor(filepath.Join(t.TempDir(), "missing")), nil, nil)
	assert.ErrorIs(t, err, core.ErrRootNotFound)
}

func TestRun_ReportShape(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte("x\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "memo.eml"), []byte("Subject: hi\n"), 0o600))

	var debug bytes.Buffer
	observer := observability.New(true, &debug)
	report, err := Run(settingsFor(dir), observer, nil)
	require.NoError(t, err)
	assert.Equal(t, observer.RunID(), report.Stats.RunID)
	assert.NotEmpty(t, debug.String())

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{"scan_directory", "directories", "column_similarity_table", "crc32_similarity_table", "fuzzy_similarity_groups"} {
		assert.Contains(t, decoded, key)
	}
	assert.NotContains(t, decoded, "Stats")

	files := decoded["directories"].([]interface{})[0].(map[string]interface{})["files"].([]interface{})
	eml := files[1].(map[string]interface{})
	assert.Equal(t, "memo.eml", eml["name"])
	assert.Equal(t, "eml", eml["file_type"])
	assert.Contains(t, eml, "crc32_hash")
	assert.NotContains(t, eml, "file_size")
	assert.NotContains(t, eml, "csv_metadata")
	assert.NotContains(t, eml, "excel_metadata")
	assert.NotContains(t, eml, "document_info")
}
