// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package duplicates builds the three duplicate indices of an audit: groups of
// byte-identical files, groups of identical schemas, and fuzzy schema clusters.
package duplicates

import (
	"sort"

	"schema-audit/internal/core"
	"schema-audit/internal/similarity"
)

// ContentGroup lists sources that share a content hash.
type ContentGroup struct {
	Hash    string   `json:"hash" yaml:"hash"`
	Sources []string `json:"sources" yaml:"sources"`
}

// SchemaGroup lists sources that share a schema fingerprint.
type SchemaGroup struct {
	Hash           uint32   `json:"hash" yaml:"hash"`
	ExampleColumns []string `json:"example_columns" yaml:"example_columns"`
	Sources        []string `json:"sources" yaml:"sources"`
}

// Indices holds the duplicate indices of one scan.
type Indices struct {
	Schema  []SchemaGroup
	Content []ContentGroup
	Fuzzy   []similarity.Group
}

// Build derives all three indices from the scanned directories. Fuzzy
// clustering is skipped when threshold is not positive.
func Build(dirs []core.DirectoryEntry, threshold float64) Indices {
	indices := Indices{
		Schema:  SchemaGroups(dirs),
		Content: ContentGroups(dirs),
		Fuzzy:   []similarity.Group{},
	}
	if threshold > 0 {
		if groups := similarity.Cluster(Items(dirs), threshold); groups != nil {
			indices.Fuzzy = groups
		}
	}
	return indices
}

// ContentGroups groups hashed files by content hash. Only groups with two or
// more sources are returned, sorted by hash.
func ContentGroups(dirs []core.DirectoryEntry) []ContentGroup {
	byHash := make(map[string][]string)
	for _, dir := range dirs {
		for _, file := range dir.Files {
			if !file.Hashed() {
				continue
			}
			byHash[file.ContentHash] = append(byHash[file.ContentHash], dir.Label(file))
		}
	}

	groups := make([]ContentGroup, 0)
	for hash, sources := range byHash {
		if len(sources) < 2 {
			continue
		}
		groups = append(groups, ContentGroup{Hash: hash, Sources: sources})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Hash < groups[j].Hash })
	return groups
}

// SchemaGroups groups CSV files and worksheets by schema fingerprint. The
// example columns are those of the first source seen. Only groups with two or
// more sources are returned, sorted by hash.
func SchemaGroups(dirs []core.DirectoryEntry) []SchemaGroup {
	byHash := make(map[uint32]*SchemaGroup)
	var order []uint32

	add := func(hash uint32, columns []string, source string) {
		group, ok := byHash[hash]
		if !ok {
			group = &SchemaGroup{Hash: hash, ExampleColumns: columns}
			byHash[hash] = group
			order = append(order, hash)
		}
		group.Sources = append(group.Sources, source)
	}

	for _, dir := range dirs {
		for _, file := range dir.Files {
			if file.CSV != nil {
				add(file.CSV.Fingerprint, file.CSV.Columns, dir.Label(file))
			}
			if file.Excel != nil {
				for _, sheet := range file.Excel.Sheets {
					add(sheet.Fingerprint, sheet.Columns, dir.SheetLabel(file, sheet.SheetName))
				}
			}
		}
	}

	groups := make([]SchemaGroup, 0)
	for _, hash := range order {
		if group := byHash[hash]; len(group.Sources) >= 2 {
			groups = append(groups, *group)
		}
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Hash < groups[j].Hash })
	return groups
}

// Items flattens the column-bearing sources of dirs in walk order: one item
// per CSV file and one per worksheet.
func Items(dirs []core.DirectoryEntry) []similarity.Item {
	var items []similarity.Item
	for _, dir := range dirs {
		for _, file := range dir.Files {
			if file.CSV != nil {
				items = append(items, similarity.Item{Columns: file.CSV.Columns, Source: dir.Label(file)})
			}
			if file.Excel != nil {
				for _, sheet := range file.Excel.Sheets {
					items = append(items, similarity.Item{
						Columns: sheet.Columns,
						Source:  dir.SheetLabel(file, sheet.SheetName),
					})
				}
			}
		}
	}
	return items
}
