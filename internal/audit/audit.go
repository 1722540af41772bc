// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package audit runs a full scan and assembles the report written to disk.
package audit

import (
	"time"

	"schema-audit/internal/core"
	"schema-audit/internal/duplicates"
	"schema-audit/internal/observability"
	"schema-audit/internal/similarity"
)

// DefaultFuzzyThreshold is the default minimum column-set similarity for fuzzy clusters.
const DefaultFuzzyThreshold = 0.8

// Settings is the immutable input of one audit run.
type Settings struct {
	Directory      string
	Options        core.Options
	FuzzyThreshold float64
}

// Report is the serialized result of an audit.
type Report struct {
	ScanDirectory         string                    `json:"scan_directory" yaml:"scan_directory"`
	Directories           []core.DirectoryEntry     `json:"directories" yaml:"directories"`
	ColumnSimilarityTable []duplicates.SchemaGroup  `json:"column_similarity_table" yaml:"column_similarity_table"`
	CRC32SimilarityTable  []duplicates.ContentGroup `json:"crc32_similarity_table" yaml:"crc32_similarity_table"`
	FuzzySimilarityGroups []similarity.Group        `json:"fuzzy_similarity_groups" yaml:"fuzzy_similarity_groups"`

	Stats Stats `json:"-" yaml:"-"`
}

// Stats summarizes a run for console output. It is not serialized.
type Stats struct {
	RunID          string
	FilesFound     int
	FilesRecorded  int
	FilesDropped   int
	FuzzyThreshold float64
	HashingEnabled bool
	Duration       time.Duration
}

// Run scans settings.Directory and builds the duplicate indices.
// observer and progress may be nil.
func Run(settings Settings, observer *observability.StandardObserver, progress core.ProgressFunc) (*Report, error) {
	start := time.Now()
	finishTiming := observer.StartTiming("audit", "run", settings.Directory)

	scan, err := core.NewScanner(settings.Options, observer, progress).Scan(settings.Directory)
	if err != nil {
		finishTiming(false, map[string]interface{}{"error": err})
		return nil, err
	}

	finishStep := observer.Debug().StartStep("duplicates", "build_indices", scan.Root)
	indices := duplicates.Build(scan.Directories, settings.FuzzyThreshold)
	finishStep(true, "")

	report := &Report{
		ScanDirectory:         scan.Root,
		Directories:           scan.Directories,
		ColumnSimilarityTable: indices.Schema,
		CRC32SimilarityTable:  indices.Content,
		FuzzySimilarityGroups: indices.Fuzzy,
		Stats: Stats{
			RunID:          observer.RunID(),
			FilesFound:     scan.FilesFound,
			FilesRecorded:  scan.FilesFound - scan.FilesDropped,
			FilesDropped:   scan.FilesDropped,
			FuzzyThreshold: settings.FuzzyThreshold,
			HashingEnabled: settings.Options.EnableHash,
			Duration:       time.Since(start),
		},
	}

	finishTiming(true, map[string]interface{}{
		"files":          report.Stats.FilesRecorded,
		"schema_groups":  len(report.ColumnSimilarityTable),
		"content_groups": len(report.CRC32SimilarityTable),
		"fuzzy_groups":   len(report.FuzzySimilarityGroups),
	})
	return report, nil
}
