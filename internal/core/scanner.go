// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"schema-audit/internal/observability"
	"schema-audit/internal/redactors"
)

// ErrRootNotFound is returned when the scan root is missing or not a directory.
var ErrRootNotFound = errors.New("scan directory does not exist")

// ProgressFunc is called after each file with the number of files completed
// and the total number of files to process.
type ProgressFunc func(completed, total int)

// ScanResult holds the directory listing produced by a scan.
type ScanResult struct {
	// Root is the absolute, symlink-resolved scan root.
	Root        string
	Directories []DirectoryEntry
	// FilesFound counts supported files seen by the walk.
	FilesFound int
	// FilesDropped counts files that produced no record.
	FilesDropped int
}

// Scanner walks a directory tree and builds FileRecords file by file.
type Scanner struct {
	processor *Processor
	observer  *observability.StandardObserver
	progress  ProgressFunc
}

// NewScanner creates a Scanner. observer and progress may be nil.
func NewScanner(opts Options, observer *observability.StandardObserver, progress ProgressFunc) *Scanner {
	return &Scanner{
		processor: NewProcessor(opts, observer),
		observer:  observer,
		progress:  progress,
	}
}

// Scan processes every supported file under root without an observer.
func Scan(root string, opts Options) (*ScanResult, error) {
	return NewScanner(opts, nil, nil).Scan(root)
}

// ResolveRoot returns the absolute, symlink-resolved form of root, or
// ErrRootNotFound if it does not name a directory.
func ResolveRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}
	info, err := os.Stat(resolved)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}
	return resolved, nil
}

// Scan processes every supported file under root. Files that fail to process
// are dropped. Directories are sorted by redacted path; files keep walk order.
func (s *Scanner) Scan(root string) (*ScanResult, error) {
	resolved, err := ResolveRoot(root)
	if err != nil {
		return nil, err
	}

	debugObs := s.observer.Debug()
	finishStep := debugObs.StartStep("core", "scan", resolved)

	files, err := CollectFiles(resolved)
	if err != nil {
		finishStep(false, err.Error())
		return nil, fmt.Errorf("failed to walk %s: %w", resolved, err)
	}
	debugObs.LogMetric("core", "files_found", len(files))

	result := &ScanResult{Root: resolved, FilesFound: len(files)}
	byDir := make(map[string]*DirectoryEntry)

	if s.progress != nil {
		s.progress(0, len(files))
	}
	for i, path := range files {
		record, err := s.processor.Process(path)
		if err != nil {
			result.FilesDropped++
			debugObs.LogDetail("core", fmt.Sprintf("dropped %s: %v", redactors.Redact(path), err))
		} else {
			dir := relativeDir(resolved, path)
			entry, ok := byDir[dir]
			if !ok {
				entry = &DirectoryEntry{Path: dir}
				byDir[dir] = entry
			}
			entry.Files = append(entry.Files, *record)
		}

		if s.progress != nil {
			s.progress(i+1, len(files))
		}
	}

	result.Directories = make([]DirectoryEntry, 0, len(byDir))
	for _, entry := range byDir {
		result.Directories = append(result.Directories, *entry)
	}
	sort.SliceStable(result.Directories, func(i, j int) bool {
		return result.Directories[i].Path < result.Directories[j].Path
	})

	debugObs.LogMetric("core", "directories", len(result.Directories))
	debugObs.LogMetric("core", "files_dropped", result.FilesDropped)
	finishStep(true, "")
	return result, nil
}

// relativeDir returns the redacted, slash-separated directory of path
// relative to root.
func relativeDir(root, path string) string {
	rel, err := filepath.Rel(root, filepath.Dir(path))
	if err != nil {
		rel = filepath.Dir(path)
	}
	return redactors.Redact(filepath.ToSlash(rel))
}
