// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

// DefaultMaxRows is the default per-file and per-sheet row counting cap.
const DefaultMaxRows = 524288

// Options controls per-file processing. It is passed by value and never
// modified during a scan.
type Options struct {
	EnableHash   bool
	MaxRows      int
	DocumentInfo bool
}

// DefaultOptions returns hashing enabled, the default row cap and no document info.
func DefaultOptions() Options {
	return Options{
		EnableHash: true,
		MaxRows:    DefaultMaxRows,
	}
}
