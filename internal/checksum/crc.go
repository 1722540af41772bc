// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package checksum

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/crc32"
)

// MaxHashSize is the largest file, in bytes, whose content is hashed.
// Files above it get no content hash at all; this is a cutoff, not a sample.
const MaxHashSize int64 = 128 * 1024

// chunkSize is the read buffer used while streaming file content.
const chunkSize = 8 * 1024

// ShouldHash reports whether a file of the given size gets a content hash.
func ShouldHash(enabled bool, size int64) bool {
	return enabled && size <= MaxHashSize
}

// HashReader streams r through CRC-32/IEEE and returns the checksum as eight
// lower-case hex digits.
func HashReader(r io.Reader) (string, error) {
	h := crc32.NewIEEE()
	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(h, r, buf); err != nil {
		return "", fmt.Errorf("failed to read content: %w", err)
	}
	return FormatHash(h.Sum32()), nil
}

// HashFile computes the content hash of the file at path.
func HashFile(path string) (string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("failed to open file for hashing: %w", err)
	}
	defer f.Close()

	return HashReader(f)
}

// FormatHash renders a checksum the way content hashes appear in reports.
func FormatHash(sum uint32) string {
	return fmt.Sprintf("%08x", sum)
}
