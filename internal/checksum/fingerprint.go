// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package checksum

import (
	"sort"
	"strings"
	"unicode"

	"github.com/klauspost/crc32"
)

// Fingerprint returns the schema fingerprint of a column-name list.
// It depends only on the set of normalized names, so reordering columns or
// adding whitespace-only or punctuation-only names leaves it unchanged.
func Fingerprint(columns []string) uint32 {
	normalized := NormalizeColumns(columns)
	return crc32.ChecksumIEEE([]byte(strings.Join(normalized, ",")))
}

// NormalizeColumns returns the sorted, normalized form of columns used for
// fingerprinting. Names that normalize to the empty string are dropped.
func NormalizeColumns(columns []string) []string {
	normalized := make([]string, 0, len(columns))
	for _, col := range columns {
		if name := normalizeColumn(col); name != "" {
			normalized = append(normalized, name)
		}
	}
	sort.Strings(normalized)
	return normalized
}

// normalizeColumn lowercases name and deletes every non-alphanumeric rune.
func normalizeColumn(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
