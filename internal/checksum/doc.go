// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package checksum computes the two CRC-32 values the audit report is keyed on.
//
//   - Content hash: CRC-32/IEEE of a file's bytes, streamed in fixed-size chunks.
//     It is only computed for small files (see ShouldHash); larger files report
//     their size instead.
//   - Schema fingerprint: CRC-32/IEEE of a normalized, order-independent
//     rendering of a column-name list.
//
// # Normalization Strategy
//
// Fingerprinting normalizes each column name before hashing:
//  1. Convert to lowercase
//  2. Delete every character that is not a letter or digit
//  3. Drop names that become empty
//  4. Sort the remaining names and join them with ","
//
// Two sheets whose headers differ only in order, case, spacing or punctuation
// therefore share a fingerprint. Synonyms and abbreviations do not; the fuzzy
// clustering in package similarity covers those.
package checksum
