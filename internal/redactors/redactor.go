// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package redactors

import (
	"regexp"
	"strings"
)

// Marker replaces every identifier removed from report text.
const Marker = "[REDACTED]"

// identifierLength is the digit count of a national health-style identifier.
const identifierLength = 10

// spacedIdentifierPattern matches the "nnn nnn nnnn" presentation form.
// RE2's \s is ASCII only, so vertical tab, NEL and the Unicode space
// separators (NBSP, thin space) are listed explicitly.
var spacedIdentifierPattern = regexp.MustCompile(`\d{3}[\s\v\x{85}\p{Z}]+\d{3}[\s\v\x{85}\p{Z}]+\d{4}`)

// Redact removes numeric identifiers from text before it is stored or reported.
//
// The spaced form is replaced first because it is the more specific shape; the
// result is then scanned for isolated runs of exactly ten digits. Digit runs that
// are shorter or longer than ten are left as they are.
func Redact(text string) string {
	if text == "" {
		return text
	}

	result := spacedIdentifierPattern.ReplaceAllLiteralString(text, Marker)
	return redactIsolatedRuns(result)
}

// RedactAll returns a redacted copy of values. The input slice is not modified.
func RedactAll(values []string) []string {
	if values == nil {
		return nil
	}
	redacted := make([]string, len(values))
	for i, v := range values {
		redacted[i] = Redact(v)
	}
	return redacted
}

// redactIsolatedRuns replaces maximal digit runs of exactly identifierLength.
func redactIsolatedRuns(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	i := 0
	for i < len(text) {
		if !isDigit(text[i]) {
			b.WriteByte(text[i])
			i++
			continue
		}

		start := i
		for i < len(text) && isDigit(text[i]) {
			i++
		}

		if i-start == identifierLength {
			b.WriteString(Marker)
		} else {
			b.WriteString(text[start:i])
		}
	}

	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
