// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package similarity scores how alike two column-name lists are and groups
// tabular sources whose headers are close but not identical.
package similarity

import (
	"strings"

	"github.com/agext/levenshtein"
	lru "github.com/hashicorp/golang-lru/v2"
)

// NameThreshold is the per-name score a column must exceed to count as matched.
const NameThreshold = 0.8

// DefaultCacheSize bounds the number of memoized name pairs held by a Matcher.
const DefaultCacheSize = 4096

type namePair struct {
	a, b string
}

// Matcher compares column names and memoizes per-name scores. A Matcher is not
// safe for concurrent use.
type Matcher struct {
	params *levenshtein.Params
	cache  *lru.Cache[namePair, float64]
}

// NewMatcher returns a Matcher whose cache holds up to size name pairs. A size
// below 1 disables memoization.
func NewMatcher(size int) *Matcher {
	m := &Matcher{params: levenshtein.NewParams()}
	if size > 0 {
		cache, err := lru.New[namePair, float64](size)
		if err == nil {
			m.cache = cache
		}
	}
	return m
}

// NameSimilarity scores two column names in [0,1]. Names are compared
// case-insensitively with surrounding whitespace ignored, using edit-distance
// similarity with a bonus for a shared prefix.
func (m *Matcher) NameSimilarity(a, b string) float64 {
	key := namePair{a: foldName(a), b: foldName(b)}
	if m.cache != nil {
		if score, ok := m.cache.Get(key); ok {
			return score
		}
	}

	score := levenshtein.Match(key.a, key.b, m.params)
	if m.cache != nil {
		m.cache.Add(key, score)
	}
	return score
}

// ColumnSetSimilarity returns the fuzzy Jaccard similarity of two column lists.
//
// Each name in a is matched against its best-scoring name in b; names whose best
// score exceeds NameThreshold count as matched. The result is
// matched / (len(a) + len(b) - matched). Matches are counted from a only, so
// swapping the arguments can change the result.
func (m *Matcher) ColumnSetSimilarity(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	matched := 0
	for _, left := range a {
		best := 0.0
		for _, right := range b {
			if score := m.NameSimilarity(left, right); score > best {
				best = score
			}
		}
		if best > NameThreshold {
			matched++
		}
	}

	union := len(a) + len(b) - matched
	if union <= 0 {
		return 1.0
	}
	return float64(matched) / float64(union)
}

// ColumnSetSimilarity scores a against b with an unmemoized Matcher.
func ColumnSetSimilarity(a, b []string) float64 {
	return NewMatcher(0).ColumnSetSimilarity(a, b)
}

func foldName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
