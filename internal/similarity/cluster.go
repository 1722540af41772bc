// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package similarity

import "sort"

// Item is one column-bearing source: a CSV file or a single worksheet.
type Item struct {
	Columns []string
	Source  string
}

// Group is a cluster of sources with similar column sets.
type Group struct {
	ID                    int      `json:"group_id" yaml:"group_id"`
	SimilarityScore       float64  `json:"similarity_score" yaml:"similarity_score"`
	RepresentativeColumns []string `json:"representative_columns" yaml:"representative_columns"`
	Sources               []string `json:"sources" yaml:"sources"`
}

// Cluster groups items greedily in input order using a fresh Matcher.
func Cluster(items []Item, threshold float64) []Group {
	return NewMatcher(DefaultCacheSize).Cluster(items, threshold)
}

// Cluster groups items whose column sets score at least threshold against a seed.
//
// Items are visited in order. Each unclaimed item seeds a cluster and claims
// every later unclaimed item that scores at least threshold against the seed's
// own columns. Only clusters with two or more sources are returned. The
// representative columns are the sorted union of member columns and the
// reported score is the threshold. items is not modified.
func (m *Matcher) Cluster(items []Item, threshold float64) []Group {
	if len(items) < 2 {
		return nil
	}

	claimed := make([]bool, len(items))
	var groups []Group

	for i := range items {
		if claimed[i] {
			continue
		}
		claimed[i] = true

		seed := items[i]
		sources := []string{seed.Source}
		columns := make([]string, 0, len(seed.Columns))
		seen := make(map[string]struct{}, len(seed.Columns))
		columns = appendUnique(columns, seen, seed.Columns)

		for j := i + 1; j < len(items); j++ {
			if claimed[j] {
				continue
			}
			if m.ColumnSetSimilarity(seed.Columns, items[j].Columns) < threshold {
				continue
			}
			claimed[j] = true
			sources = append(sources, items[j].Source)
			columns = appendUnique(columns, seen, items[j].Columns)
		}

		if len(sources) < 2 {
			continue
		}
		sort.Strings(columns)
		groups = append(groups, Group{
			ID:                    len(groups),
			SimilarityScore:       threshold,
			RepresentativeColumns: columns,
			Sources:               sources,
		})
	}

	return groups
}

func appendUnique(dst []string, seen map[string]struct{}, values []string) []string {
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		dst = append(dst, v)
	}
	return dst
}
