// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectHeader(t *testing.T) {
	tests := []struct {
		name      string
		rows      [][]string
		wantCols  []string
		wantIndex int
	}{
		{
			name:      "first row is text",
			rows:      [][]string{{"Name", "Age"}, {"Ann", "30"}},
			wantCols:  []string{"Name", "Age"},
			wantIndex: 0,
		},
		{
			name:      "numeric first row loses to text second row",
			rows:      [][]string{{"1", "2", "3"}, {"Name", "Age", "Town"}, {"Ann", "30", "Leeds"}},
			wantCols:  []string{"Name", "Age", "Town"},
			wantIndex: 1,
		},
		{
			name:      "title row loses to wider header",
			rows:      [][]string{{"Quarterly report"}, {}, {"Region", "Sales", "Cost"}},
			wantCols:  []string{"Region", "Sales", "Cost"},
			wantIndex: 2,
		},
		{
			name:      "ties keep the earliest row",
			rows:      [][]string{{"a", "b"}, {"c", "d"}},
			wantCols:  []string{"a", "b"},
			wantIndex: 0,
		},
		{
			name:      "cells trimmed and blanks dropped",
			rows:      [][]string{{"  Name ", "", "   ", "Age"}},
			wantCols:  []string{"Name", "Age"},
			wantIndex: 0,
		},
		{
			name:      "all numeric falls back to row zero",
			rows:      [][]string{{"1", "", "2.5"}, {"3", "4"}},
			wantCols:  []string{"1", "2.5"},
			wantIndex: 0,
		},
		{
			name:      "identifiers redacted",
			rows:      [][]string{{"Ref 1234567890", "Name"}},
			wantCols:  []string{"Ref [REDACTED]", "Name"},
			wantIndex: 0,
		},
		{
			name:      "no rows",
			rows:      nil,
			wantCols:  []string{},
			wantIndex: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, index := selectHeader(tt.rows)
			assert.Equal(t, tt.wantCols, cols)
			assert.Equal(t, tt.wantIndex, index)
		})
	}
}

func TestIsNumericCell(t *testing.T) {
	assert.True(t, isNumericCell("123"))
	assert.True(t, isNumericCell("1.5"))
	assert.True(t, isNumericCell("..."))
	assert.False(t, isNumericCell("-1"))
	assert.False(t, isNumericCell("1e5"))
	assert.False(t, isNumericCell("Age"))
}

func TestUsedRange(t *testing.T) {
	used := newUsedRange()
	for _, row := range [][]string{nil, {" "}, {"h1", "h2"}, {"1", "2"}, nil, {"3", "4"}, nil, {""}} {
		used.add(row)
	}

	assert.Equal(t, 4, used.height())
	assert.Len(t, used.candidates(), 4)
	assert.Equal(t, []string{"h1", "h2"}, used.candidates()[0])

	meta := used.sheetMeta("Data", 0)
	assert.Equal(t, []string{"h1", "h2"}, meta.Columns)
	assert.Equal(t, 3, meta.RowCount)
}

func TestUsedRange_Empty(t *testing.T) {
	used := newUsedRange()
	used.add(nil)
	used.add([]string{"", " "})

	assert.Equal(t, 0, used.height())
	assert.Empty(t, used.candidates())

	meta := used.sheetMeta("Blank", 10)
	assert.Equal(t, []string{}, meta.Columns)
	assert.Equal(t, 0, meta.RowCount)
	assert.Nil(t, meta.StoppedAt)
}

func TestSheetMeta_RowCap(t *testing.T) {
	used := newUsedRange()
	used.add([]string{"id"})
	for i := 0; i < 10; i++ {
		used.add([]string{"1"})
	}

	capped := used.sheetMeta("s", 4)
	assert.Equal(t, 4, capped.RowCount)
	if assert.NotNil(t, capped.StoppedAt) {
		assert.Equal(t, 4, *capped.StoppedAt)
	}

	exact := used.sheetMeta("s", 10)
	assert.Equal(t, 10, exact.RowCount)
	assert.Nil(t, exact.StoppedAt)
}
