// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestBar(buf *bytes.Buffer, elapsed time.Duration) *Bar {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &Bar{
		out:   buf,
		start: start,
		now:   func() time.Time { return start.Add(elapsed) },
	}
}

func TestShouldSuppress(t *testing.T) {
	assert.False(t, ShouldSuppress(false, false, true))
	assert.True(t, ShouldSuppress(true, false, true))
	assert.True(t, ShouldSuppress(false, true, true))
	assert.True(t, ShouldSuppress(false, false, false))
}

func TestBar_Start(t *testing.T) {
	var buf bytes.Buffer
	newTestBar(&buf, 0).Update(0, 4)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\r["))
	assert.Contains(t, out, strings.Repeat("░", barWidth))
	assert.Contains(t, out, "0/4 files (0.0%)")
	assert.NotContains(t, out, "ETA")
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestBar_HalfwayWithETA(t *testing.T) {
	var buf bytes.Buffer
	newTestBar(&buf, 10*time.Second).Update(2, 4)

	out := buf.String()
	assert.Contains(t, out, strings.Repeat("█", barWidth/2)+strings.Repeat("░", barWidth/2))
	assert.Contains(t, out, "2/4 files (50.0%)")
	assert.Contains(t, out, "ETA: 10s")
}

func TestBar_Complete(t *testing.T) {
	var buf bytes.Buffer
	newTestBar(&buf, time.Second).Update(4, 4)

	out := buf.String()
	assert.Contains(t, out, strings.Repeat("█", barWidth))
	assert.Contains(t, out, "4/4 files (100.0%)")
	assert.NotContains(t, out, "ETA")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestBar_EmptyScan(t *testing.T) {
	var buf bytes.Buffer
	newTestBar(&buf, 0).Func()(0, 0)

	assert.Contains(t, buf.String(), "0/0 files")
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}
