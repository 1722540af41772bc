// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"schema-audit/internal/redactors"
)

// DebugObserver writes a human-readable, indented trace of scan steps. All
// text passes through the redactor first.
type DebugObserver struct {
	*StandardObserver
	depth int
}

// NewDebugObserver creates a debug-level observer writing to writer.
func NewDebugObserver(writer io.Writer) *DebugObserver {
	return &DebugObserver{StandardObserver: NewStandardObserver(ObservabilityDebug, writer)}
}

func (d *DebugObserver) printf(marker, format string, args ...interface{}) {
	line := redactors.Redact(fmt.Sprintf(format, args...))
	fmt.Fprintf(d.writer, "%s%s %s\n", strings.Repeat("  ", d.depth), marker, line)
}

// StartStep logs the start of a step and returns the function that closes it.
// Nested steps are indented under their parent.
func (d *DebugObserver) StartStep(component, step, filePath string) func(success bool, details string) {
	if d == nil {
		return func(bool, string) {}
	}

	start := time.Now()
	d.printf("🔄", "%s: %s (%s)", component, step, filePath)
	d.depth++

	return func(success bool, details string) {
		d.depth--
		elapsed := time.Since(start).Milliseconds()
		if success {
			d.printf("✅", "%s: %s completed (%dms) %s", component, step, elapsed, details)
			return
		}
		d.printf("❌", "%s: %s failed (%dms) %s", component, step, elapsed, details)
	}
}

// LogDetail logs a detail within the current step
func (d *DebugObserver) LogDetail(component, detail string) {
	if d == nil {
		return
	}
	d.printf("   →", "%s: %s", component, detail)
}

// LogMetric logs a named value within the current step
func (d *DebugObserver) LogMetric(component, metric string, value interface{}) {
	if d == nil {
		return
	}
	d.printf("   📊", "%s: %s = %v", component, metric, value)
}
