// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package progress renders the scan progress bar on stderr.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

const barWidth = 40

// Bar draws a single-line progress bar with an ETA.
type Bar struct {
	out   io.Writer
	start time.Time
	now   func() time.Time
}

// New returns a Bar writing to out.
func New(out io.Writer) *Bar {
	return &Bar{out: out, start: time.Now(), now: time.Now}
}

// IsTerminal checks if the file descriptor is a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ShouldSuppress reports whether the bar should be hidden. Debug output,
// quiet mode and non-interactive stderr all suppress it.
func ShouldSuppress(debug, quiet, interactive bool) bool {
	return debug || quiet || !interactive
}

// Update redraws the bar. It ends the line once current reaches total.
func (b *Bar) Update(current, total int) {
	if total <= 0 {
		fmt.Fprintf(b.out, "\r[%s] 0/0 files (100.0%%)\n", strings.Repeat("█", barWidth))
		return
	}
	if current > total {
		current = total
	}

	percent := float64(current) / float64(total) * 100
	filledWidth := barWidth * current / total
	bar := strings.Repeat("█", filledWidth) + strings.Repeat("░", barWidth-filledWidth)

	var etaStr string
	if current > 0 && current < total {
		elapsed := b.now().Sub(b.start)
		avgTime := elapsed / time.Duration(current)
		remaining := time.Duration(total-current) * avgTime
		etaStr = fmt.Sprintf(" ETA: %s", remaining.Round(time.Second))
	}

	fmt.Fprintf(b.out, "\r[%s] %d/%d files (%.1f%%)%s", bar, current, total, percent, etaStr)
	if current == total {
		fmt.Fprintf(b.out, "\n")
	}
}

// Func adapts the bar to a func(completed, total int) callback.
func (b *Bar) Func() func(completed, total int) {
	return b.Update
}
