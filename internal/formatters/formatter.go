// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package formatters renders an audit report. Each output format lives in its
// own subpackage and registers itself with DefaultRegistry on import.
package formatters

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"schema-audit/internal/audit"
)

// FormatterOptions controls rendering. Structured formats ignore Verbose.
type FormatterOptions struct {
	Verbose bool // list every file in the text summary
	NoColor bool
	Compact bool // JSON without indentation
}

// Formatter renders a report in one output format.
type Formatter interface {
	Format(report *audit.Report, options FormatterOptions) (string, error)

	// Name is the value accepted by --format
	Name() string
	Description() string
	FileExtension() string
	MimeType() string
}

// FormatInfo describes a registered formatter.
type FormatInfo struct {
	Name        string
	Description string
	Extension   string
	MimeType    string
}

// Registry maps format names to formatters.
type Registry struct {
	byName map[string]Formatter
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Formatter)}
}

// Register adds formatter, replacing any formatter with the same name.
func (r *Registry) Register(formatter Formatter) {
	r.byName[formatter.Name()] = formatter
}

func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, ok := r.byName[name]
	return formatter, ok
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render formats report with the named formatter.
func (r *Registry) Render(format string, report *audit.Report, options FormatterOptions) (string, error) {
	formatter, ok := r.Get(format)
	if !ok {
		return "", fmt.Errorf("unsupported format '%s'. Available formats: %s", format, strings.Join(r.List(), ", "))
	}
	return formatter.Format(report, options)
}

// Info returns the description of the named formatter, or a zero FormatInfo.
func (r *Registry) Info(name string) FormatInfo {
	formatter, ok := r.Get(name)
	if !ok {
		return FormatInfo{}
	}
	return FormatInfo{
		Name:        formatter.Name(),
		Description: formatter.Description(),
		Extension:   formatter.FileExtension(),
		MimeType:    formatter.MimeType(),
	}
}

// DefaultRegistry holds the formatters registered by the subpackages.
var DefaultRegistry = NewRegistry()

func Register(formatter Formatter) { DefaultRegistry.Register(formatter) }

func Get(name string) (Formatter, bool) { return DefaultRegistry.Get(name) }

func List() []string { return DefaultRegistry.List() }

// Export renders report with a formatter from DefaultRegistry.
func Export(format string, report *audit.Report, options FormatterOptions) (string, error) {
	return DefaultRegistry.Render(format, report, options)
}

// WriteReport renders report and writes it to w.
func WriteReport(w io.Writer, format string, report *audit.Report, options FormatterOptions) error {
	rendered, err := Export(format, report, options)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, rendered); err != nil {
		return fmt.Errorf("failed to write %s report: %w", format, err)
	}
	return nil
}

// GetFormatInfo describes a formatter from DefaultRegistry.
func GetFormatInfo(name string) FormatInfo {
	return DefaultRegistry.Info(name)
}

// GetSupportedFormats describes every formatter in DefaultRegistry.
func GetSupportedFormats() []FormatInfo {
	names := List()
	formats := make([]FormatInfo, 0, len(names))
	for _, name := range names {
		formats = append(formats, GetFormatInfo(name))
	}
	return formats
}
