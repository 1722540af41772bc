// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"schema-audit/internal/paths"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// Defaults used when neither a config file nor the environment sets a value.
const (
	DefaultOutput         = "output.json"
	DefaultFormat         = "json"
	DefaultMaxRows        = 524288
	DefaultFuzzyThreshold = 0.8
)

// SupportedFormats lists the report formats a configuration may select.
var SupportedFormats = []string{"csv", "json", "text", "yaml"}

// Environment variables that override file settings.
const (
	EnvMaxRows        = "SCHEMA_AUDIT_MAX_ROWS"
	EnvFuzzyThreshold = "SCHEMA_AUDIT_FUZZY_THRESHOLD"
	EnvDisableHash    = "SCHEMA_AUDIT_DISABLE_HASH"
	EnvFormat         = "SCHEMA_AUDIT_FORMAT"
	EnvDocumentInfo   = "SCHEMA_AUDIT_DOCUMENT_INFO"
)

// Settings holds the effective values of one run.
type Settings struct {
	Output         string  `yaml:"output"`
	Format         string  `yaml:"format"`
	MaxRows        int     `yaml:"max_rows"`
	FuzzyThreshold float64 `yaml:"fuzzy_threshold"`
	DisableHash    bool    `yaml:"disable_hash"`
	DocumentInfo   bool    `yaml:"document_info"`
	Verbose        bool    `yaml:"verbose"`
	Debug          bool    `yaml:"debug"`
	Quiet          bool    `yaml:"quiet"`
	NoColor        bool    `yaml:"no_color"`
}

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults Settings `yaml:"defaults"`

	// Profiles for different audit scenarios
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile overrides selected defaults. Unset fields keep the default value.
type Profile struct {
	Description    string   `yaml:"description"`
	Format         *string  `yaml:"format"`
	MaxRows        *int     `yaml:"max_rows"`
	FuzzyThreshold *float64 `yaml:"fuzzy_threshold"`
	DisableHash    *bool    `yaml:"disable_hash"`
	DocumentInfo   *bool    `yaml:"document_info"`
}

// Default returns the built-in configuration.
func Default() *Config {
	config := &Config{
		Defaults: Settings{
			Output:         DefaultOutput,
			Format:         DefaultFormat,
			MaxRows:        DefaultMaxRows,
			FuzzyThreshold: DefaultFuzzyThreshold,
		},
		Profiles: make(map[string]Profile),
	}

	quickRows := 10000
	noFuzzy := 0.0
	config.Profiles["quick"] = Profile{
		Description:    "Fast inventory: small row cap, no fuzzy clustering",
		MaxRows:        &quickRows,
		FuzzyThreshold: &noFuzzy,
	}

	enabled := true
	config.Profiles["documents"] = Profile{
		Description:  "Also record PDF and DOCX page counts",
		DocumentInfo: &enabled,
	}

	return config
}

// LoadConfig loads configuration from the specified file path. An empty path
// returns the built-in configuration.
func LoadConfig(configPath string) (*Config, error) {
	config := Default()
	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Keys absent from the file keep their default values
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	if config.Profiles == nil {
		config.Profiles = make(map[string]Profile)
	}

	if err := config.Defaults.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// FindConfigFile looks for a configuration file in the current directory and
// then in the per-user config directory. It returns "" if none exists.
func FindConfigFile() string {
	candidates := []string{
		"schema-audit.yaml",
		"schema-audit.yml",
		".schema-audit.yaml",
		".schema-audit.yml",
		paths.GetConfigFile(),
		paths.WithExtension(paths.GetConfigFile(), ".yml"),
	}
	for _, candidate := range candidates {
		if fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ListProfiles returns the sorted names of available profiles
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	sort.Strings(profiles)
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// Resolve merges the named profile (if any) and the environment over the
// defaults and validates the result.
func (c *Config) Resolve(profileName string) (Settings, error) {
	settings := c.Defaults

	if profileName != "" {
		profile := c.GetProfile(profileName)
		if profile == nil {
			return Settings{}, fmt.Errorf("%w: unknown profile %q (available: %s)",
				ErrInvalidConfig, profileName, strings.Join(c.ListProfiles(), ", "))
		}
		profile.apply(&settings)
	}

	if err := ApplyEnv(&settings); err != nil {
		return Settings{}, err
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func (p *Profile) apply(s *Settings) {
	if p.Format != nil {
		s.Format = *p.Format
	}
	if p.MaxRows != nil {
		s.MaxRows = *p.MaxRows
	}
	if p.FuzzyThreshold != nil {
		s.FuzzyThreshold = *p.FuzzyThreshold
	}
	if p.DisableHash != nil {
		s.DisableHash = *p.DisableHash
	}
	if p.DocumentInfo != nil {
		s.DocumentInfo = *p.DocumentInfo
	}
}

// ApplyEnv overrides settings from SCHEMA_AUDIT_* environment variables.
func ApplyEnv(s *Settings) error {
	if v, ok := os.LookupEnv(EnvMaxRows); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, EnvMaxRows, v)
		}
		s.MaxRows = n
	}
	if v, ok := os.LookupEnv(EnvFuzzyThreshold); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvFuzzyThreshold, v)
		}
		s.FuzzyThreshold = f
	}
	if v, ok := os.LookupEnv(EnvDisableHash); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, EnvDisableHash, v)
		}
		s.DisableHash = b
	}
	if v, ok := os.LookupEnv(EnvDocumentInfo); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, EnvDocumentInfo, v)
		}
		s.DocumentInfo = b
	}
	if v, ok := os.LookupEnv(EnvFormat); ok {
		s.Format = strings.ToLower(strings.TrimSpace(v))
	}
	return nil
}

// Validate checks that every setting is in range.
func (s Settings) Validate() error {
	if s.MaxRows < 1 {
		return fmt.Errorf("%w: max_rows must be at least 1, got %d", ErrInvalidConfig, s.MaxRows)
	}
	if !(s.FuzzyThreshold >= 0 && s.FuzzyThreshold <= 1) {
		return fmt.Errorf("%w: fuzzy_threshold must be between 0 and 1, got %g", ErrInvalidConfig, s.FuzzyThreshold)
	}
	if !isSupportedFormat(s.Format) {
		return fmt.Errorf("%w: unsupported format %q (available: %s)",
			ErrInvalidConfig, s.Format, strings.Join(SupportedFormats, ", "))
	}
	if strings.TrimSpace(s.Output) == "" {
		return fmt.Errorf("%w: output path is empty", ErrInvalidConfig)
	}
	return nil
}

func isSupportedFormat(format string) bool {
	for _, f := range SupportedFormats {
		if f == format {
			return true
		}
	}
	return false
}
