// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package paths

import (
	"path/filepath"

	"schema-audit/internal/platform"
)

// GetConfigDir returns the schema-audit configuration directory.
// SCHEMA_AUDIT_CONFIG_DIR overrides the platform default.
func GetConfigDir() string {
	return platform.GetPlatform().GetConfigDir()
}

// GetConfigFile returns the path to the per-user config file
func GetConfigFile() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}

// NormalizePath normalizes a file path for the current platform
// Handles Windows UNC paths and path separators
func NormalizePath(path string) string {
	return platform.GetPlatform().NormalizePath(path)
}

// WithExtension replaces the extension of path with ext.
func WithExtension(path, ext string) string {
	return path[:len(path)-len(filepath.Ext(path))] + ext
}
