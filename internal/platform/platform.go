// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// AppName names the per-user configuration directory.
const AppName = "schema-audit"

// ConfigDirEnv overrides the per-user configuration directory on every OS.
const ConfigDirEnv = "SCHEMA_AUDIT_CONFIG_DIR"

// Platform defines the interface for platform-specific operations
type Platform interface {
	GetConfigDir() string
	NormalizePath(path string) string
}

// system resolves platform paths for one GOOS from an environment lookup.
type system struct {
	goos   string
	getenv func(string) string
	home   func() (string, error)
}

// GetPlatform returns the platform implementation for the running OS
func GetPlatform() Platform {
	return system{goos: runtime.GOOS, getenv: os.Getenv, home: os.UserHomeDir}
}

// GetConfigDir returns ConfigDirEnv when set. Otherwise it returns
// %APPDATA%\schema-audit on Windows and $XDG_CONFIG_HOME/schema-audit or
// ~/.config/schema-audit elsewhere.
func (s system) GetConfigDir() string {
	if dir := s.getenv(ConfigDirEnv); dir != "" {
		return dir
	}

	if s.goos == "windows" {
		if appData := s.getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, AppName)
		}
		if profile := s.getenv("USERPROFILE"); profile != "" {
			return filepath.Join(profile, "."+AppName)
		}
		return "." + AppName
	}

	if xdg := s.getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := s.home()
	if err != nil || home == "" {
		return "." + AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// NormalizePath cleans path. A Windows UNC prefix (\\server\share) is kept.
func (s system) NormalizePath(path string) string {
	cleaned := filepath.Clean(path)
	if s.goos == "windows" && strings.HasPrefix(path, `\\`) && !strings.HasPrefix(cleaned, `\\`) {
		cleaned = `\\` + strings.TrimPrefix(cleaned, `\`)
	}
	return cleaned
}
