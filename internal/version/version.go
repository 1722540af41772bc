// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version information set via ldflags
var (
	// Version is the current version of schema-audit
	Version = "0.0.0-development"

	// GitCommit is the git commit hash
	GitCommit = "unknown"

	// BuildDate is when the binary was built
	BuildDate = "unknown"

	// GoVersion is the version of Go used to build
	GoVersion = runtime.Version()

	// Platform is the OS/Arch combination
	Platform = fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
)

// Info returns formatted version information
func Info() string {
	v, commit, date := resolve()
	return fmt.Sprintf("schema-audit %s (commit: %s, built: %s, go: %s, platform: %s)",
		v, commit, date, GoVersion, Platform)
}

// Short returns just the version number
func Short() string {
	v, _, _ := resolve()
	return v
}

// Full returns detailed version information
func Full() map[string]string {
	v, commit, date := resolve()
	return map[string]string{
		"version":   v,
		"commit":    commit,
		"buildDate": date,
		"goVersion": GoVersion,
		"platform":  Platform,
	}
}

// resolve fills unset ldflags values from the embedded build info.
func resolve() (string, string, string) {
	v, commit, date := Version, GitCommit, BuildDate

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return v, commit, date
	}
	if v == "0.0.0-development" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		v = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if commit == "unknown" && len(setting.Value) >= 7 {
				commit = setting.Value[:7]
			}
		case "vcs.time":
			if date == "unknown" {
				date = setting.Value
			}
		}
	}
	return v, commit, date
}
