// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_LdflagsOverride(t *testing.T) {
	origV, origC, origD := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origV, origC, origD }()

	Version, GitCommit, BuildDate = "1.2.3", "abcdef0", "2024-05-01"

	assert.Equal(t, "1.2.3", Short())
	assert.True(t, strings.HasPrefix(Info(), "schema-audit 1.2.3 (commit: abcdef0, built: 2024-05-01"))

	full := Full()
	assert.Equal(t, "1.2.3", full["version"])
	assert.Equal(t, Platform, full["platform"])
}

func TestShort_DevFallback(t *testing.T) {
	assert.NotEmpty(t, Short())
	assert.Contains(t, Info(), "schema-audit ")
}
