// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

//go:build !linux && !darwin && !windows

package platform

import (
	"io/fs"
	"time"
)

func birthTime(_ string, _ fs.FileInfo) (time.Time, bool) {
	return time.Time{}, false
}
