// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package platform

import (
	"io/fs"
	"time"
)

// TimestampLayout is the minute-precision UTC layout used for file timestamps.
const TimestampLayout = "2006-01-02T15:04"

// CreationTime returns when the file at path was created. When the file system
// does not record a birth time the modification time is used, and when info is
// nil the Unix epoch is returned.
func CreationTime(path string, info fs.FileInfo) time.Time {
	if t, ok := birthTime(path, info); ok {
		return t
	}
	if info != nil {
		return info.ModTime()
	}
	return time.Unix(0, 0)
}

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
