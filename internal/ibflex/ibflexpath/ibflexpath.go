// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package ibflexpath derives file and directory paths from the ibflex base directory.
// All layout is defined here so callers don't duplicate path construction logic.
//
// The base directory (--dir flag) contains:
//
//	ibflex.yaml                                   Config file
//	statements/manifest.yaml                      Record of the last download run
//	statements/<kind>/<account>_<from>_<to>.xml   Downloaded Flex statements
package ibflexpath

import (
	"path/filepath"

	"github.com/bufdev/ibflex/internal/standard/xtime"
)

// ConfigFileName is the well-known config file name within the base directory.
const ConfigFileName = "ibflex.yaml"

// ManifestFileName is the name of the download manifest within the statements directory.
const ManifestFileName = "manifest.yaml"

// ConfigFilePath returns the path to the config file within the base directory.
func ConfigFilePath(dirPath string) string {
	return filepath.Join(dirPath, ConfigFileName)
}

// StatementsDirPath returns the directory that holds downloaded statements.
func StatementsDirPath(dirPath string) string {
	return filepath.Join(dirPath, "statements")
}

// StatementKindDirPath returns the directory for statements of one document kind,
// for example "activity".
func StatementKindDirPath(dirPath string, kind string) string {
	return filepath.Join(dirPath, "statements", kind)
}

// StatementFilePath returns the path of a downloaded statement.
func StatementFilePath(dirPath string, kind string, accountID string, fromDate xtime.Date, toDate xtime.Date) string {
	return filepath.Join(
		StatementKindDirPath(dirPath, kind),
		accountID+"_"+fromDate.CompactString()+"_"+toDate.CompactString()+".xml",
	)
}

// ManifestFilePath returns the path of the download manifest.
func ManifestFilePath(dirPath string) string {
	return filepath.Join(dirPath, "statements", ManifestFileName)
}
