// Copyright 2026 Peter Edge
//
// All rights reserved.

package datazip

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/bufdev/ibflex/internal/ibflex/ibflexpath"
	"github.com/stretchr/testify/require"
)

func TestWriteArchive(t *testing.T) {
	t.Parallel()
	dirPath := t.TempDir()
	require.NoError(t, os.WriteFile(ibflexpath.ConfigFilePath(dirPath), []byte("version: v1\n"), 0o600))
	activityDirPath := filepath.Join(ibflexpath.StatementsDirPath(dirPath), "activity")
	require.NoError(t, os.MkdirAll(activityDirPath, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(activityDirPath, "U1234567_20250101_20250131.xml"), []byte("<FlexQueryResponse/>"), 0o600))
	require.NoError(t, os.WriteFile(ibflexpath.ManifestFilePath(dirPath), []byte("run_id: x\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dirPath, "statements", "out.zip"), []byte("partial"), 0o600))
	// Files outside statements/ are not archived.
	require.NoError(t, os.WriteFile(filepath.Join(dirPath, "notes.txt"), []byte("notes"), 0o600))

	var buffer bytes.Buffer
	numFiles, err := writeArchive(&buffer, dirPath, filepath.Join(dirPath, "statements", "out.zip"))
	require.NoError(t, err)
	require.Equal(t, 3, numFiles)

	zipReader, err := zip.NewReader(bytes.NewReader(buffer.Bytes()), int64(buffer.Len()))
	require.NoError(t, err)
	contents := make(map[string]string)
	for _, file := range zipReader.File {
		readCloser, err := file.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(readCloser)
		require.NoError(t, err)
		require.NoError(t, readCloser.Close())
		contents[file.Name] = string(data)
	}
	require.Len(t, contents, 3)
	require.Equal(t, "version: v1\n", contents["ibflex.yaml"])
	require.Equal(t, "<FlexQueryResponse/>", contents["statements/activity/U1234567_20250101_20250131.xml"])
	require.Equal(t, "run_id: x\n", contents["statements/manifest.yaml"])
}

func TestWriteArchiveNoStatements(t *testing.T) {
	t.Parallel()
	_, err := writeArchive(io.Discard, t.TempDir(), "")
	require.Error(t, err)
}
