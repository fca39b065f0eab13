// Copyright 2026 Peter Edge
//
// All rights reserved.

package configinit

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bufdev/ibflex/internal/ibflex/ibflexconfig"
	"github.com/bufdev/ibflex/internal/ibflex/ibflexpath"
	"github.com/stretchr/testify/require"
)

func TestInitConfig(t *testing.T) {
	t.Parallel()
	dirPath := filepath.Join(t.TempDir(), "ibflex")
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	require.NoError(t, initConfig(&stdout, &stderr, dirPath))
	filePath := ibflexpath.ConfigFilePath(dirPath)
	require.Equal(t, filePath+"\n", stdout.String())
	require.Contains(t, stderr.String(), "ibkr.activity_query_id")
	// The template leaves the required query ID unset.
	require.Error(t, ibflexconfig.ValidateConfig(dirPath))

	err := initConfig(&stdout, &stderr, dirPath)
	require.ErrorContains(t, err, "already exists")
}

func TestLongHelpDocumentsEveryKey(t *testing.T) {
	t.Parallel()
	dirPath := t.TempDir()
	_, err := ibflexconfig.InitConfig(dirPath)
	require.NoError(t, err)
	data, err := os.ReadFile(ibflexpath.ConfigFilePath(dirPath))
	require.NoError(t, err)
	for _, key := range []string{
		"version",
		"ibkr.activity_query_id",
		"ibkr.trade_confirmation_query_id",
		"ibkr.env_file",
		"download.max_attempts",
		"download.initial_retry_delay",
		"download.max_retry_delay",
		"download.requests_per_minute",
		"parse.date_time_separator",
		"parse.time_zone",
	} {
		require.Contains(t, longHelp, key)
		name := key[strings.LastIndex(key, ".")+1:]
		require.Contains(t, string(data), name+":", "key %s", key)
	}
}
