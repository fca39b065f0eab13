// Copyright 2026 Peter Edge
//
// All rights reserved.

package ibflexconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bufdev/ibflex/internal/ibflex/ibflexpath"
	"github.com/bufdev/ibflex/internal/pkg/ibkrflex"
	"github.com/bufdev/ibflex/internal/pkg/ibkrflexquery"
	"github.com/stretchr/testify/require"
)

func TestReadConfigDefaults(t *testing.T) {
	t.Parallel()
	dirPath := writeConfig(t, `version: v1
ibkr:
  activity_query_id: "123456"
`)
	config, err := ReadConfig(dirPath)
	require.NoError(t, err)
	require.Equal(t, dirPath, config.DirPath)
	require.Equal(t, "123456", config.ActivityQueryID)
	require.Empty(t, config.TradeConfirmationQueryID)
	require.Empty(t, config.EnvFilePath)
	require.Equal(t, ibkrflexquery.DefaultRetryPolicy, config.RetryPolicy)
	require.Equal(t, ibkrflexquery.DefaultRequestsPerMinute, config.RequestsPerMinute)
	require.Equal(t, ";", config.DateTimeSeparator)
	require.Equal(t, time.UTC, config.Location)
	require.Len(t, config.ParseOptions(), 2)
}

func TestReadConfigAllFields(t *testing.T) {
	t.Parallel()
	dirPath := writeConfig(t, `version: v1
ibkr:
  activity_query_id: "123456"
  trade_confirmation_query_id: "654321"
  env_file: /etc/ibflex.env
download:
  max_attempts: 3
  initial_retry_delay: 500ms
  max_retry_delay: 5s
  requests_per_minute: 5
parse:
  date_time_separator: ","
  time_zone: UTC
`)
	config, err := ReadConfig(dirPath)
	require.NoError(t, err)
	require.Equal(t, "654321", config.TradeConfirmationQueryID)
	require.Equal(t, "/etc/ibflex.env", config.EnvFilePath)
	require.Equal(t, 3, config.RetryPolicy.MaxAttempts)
	require.Equal(t, 500*time.Millisecond, config.RetryPolicy.InitialDelay)
	require.Equal(t, 5*time.Second, config.RetryPolicy.MaxDelay)
	require.Equal(t, 5, config.RequestsPerMinute)
	require.Equal(t, ",", config.DateTimeSeparator)
}

func TestReadConfigParseOptionsNoSeparator(t *testing.T) {
	t.Parallel()
	dirPath := writeConfig(t, `version: v1
ibkr:
  activity_query_id: "123456"
`)
	config, err := ReadConfig(dirPath)
	require.NoError(t, err)
	response, err := ibkrflex.ParseActivityStatement(
		[]byte(`<FlexStatement accountId="U1" fromDate="20250101" toDate="20250131" whenGenerated="20250201120000"/>`),
		config.ParseOptions()...,
	)
	require.NoError(t, err)
	require.True(t, time.Date(2025, time.February, 1, 12, 0, 0, 0, time.UTC).Equal(response.WhenGenerated))
}

func TestReadConfigErrors(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		name     string
		content  string
		contains string
	}{
		{
			name:     "bad_version",
			content:  "version: v2\nibkr:\n  activity_query_id: \"1\"\n",
			contains: "unsupported config version",
		},
		{
			name:     "missing_query_id",
			content:  "version: v1\n",
			contains: "ibkr.activity_query_id is required",
		},
		{
			name:     "unknown_field",
			content:  "version: v1\nibkr:\n  query_id: \"1\"\n",
			contains: "field query_id not found",
		},
		{
			name:     "bad_duration",
			content:  "version: v1\nibkr:\n  activity_query_id: \"1\"\ndownload:\n  initial_retry_delay: soon\n",
			contains: "download.initial_retry_delay",
		},
		{
			name:     "inverted_delays",
			content:  "version: v1\nibkr:\n  activity_query_id: \"1\"\ndownload:\n  initial_retry_delay: 10s\n  max_retry_delay: 1s\n",
			contains: "max delay",
		},
		{
			name:     "negative_rate",
			content:  "version: v1\nibkr:\n  activity_query_id: \"1\"\ndownload:\n  requests_per_minute: -1\n",
			contains: "download.requests_per_minute",
		},
		{
			name:     "bad_time_zone",
			content:  "version: v1\nibkr:\n  activity_query_id: \"1\"\nparse:\n  time_zone: Nowhere/Special\n",
			contains: "parse.time_zone",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := ReadConfig(writeConfig(t, test.content))
			require.ErrorContains(t, err, test.contains)
		})
	}
}

func TestReadConfigNotFound(t *testing.T) {
	t.Parallel()
	_, err := ReadConfig(t.TempDir())
	require.ErrorContains(t, err, "ibflex config init")
	require.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitConfig(t *testing.T) {
	t.Parallel()
	dirPath := filepath.Join(t.TempDir(), "nested")
	filePath, err := InitConfig(dirPath)
	require.NoError(t, err)
	require.Equal(t, ibflexpath.ConfigFilePath(dirPath), filePath)
	// The template parses strictly but leaves the required query ID empty.
	err = ValidateConfig(dirPath)
	require.ErrorContains(t, err, "ibkr.activity_query_id is required")
	_, err = InitConfig(dirPath)
	require.ErrorContains(t, err, "already exists")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dirPath := t.TempDir()
	require.NoError(t, os.WriteFile(ibflexpath.ConfigFilePath(dirPath), []byte(content), 0o600))
	return dirPath
}
