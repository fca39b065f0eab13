// Copyright 2026 Peter Edge
//
// All rights reserved.

package ibflexload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bufdev/ibflex/internal/pkg/ibkrflex"
	"github.com/stretchr/testify/require"
)

const (
	testTradeConfirmationDocument = `<TradeConfirmationStatement accountId="U1"><Trades />` +
		`</TradeConfirmationStatement>`
)

func TestLoad(t *testing.T) {
	t.Parallel()
	dirPath := t.TempDir()
	var filePaths []string
	for i := range 8 {
		filePaths = append(filePaths, writeFile(t, dirPath, fmt.Sprintf("activity_%d.xml", i), newActivityDocument(fmt.Sprintf("U%d", i))))
	}
	filePaths = append(filePaths, writeFile(t, dirPath, "confirmation.xml", testTradeConfirmationDocument))
	files, err := Load(context.Background(), filePaths, WithParallelism(3))
	require.NoError(t, err)
	require.Len(t, files, len(filePaths))
	for i, file := range files[:8] {
		require.Equal(t, filePaths[i], file.Path)
		require.Equal(t, ibkrflex.DocumentKindActivity, file.Kind)
		require.Nil(t, file.TradeConfirmation)
		require.Len(t, file.Activity.Statements, 1)
		require.Equal(t, fmt.Sprintf("U%d", i), file.Activity.Statements[0].AccountID)
	}
	confirmation := files[8]
	require.Equal(t, ibkrflex.DocumentKindTradeConfirmation, confirmation.Kind)
	require.Nil(t, confirmation.Activity)
	require.Equal(t, "U1", confirmation.TradeConfirmation.AccountID)
	require.NotNil(t, confirmation.TradeConfirmation.Trades)
	require.Empty(t, confirmation.TradeConfirmation.Trades)
}

func TestLoadParseOptions(t *testing.T) {
	t.Parallel()
	filePath := writeFile(
		t,
		t.TempDir(),
		"activity.xml",
		`<FlexStatement accountId="U1" fromDate="20250101" toDate="20250131" whenGenerated="20250201,093000" />`,
	)
	_, err := Load(context.Background(), []string{filePath})
	require.ErrorIs(t, err, ibkrflex.ErrInvalidValue)
	files, err := Load(context.Background(), []string{filePath}, WithParseOptions(ibkrflex.WithDateTimeSeparator(",")))
	require.NoError(t, err)
	require.Equal(t, 9, files[0].Activity.WhenGenerated.Hour())
}

func TestClassify(t *testing.T) {
	t.Parallel()
	dirPath := t.TempDir()
	filePaths := []string{
		writeFile(t, dirPath, "confirmation.xml", testTradeConfirmationDocument),
		// Classification does not decode statement attributes.
		writeFile(t, dirPath, "activity.xml", `<FlexQueryResponse><FlexStatements><FlexStatement /></FlexStatements></FlexQueryResponse>`),
	}
	files, err := Classify(context.Background(), filePaths)
	require.NoError(t, err)
	require.Equal(
		t,
		[]*File{
			{Path: filePaths[0], Kind: ibkrflex.DocumentKindTradeConfirmation},
			{Path: filePaths[1], Kind: ibkrflex.DocumentKindActivity},
		},
		files,
	)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()
	dirPath := t.TempDir()
	goodFilePath := writeFile(t, dirPath, "good.xml", newActivityDocument("U1"))
	badFilePath := writeFile(t, dirPath, "bad.xml", `<html><body>error</body></html>`)
	_, err := Load(context.Background(), []string{goodFilePath, badFilePath})
	require.ErrorIs(t, err, ibkrflex.ErrMalformedDocument)
	require.ErrorContains(t, err, badFilePath)
	_, err = Classify(context.Background(), []string{filepath.Join(dirPath, "missing.xml")})
	require.ErrorIs(t, err, os.ErrNotExist)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Load(ctx, []string{goodFilePath})
	require.ErrorIs(t, err, context.Canceled)
}

func newActivityDocument(accountID string) string {
	return `<FlexQueryResponse queryName="q" type="AF"><FlexStatements count="1">` +
		`<FlexStatement accountId="` + accountID + `" fromDate="2025-01-01" toDate="2025-01-31" />` +
		`</FlexStatements></FlexQueryResponse>`
}

func writeFile(t *testing.T, dirPath string, name string, content string) string {
	t.Helper()
	filePath := filepath.Join(dirPath, name)
	require.NoError(t, os.WriteFile(filePath, []byte(content), 0o600))
	return filePath
}
