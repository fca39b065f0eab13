// Copyright 2026 Peter Edge
//
// All rights reserved.

package cliio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		input    string
		expected Format
	}{
		{input: "table", expected: FormatTable},
		{input: "CSV", expected: FormatCSV},
		{input: "json", expected: FormatJSON},
		{input: "Yaml", expected: FormatYAML},
	} {
		format, err := ParseFormat(test.input)
		require.NoError(t, err)
		require.Equal(t, test.expected, format)
	}
	_, err := ParseFormat("xml")
	require.ErrorContains(t, err, "table, csv, json, yaml")
}

type testRow struct {
	Symbol   string `json:"symbol" yaml:"symbol"`
	Quantity string `json:"quantity" yaml:"quantity"`
}

type testRows []testRow

func (r testRows) Headers() []string {
	return []string{"SYMBOL", "QUANTITY"}
}

func (r testRows) Rows() [][]string {
	rows := make([][]string, 0, len(r))
	for _, row := range r {
		rows = append(rows, []string{row.Symbol, row.Quantity})
	}
	return rows
}

func TestWrite(t *testing.T) {
	t.Parallel()
	rows := testRows{
		{Symbol: "AAPL", Quantity: "100"},
		{Symbol: "ESH5", Quantity: "-2"},
	}
	for _, test := range []struct {
		format   Format
		expected string
	}{
		{
			format:   FormatTable,
			expected: "SYMBOL  QUANTITY\nAAPL    100\nESH5    -2\n",
		},
		{
			format:   FormatCSV,
			expected: "SYMBOL,QUANTITY\nAAPL,100\nESH5,-2\n",
		},
		{
			format:   FormatJSON,
			expected: "{\"symbol\":\"AAPL\",\"quantity\":\"100\"}\n{\"symbol\":\"ESH5\",\"quantity\":\"-2\"}\n",
		},
		{
			format:   FormatYAML,
			expected: "- symbol: AAPL\n  quantity: \"100\"\n- symbol: ESH5\n  quantity: \"-2\"\n",
		},
	} {
		t.Run(string(test.format), func(t *testing.T) {
			t.Parallel()
			var buffer bytes.Buffer
			require.NoError(t, Write(&buffer, test.format, rows, rows))
			require.Equal(t, test.expected, buffer.String())
		})
	}
	require.Error(t, Write(&bytes.Buffer{}, Format("xml"), rows, rows))
}

func TestWriteTableWithTotals(t *testing.T) {
	t.Parallel()
	var buffer bytes.Buffer
	require.NoError(
		t,
		WriteTableWithTotals(
			&buffer,
			[]string{"CURRENCY", "AMOUNT"},
			[][]string{{"USD", "10.50"}},
			[][]string{{"TOTAL", "10.50"}, {"TOTAL", "-2"}},
		),
	)
	require.Equal(t, "CURRENCY  AMOUNT\nUSD       10.50\n          \nTOTAL     10.50\nTOTAL     -2\n", buffer.String())
}
