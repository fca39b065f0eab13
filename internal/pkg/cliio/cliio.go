// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package cliio provides output formatting for CLI commands.
package cliio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format represents the output format for CLI commands.
type Format string

const (
	// FormatTable is the default table output format.
	FormatTable Format = "table"
	// FormatCSV is the CSV output format.
	FormatCSV Format = "csv"
	// FormatJSON is the newline-delimited JSON output format.
	FormatJSON Format = "json"
	// FormatYAML is the YAML output format.
	FormatYAML Format = "yaml"
)

// AllFormatStrings are the string values accepted by ParseFormat.
var AllFormatStrings = []string{
	string(FormatTable),
	string(FormatCSV),
	string(FormatJSON),
	string(FormatYAML),
}

// ParseFormat parses a string into a Format, returning an error for unknown formats.
func ParseFormat(s string) (Format, error) {
	switch format := Format(strings.ToLower(s)); format {
	case FormatTable, FormatCSV, FormatJSON, FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("unknown format %q, must be one of: %s", s, strings.Join(AllFormatStrings, ", "))
	}
}

// Tabular is implemented by values that can be rendered as table or CSV rows.
type Tabular interface {
	// Headers returns the column headers.
	Headers() []string
	// Rows returns the data rows, each with len(Headers()) cells.
	Rows() [][]string
}

// Write writes value in the given format.
//
// Table and CSV formats use value's Tabular rows. JSON writes each element of
// objects on its own line, and YAML writes objects as a single sequence.
func Write[O any](writer io.Writer, format Format, value Tabular, objects []O) error {
	switch format {
	case FormatTable:
		return WriteTable(writer, value.Headers(), value.Rows())
	case FormatCSV:
		return WriteCSVRecords(writer, append([][]string{value.Headers()}, value.Rows()...))
	case FormatJSON:
		return WriteJSON(writer, objects...)
	case FormatYAML:
		return WriteYAML(writer, objects)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// WriteTable writes tabular data to the writer using tabwriter for aligned columns.
func WriteTable(writer io.Writer, headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	if err := writeRows(tw, headers, rows); err != nil {
		return err
	}
	return tw.Flush()
}

// WriteTableWithTotals writes a table followed by a blank line and the totals rows,
// all through the same tabwriter so columns align between data and totals.
func WriteTableWithTotals(writer io.Writer, headers []string, rows [][]string, totalsRows [][]string) error {
	tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	if err := writeRows(tw, headers, rows); err != nil {
		return err
	}
	// Tabs keep the blank line inside the column layout.
	if _, err := fmt.Fprintln(tw, strings.Join(make([]string, len(headers)), "\t")); err != nil {
		return err
	}
	for _, totalsRow := range totalsRows {
		if _, err := fmt.Fprintln(tw, strings.Join(totalsRow, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteCSVRecords writes CSV records to the writer.
func WriteCSVRecords(writer io.Writer, records [][]string) error {
	csvWriter := csv.NewWriter(writer)
	if err := csvWriter.WriteAll(records); err != nil {
		return err
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// WriteJSON writes objects as JSON with newlines between each object.
func WriteJSON[O any](writer io.Writer, objects ...O) error {
	for _, object := range objects {
		data, err := json.Marshal(object)
		if err != nil {
			return err
		}
		if _, err := writer.Write(data); err != nil {
			return err
		}
		if _, err := writer.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}

// WriteYAML writes value as a YAML document with two-space indentation.
func WriteYAML(writer io.Writer, value any) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(value); err != nil {
		return err
	}
	return encoder.Close()
}

// *** PRIVATE ***

func writeRows(writer io.Writer, headers []string, rows [][]string) error {
	if _, err := fmt.Fprintln(writer, strings.Join(headers, "\t")); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(writer, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}
