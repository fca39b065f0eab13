// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package ibkrflex decodes IBKR Flex XML statements into typed values.
//
// Two document kinds are supported: activity statements, rooted at
// FlexQueryResponse (or a bare FlexStatement), and trade confirmation
// statements, rooted at TradeConfirmationStatement. Use Classify to tell them
// apart, then ParseActivityStatement or ParseTradeConfirmationStatement.
//
// Decoding is tolerant of the broker's habits: empty attributes are absent
// values, unknown attributes and sections are ignored, and unknown enumeration
// tokens decode to the Unknown constant of their type. Decoding is strict about
// required attributes and about non-empty values that do not parse.
//
// This package does no I/O. See the ibkrflexquery package for fetching
// documents from the Flex Web Service.
package ibkrflex

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"time"
)

const (
	// DocumentKindUnknown is never returned by Classify without an error.
	DocumentKindUnknown DocumentKind = iota
	// DocumentKindActivity is an activity statement.
	DocumentKindActivity
	// DocumentKindTradeConfirmation is a trade confirmation statement.
	DocumentKindTradeConfirmation
)

const (
	// SchemaVersionUnknown is any schema version other than 3.
	SchemaVersionUnknown SchemaVersion = iota
	// SchemaVersion3 is Flex schema version 3, the current version.
	SchemaVersion3
)

// DocumentKind is the kind of a Flex document.
type DocumentKind int

// String implements fmt.Stringer.
func (k DocumentKind) String() string {
	switch k {
	case DocumentKindActivity:
		return "activity"
	case DocumentKindTradeConfirmation:
		return "trade_confirmation"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k DocumentKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It accepts the values returned by String.
func (k *DocumentKind) UnmarshalText(data []byte) error {
	for _, kind := range []DocumentKind{
		DocumentKindUnknown,
		DocumentKindActivity,
		DocumentKindTradeConfirmation,
	} {
		if kind.String() == string(data) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown document kind %q", string(data))
}

// SchemaVersion is the version of the Flex schema a document declares.
type SchemaVersion int

// String implements fmt.Stringer.
func (v SchemaVersion) String() string {
	switch v {
	case SchemaVersion3:
		return "v3"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (v SchemaVersion) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// ParseOption is an option for parsing.
type ParseOption func(*parseOptions)

// WithDateTimeSeparator sets the separator between the date and time parts of
// date-time values.
//
// The default is DefaultDateTimeSeparator.
func WithDateTimeSeparator(separator string) ParseOption {
	return func(parseOptions *parseOptions) {
		parseOptions.dateTimeSeparator = separator
	}
}

// WithLocation sets the location that date-time values are interpreted in.
//
// IBKR writes date-times in the local time of the account without a zone.
// The default is UTC. A nil location is ignored.
func WithLocation(location *time.Location) ParseOption {
	return func(parseOptions *parseOptions) {
		if location != nil {
			parseOptions.location = location
		}
	}
}

// WithLogger sets the logger for debug diagnostics, such as which sections were
// absent and which were present but empty.
//
// The default discards all output.
func WithLogger(logger *slog.Logger) ParseOption {
	return func(parseOptions *parseOptions) {
		if logger != nil {
			parseOptions.logger = logger
		}
	}
}

// Classify returns the kind of the document.
//
// Only the document up to its root element is read. Documents that are not
// well-formed before the root, documents with an unrecognized root, and Flex
// Web Service status responses return an error matching ErrMalformedDocument.
func Classify(data []byte) (DocumentKind, error) {
	decoder := newDecoder(data)
	root, err := readRoot(decoder)
	if err != nil {
		return DocumentKindUnknown, err
	}
	return classifyRoot(decoder, root)
}

// ParseActivityStatement parses an activity document.
//
// A trade confirmation document returns a *WrongSchemaError.
func ParseActivityStatement(data []byte, options ...ParseOption) (*Response, error) {
	parseOptions := newParseOptions(options)
	decoder := newDecoder(data)
	root, err := readRoot(decoder)
	if err != nil {
		return nil, err
	}
	kind, err := classifyRoot(decoder, root)
	if err != nil {
		return nil, err
	}
	if kind != DocumentKindActivity {
		return nil, &WrongSchemaError{Expected: DocumentKindActivity, Actual: kind}
	}
	if root.Name.Local == flexQueryResponseElement {
		response, err := decodeResponse(decoder, root, parseOptions)
		if err != nil {
			return nil, err
		}
		if err := readEnd(decoder); err != nil {
			return nil, err
		}
		return response, nil
	}
	statement, err := decodeStatement(decoder, root, parseOptions)
	if err != nil {
		return nil, err
	}
	if err := readEnd(decoder); err != nil {
		return nil, err
	}
	return &Response{
		Version:       parseSchemaVersion(attributeValue(root, "version"), parseOptions),
		Statements:    []*Statement{statement},
		WhenGenerated: statement.WhenGenerated,
	}, nil
}

// ParseTradeConfirmationStatement parses a trade confirmation document.
//
// An activity document returns a *WrongSchemaError.
func ParseTradeConfirmationStatement(data []byte, options ...ParseOption) (*TradeConfirmationStatement, error) {
	parseOptions := newParseOptions(options)
	decoder := newDecoder(data)
	root, err := readRoot(decoder)
	if err != nil {
		return nil, err
	}
	kind, err := classifyRoot(decoder, root)
	if err != nil {
		return nil, err
	}
	if kind != DocumentKindTradeConfirmation {
		return nil, &WrongSchemaError{Expected: DocumentKindTradeConfirmation, Actual: kind}
	}
	statement, err := decodeTradeConfirmationStatement(decoder, root, parseOptions)
	if err != nil {
		return nil, err
	}
	if err := readEnd(decoder); err != nil {
		return nil, err
	}
	return statement, nil
}

// *** PRIVATE ***

const (
	flexQueryResponseElement          = "FlexQueryResponse"
	flexStatementElement              = "FlexStatement"
	tradeConfirmationStatementElement = "TradeConfirmationStatement"
	flexStatementResponseElement      = "FlexStatementResponse"
)

type parseOptions struct {
	dateTimeSeparator string
	location          *time.Location
	logger            *slog.Logger
}

func newParseOptions(options []ParseOption) *parseOptions {
	parseOptions := &parseOptions{
		dateTimeSeparator: DefaultDateTimeSeparator,
		location:          time.UTC,
		logger:            slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		option(parseOptions)
	}
	return parseOptions
}

// statusResponse is the envelope the Flex Web Service returns in place of a
// statement when a request fails.
type statusResponse struct {
	Status       string `xml:"Status"`
	ErrorCode    string `xml:"ErrorCode"`
	ErrorMessage string `xml:"ErrorMessage"`
}

// classifyRoot classifies a document by its root element. Status responses are
// decoded to report their error code and message.
func classifyRoot(decoder *xml.Decoder, root xml.StartElement) (DocumentKind, error) {
	switch root.Name.Local {
	case flexQueryResponseElement, flexStatementElement:
		return DocumentKindActivity, nil
	case tradeConfirmationStatementElement:
		return DocumentKindTradeConfirmation, nil
	case flexStatementResponseElement:
		var status statusResponse
		if err := decoder.DecodeElement(&status, &root); err != nil {
			return DocumentKindUnknown, newMalformedError(err)
		}
		return DocumentKindUnknown, newMalformedError(
			fmt.Errorf("flex web service status response %q: code %s: %s", status.Status, status.ErrorCode, status.ErrorMessage),
		)
	default:
		return DocumentKindUnknown, newMalformedError(fmt.Errorf("unrecognized root element %q", root.Name.Local))
	}
}

func parseSchemaVersion(value string, options *parseOptions) SchemaVersion {
	switch value {
	case "", "3":
		return SchemaVersion3
	default:
		options.logger.Debug("unknown schema version", "version", value)
		return SchemaVersionUnknown
	}
}
