// Copyright 2026 Peter Edge
//
// All rights reserved.

package ibkrflex

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
)

// recordSink collects the records of one element kind within a section.
type recordSink interface {
	// element is the local name of the child elements this sink decodes.
	element() string
	// add decodes one child element and appends it.
	add(start xml.StartElement, options *parseOptions) error
	// len returns the number of records collected so far.
	len() int
	// finish replaces a nil slice with an empty one.
	finish()
}

type recordList[T any] struct {
	name    string
	decode  func(*attributeReader) T
	records *[]T
}

func newRecordList[T any](name string, decode func(*attributeReader) T, records *[]T) *recordList[T] {
	return &recordList[T]{
		name:    name,
		decode:  decode,
		records: records,
	}
}

func (l *recordList[T]) element() string {
	return l.name
}

func (l *recordList[T]) add(start xml.StartElement, options *parseOptions) error {
	reader := newAttributeReader(start, options)
	record := l.decode(reader)
	if reader.err != nil {
		return reader.err
	}
	*l.records = append(*l.records, record)
	return nil
}

func (l *recordList[T]) len() int {
	return len(*l.records)
}

func (l *recordList[T]) finish() {
	if *l.records == nil {
		*l.records = []T{}
	}
}

// section is a list section of a statement, such as Trades or OpenPositions.
//
// A section may interleave several element kinds, one sink per kind. Child
// elements that match no sink are skipped.
type section struct {
	name  string
	sinks []recordSink
	seen  bool
}

func newSection(name string, sinks ...recordSink) *section {
	return &section{
		name:  name,
		sinks: sinks,
	}
}

func (s *section) decode(decoder *xml.Decoder, options *parseOptions) error {
	s.seen = true
	return forEachChild(decoder, func(start xml.StartElement) error {
		for _, sink := range s.sinks {
			if sink.element() == start.Name.Local {
				if err := sink.add(start, options); err != nil {
					return err
				}
				break
			}
		}
		return skip(decoder)
	})
}

func (s *section) len() int {
	var n int
	for _, sink := range s.sinks {
		n += sink.len()
	}
	return n
}

func (s *section) finish() {
	for _, sink := range s.sinks {
		sink.finish()
	}
}

// sectionSet is the ordered set of list sections of one statement.
type sectionSet []*section

func (ss sectionSet) get(name string) *section {
	for _, s := range ss {
		if s.name == name {
			return s
		}
	}
	return nil
}

func (ss sectionSet) counts() []SectionCount {
	counts := make([]SectionCount, 0, len(ss))
	for _, s := range ss {
		counts = append(counts, SectionCount{Section: s.name, Records: s.len()})
	}
	return counts
}

// finish normalizes all sections and logs which were absent or empty.
func (ss sectionSet) finish(options *parseOptions, accountID string) {
	for _, s := range ss {
		s.finish()
		switch {
		case !s.seen:
			options.logger.Debug("section absent", "account_id", accountID, "section", s.name)
		case s.len() == 0:
			options.logger.Debug("section empty", "account_id", accountID, "section", s.name)
		default:
			options.logger.Debug("section decoded", "account_id", accountID, "section", s.name, "records", s.len())
		}
	}
}

func newDecoder(data []byte) *xml.Decoder {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = charset.NewReaderLabel
	return decoder
}

// readRoot returns the first start element of the document.
func readRoot(decoder *xml.Decoder) (xml.StartElement, error) {
	for {
		token, err := decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return xml.StartElement{}, newMalformedError(errors.New("document has no root element"))
			}
			return xml.StartElement{}, newMalformedError(err)
		}
		if start, ok := token.(xml.StartElement); ok {
			return start, nil
		}
	}
}

// readEnd consumes the rest of the document after the root element. Only
// whitespace, comments and processing instructions may follow the root.
func readEnd(decoder *xml.Decoder) error {
	for {
		token, err := decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return newMalformedError(err)
		}
		switch t := token.(type) {
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return newMalformedError(errors.New("unexpected text after root element"))
			}
		case xml.Comment, xml.ProcInst:
		case xml.StartElement:
			return newMalformedError(fmt.Errorf("unexpected element %q after root element", t.Name.Local))
		default:
			return newMalformedError(fmt.Errorf("unexpected %T after root element", token))
		}
	}
}

// forEachChild calls f for each child start element of the current element,
// consuming tokens through the current element's end. f must consume the child
// through its end element.
func forEachChild(decoder *xml.Decoder, f func(xml.StartElement) error) error {
	for {
		token, err := decoder.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return newMalformedError(io.ErrUnexpectedEOF)
			}
			return newMalformedError(err)
		}
		switch t := token.(type) {
		case xml.StartElement:
			if err := f(t); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

func skip(decoder *xml.Decoder) error {
	if err := decoder.Skip(); err != nil {
		return newMalformedError(err)
	}
	return nil
}

func attributeValue(start xml.StartElement, name string) string {
	for _, attr := range start.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}

// wrapSectionError adds the account and section to an error from inside a statement.
func wrapSectionError(accountID string, sectionName string, err error) error {
	return fmt.Errorf("account %s: %s: %w", accountID, sectionName, err)
}
