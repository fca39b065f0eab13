// Copyright 2026 Peter Edge
//
// All rights reserved.

package ibkrflex

import (
	"encoding/xml"
	"time"

	"github.com/bufdev/ibflex/internal/standard/xtime"
	"github.com/shopspring/decimal"
)

// attributeReader reads typed values from the attributes of one element.
//
// The first error is sticky: once a read fails, later reads return zero
// values and err reports the first failure.
type attributeReader struct {
	entity  string
	values  map[string]string
	options *parseOptions
	err     error
}

func newAttributeReader(start xml.StartElement, options *parseOptions) *attributeReader {
	values := make(map[string]string, len(start.Attr))
	for _, attr := range start.Attr {
		values[attr.Name.Local] = attr.Value
	}
	return &attributeReader{
		entity:  start.Name.Local,
		values:  values,
		options: options,
	}
}

func (r *attributeReader) hasAttributes() bool {
	return len(r.values) > 0
}

func (r *attributeReader) required(name string) string {
	if r.err != nil {
		return ""
	}
	value := r.values[name]
	if value == "" {
		r.err = &MissingFieldError{Entity: r.entity, Field: name}
	}
	return value
}

func (r *attributeReader) optional(name string) string {
	if r.err != nil {
		return ""
	}
	return r.values[name]
}

func (r *attributeReader) requiredDecimal(name string) decimal.Decimal {
	value := r.required(name)
	if r.err != nil {
		return decimal.Decimal{}
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		r.setInvalid(name, value, err)
	}
	return d
}

func (r *attributeReader) optionalDecimal(name string) decimal.NullDecimal {
	value := r.optional(name)
	d, err := ParseDecimal(value)
	if err != nil {
		r.setInvalid(name, value, err)
	}
	return d
}

func (r *attributeReader) requiredDate(name string) xtime.Date {
	value := r.required(name)
	if r.err != nil {
		return xtime.Date{}
	}
	date, err := ParseDate(value)
	if err != nil {
		r.setInvalid(name, value, err)
	}
	return date
}

func (r *attributeReader) optionalDate(name string) xtime.Date {
	value := r.optional(name)
	date, err := ParseDate(value)
	if err != nil {
		r.setInvalid(name, value, err)
	}
	return date
}

func (r *attributeReader) optionalDateTime(name string) time.Time {
	value := r.optional(name)
	t, err := ParseDateTime(value, r.options.dateTimeSeparator, r.options.location)
	if err != nil {
		r.setInvalid(name, value, err)
	}
	return t
}

func (r *attributeReader) optionalBool(name string) *bool {
	value := r.optional(name)
	b, err := ParseBool(value)
	if err != nil {
		r.setInvalid(name, value, err)
	}
	return b
}

func (r *attributeReader) setInvalid(name string, value string, err error) {
	if r.err == nil {
		r.err = &InvalidValueError{Entity: r.entity, Field: name, Value: value, Err: err}
	}
}
