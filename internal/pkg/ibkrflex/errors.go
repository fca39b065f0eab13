// Copyright 2026 Peter Edge
//
// All rights reserved.

package ibkrflex

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedDocument is returned when a document is not well-formed XML,
	// or when its root element matches neither the activity nor the trade
	// confirmation schema.
	ErrMalformedDocument = errors.New("malformed flex document")
	// ErrWrongSchema is returned when a well-formed document is of the other
	// statement kind than the one requested.
	ErrWrongSchema = errors.New("wrong flex statement schema")
	// ErrMissingField is returned when a required attribute or element is absent.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidValue is returned when a non-empty attribute value cannot be
	// coerced to its declared primitive type.
	ErrInvalidValue = errors.New("invalid field value")
)

// MissingFieldError is returned when an entity lacks a required field.
type MissingFieldError struct {
	// Entity is the XML element name of the entity, e.g. "Trade".
	Entity string
	// Field is the XML attribute or child element name, e.g. "accountId".
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Entity, e.Field)
}

// Is reports whether target is ErrMissingField.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// InvalidValueError is returned when a present, non-empty attribute value
// fails to parse as its declared primitive type.
type InvalidValueError struct {
	// Entity is the XML element name of the entity, e.g. "Trade".
	Entity string
	// Field is the XML attribute name, e.g. "tradePrice".
	Field string
	// Value is the literal attribute value.
	Value string
	// Err is the underlying parse error.
	Err error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: invalid value %q for field %q: %v", e.Entity, e.Value, e.Field, e.Err)
}

// Is reports whether target is ErrInvalidValue.
func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}

func (e *InvalidValueError) Unwrap() error {
	return e.Err
}

// WrongSchemaError is returned when a document of one kind is passed to the
// parser for the other kind. Callers can inspect Actual to redirect.
type WrongSchemaError struct {
	Expected DocumentKind
	Actual   DocumentKind
}

func (e *WrongSchemaError) Error() string {
	return fmt.Sprintf("%v: expected %s document, got %s document", ErrWrongSchema, e.Expected, e.Actual)
}

// Is reports whether target is ErrWrongSchema.
func (e *WrongSchemaError) Is(target error) bool {
	return target == ErrWrongSchema
}

// newMalformedError wraps err as a malformed document error.
func newMalformedError(err error) error {
	return fmt.Errorf("%w: %w", ErrMalformedDocument, err)
}
