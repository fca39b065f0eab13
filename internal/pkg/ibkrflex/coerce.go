// Copyright 2026 Peter Edge
//
// All rights reserved.

package ibkrflex

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bufdev/ibflex/internal/standard/xtime"
	"github.com/shopspring/decimal"
)

// DefaultDateTimeSeparator separates the date and time parts of IBKR
// date-time values, as in "2025-01-15;093015".
const DefaultDateTimeSeparator = ";"

var (
	errInvalidDate = errors.New("expected a date in YYYY-MM-DD or YYYYMMDD format")
	errInvalidTime = errors.New("expected a time in HHMMSS or HH:MM:SS format")
	errInvalidBool = errors.New("expected one of Y, N, true, false")
	errNilLocation = errors.New("location is nil")
)

// timeOfDayLayouts are the accepted layouts for the time part of a date-time.
var timeOfDayLayouts = []string{"150405", "15:04:05"}

// ParseDecimal parses an exact base-10 decimal.
//
// An empty value is not present and returns an invalid NullDecimal with no error.
func ParseDecimal(value string) (decimal.NullDecimal, error) {
	if value == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}

// ParseDate parses a date in either YYYY-MM-DD or YYYYMMDD format.
//
// An empty value is not present and returns the zero Date with no error.
func ParseDate(value string) (xtime.Date, error) {
	if value == "" {
		return xtime.Date{}, nil
	}
	if date, err := xtime.ParseDate(value); err == nil {
		return date, nil
	}
	if date, err := xtime.ParseCompactDate(value); err == nil {
		return date, nil
	}
	return xtime.Date{}, errInvalidDate
}

// ParseDateTime parses a date-time of the form <date><separator><time>, where
// the date is in a format accepted by ParseDate and the time is HHMMSS or
// HH:MM:SS. A value without the separator that parses as a date is midnight of
// that date. A 14-digit value without the separator is read as YYYYMMDDHHMMSS,
// which is the form IBKR emits when a query has no date-time separator. The
// result is in location, which must not be nil.
//
// An empty value is not present and returns the zero time with no error.
func ParseDateTime(value string, separator string, location *time.Location) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if location == nil {
		return time.Time{}, errNilLocation
	}
	datePart, timePart, found := value, "", false
	if separator != "" {
		datePart, timePart, found = strings.Cut(value, separator)
	}
	if !found && isCompactDateTime(value) {
		datePart, timePart, found = value[:8], value[8:], true
	}
	date, err := ParseDate(datePart)
	if err != nil || date.IsZero() {
		return time.Time{}, fmt.Errorf("date-time date part: %w", errInvalidDate)
	}
	if !found {
		return date.In(location), nil
	}
	for _, layout := range timeOfDayLayouts {
		t, err := time.Parse(layout, timePart)
		if err != nil {
			continue
		}
		return time.Date(date.Year, date.Month, date.Day, t.Hour(), t.Minute(), t.Second(), 0, location), nil
	}
	return time.Time{}, fmt.Errorf("date-time time part: %w", errInvalidTime)
}

func isCompactDateTime(value string) bool {
	if len(value) != 14 {
		return false
	}
	for i := range len(value) {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}

// ParseBool parses a Y/N or true/false flag.
//
// An empty value is not present and returns nil with no error.
func ParseBool(value string) (*bool, error) {
	var result bool
	switch value {
	case "":
		return nil, nil
	case "Y", "true":
		result = true
	case "N", "false":
		result = false
	default:
		return nil, errInvalidBool
	}
	return &result, nil
}
