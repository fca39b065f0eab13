// Copyright 2026 Peter Edge
//
// All rights reserved.

package ibkrflex

import (
	"github.com/bufdev/ibflex/internal/standard/xtime"
	"github.com/shopspring/decimal"
)

// DerivativeKind is the variant of a Derivative.
type DerivativeKind int

const (
	// DerivativeKindNone is used for records that do not describe a derivative.
	DerivativeKindNone DerivativeKind = iota
	DerivativeKindOption
	DerivativeKindFuture
	DerivativeKindFutureOption
	DerivativeKindWarrant
)

// String implements fmt.Stringer.
func (k DerivativeKind) String() string {
	switch k {
	case DerivativeKindNone:
		return "none"
	case DerivativeKindOption:
		return "option"
	case DerivativeKindFuture:
		return "future"
	case DerivativeKindFutureOption:
		return "future_option"
	case DerivativeKindWarrant:
		return "warrant"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k DerivativeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Derivative consolidates the flat derivative fields of a record into one
// value keyed by the record's asset category.
//
// Fields the broker omitted stay absent: a Derivative with Kind
// DerivativeKindOption may lack a Strike if the record lacked one. Future
// derivatives never carry a Strike or PutCall, and DerivativeKindNone carries
// no fields at all.
type Derivative struct {
	Kind             DerivativeKind
	Strike           decimal.NullDecimal
	Expiry           xtime.Date
	PutCall          PutCall
	UnderlyingSymbol string
	UnderlyingConid  string
}

// IsDerivative returns true if the Kind is not DerivativeKindNone.
func (d Derivative) IsDerivative() bool {
	return d.Kind != DerivativeKindNone
}

// *** PRIVATE ***

// derivativeFields are the flat derivative-related fields shared by many records.
type derivativeFields struct {
	assetCategory    AssetCategory
	strike           decimal.NullDecimal
	expiry           xtime.Date
	putCall          PutCall
	underlyingSymbol string
	underlyingConid  string
}

// newDerivative normalizes the flat derivative fields of a record.
func newDerivative(fields derivativeFields) Derivative {
	switch fields.assetCategory {
	case AssetCategoryOption:
		return fields.withStrike(DerivativeKindOption)
	case AssetCategoryFutureOption:
		return fields.withStrike(DerivativeKindFutureOption)
	case AssetCategoryWarrant:
		return fields.withStrike(DerivativeKindWarrant)
	case AssetCategoryFuture:
		return Derivative{
			Kind:             DerivativeKindFuture,
			Expiry:           fields.expiry,
			UnderlyingSymbol: fields.underlyingSymbol,
			UnderlyingConid:  fields.underlyingConid,
		}
	default:
		return Derivative{}
	}
}

func (f derivativeFields) withStrike(kind DerivativeKind) Derivative {
	return Derivative{
		Kind:             kind,
		Strike:           f.strike,
		Expiry:           f.expiry,
		PutCall:          f.putCall,
		UnderlyingSymbol: f.underlyingSymbol,
		UnderlyingConid:  f.underlyingConid,
	}
}
