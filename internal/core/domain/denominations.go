package domain

import (
	"fmt"
	"math"

	"github.com/SscSPs/till_reconciliation_app/internal/apperrors"
)

// DenominationVector holds a count of physical units per tier, aligned with a currency's tiers.
type DenominationVector []int64

// NewDenominationVector returns an all-zero vector sized for the currency.
func NewDenominationVector(def *CurrencyDefinition) DenominationVector {
	return make(DenominationVector, len(def.Tiers))
}

// Validate ensures the vector matches the currency's tier count, holds no negative entry and
// has a total value that fits in int64 minor units. Every sum over a subset of a valid vector
// therefore fits as well.
func (v DenominationVector) Validate(def *CurrencyDefinition) error {
	if len(v) != len(def.Tiers) {
		return fmt.Errorf("%w: %s expects %d counts, got %d", apperrors.ErrMalformedVector, def.CurrencyCode, len(def.Tiers), len(v))
	}
	var total int64
	for i, count := range v {
		if count < 0 {
			return fmt.Errorf("%w: count for %q is negative (%d)", apperrors.ErrMalformedVector, def.Tiers[i].Name, count)
		}
		face := def.Tiers[i].FaceValue
		if count > math.MaxInt64/face {
			return fmt.Errorf("%w: count for %q is too large (%d)", apperrors.ErrMalformedVector, def.Tiers[i].Name, count)
		}
		value := count * face
		if total > math.MaxInt64-value {
			return fmt.Errorf("%w: total value of the %s count is too large", apperrors.ErrMalformedVector, def.CurrencyCode)
		}
		total += value
	}
	return nil
}

// TotalValue is the value of the vector in minor units.
func (v DenominationVector) TotalValue(tiers []Denomination) int64 {
	var total int64
	for i, count := range v {
		total += count * tiers[i].FaceValue
	}
	return total
}

// CoinSubtotal is the value held in coin tiers only, in minor units.
func (v DenominationVector) CoinSubtotal(tiers []Denomination) int64 {
	var total int64
	for i, count := range v {
		if tiers[i].Coin {
			total += count * tiers[i].FaceValue
		}
	}
	return total
}

// Difference returns v - other elementwise. A negative result is an error, never clamped.
func (v DenominationVector) Difference(other DenominationVector) (DenominationVector, error) {
	if len(v) != len(other) {
		return nil, fmt.Errorf("%w: cannot subtract %d counts from %d", apperrors.ErrMalformedVector, len(other), len(v))
	}
	out := make(DenominationVector, len(v))
	for i := range v {
		out[i] = v[i] - other[i]
		if out[i] < 0 {
			return nil, fmt.Errorf("%w: tier %d would be %d", apperrors.ErrNegativeCount, i, out[i])
		}
	}
	return out, nil
}

// Add returns v + other elementwise.
func (v DenominationVector) Add(other DenominationVector) (DenominationVector, error) {
	if len(v) != len(other) {
		return nil, fmt.Errorf("%w: cannot add %d counts to %d", apperrors.ErrMalformedVector, len(other), len(v))
	}
	out := make(DenominationVector, len(v))
	for i := range v {
		out[i] = v[i] + other[i]
	}
	return out, nil
}

// IsZero reports whether every count is zero.
func (v DenominationVector) IsZero() bool {
	for _, count := range v {
		if count != 0 {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (v DenominationVector) Clone() DenominationVector {
	out := make(DenominationVector, len(v))
	copy(out, v)
	return out
}
