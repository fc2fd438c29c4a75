package domain

import (
	"fmt"
	"math"

	"github.com/SscSPs/till_reconciliation_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Denomination is one bill or coin tier of a currency.
type Denomination struct {
	Name              string `json:"name"`      // e.g., "$20", "Quarters"
	FaceValue         int64  `json:"faceValue"` // Minor units (cents)
	EligibleForDrawer bool   `json:"eligibleForDrawer"`
	Coin              bool   `json:"coin"` // Counted in the change (coin) subtotal
}

// CurrencyDefinition is the static denomination table of a supported currency.
// Tiers are ordered from the highest face value to the lowest.
type CurrencyDefinition struct {
	CurrencyCode string         `json:"currencyCode"` // e.g., "USD"
	Symbol       string         `json:"symbol"`       // e.g., "$"
	Name         string         `json:"name"`         // e.g., "US Dollar"
	Fraction     int            `json:"fraction"`     // Minor unit digits, 2 for USD
	Tiers        []Denomination `json:"tiers"`
}

// maxFraction keeps one major unit representable in int64 minor units.
const maxFraction = 18

// Validate checks the table invariants: strictly decreasing positive face values, a single
// eligibility threshold (ineligible large tiers followed by eligible small tiers) and coin flags
// set exactly on the tiers worth less than one major unit.
func (c *CurrencyDefinition) Validate() error {
	if c.CurrencyCode == "" {
		return fmt.Errorf("%w: currency code is required", apperrors.ErrInvalidCurrencyTable)
	}
	if c.Fraction < 0 || c.Fraction > maxFraction {
		return fmt.Errorf("%w: %s has unsupported fraction %d", apperrors.ErrInvalidCurrencyTable, c.CurrencyCode, c.Fraction)
	}
	if len(c.Tiers) == 0 {
		return fmt.Errorf("%w: %s has no tiers", apperrors.ErrInvalidCurrencyTable, c.CurrencyCode)
	}

	major := c.MajorUnit()
	seenEligible := false
	for i, tier := range c.Tiers {
		if tier.FaceValue <= 0 {
			return fmt.Errorf("%w: %s tier %q must have a positive face value", apperrors.ErrInvalidCurrencyTable, c.CurrencyCode, tier.Name)
		}
		if i > 0 && tier.FaceValue >= c.Tiers[i-1].FaceValue {
			return fmt.Errorf("%w: %s tiers must strictly decrease (%q after %q)", apperrors.ErrInvalidCurrencyTable, c.CurrencyCode, tier.Name, c.Tiers[i-1].Name)
		}
		if tier.Coin != (tier.FaceValue < major) {
			return fmt.Errorf("%w: %s tier %q coin flag must be set exactly when the value is below one major unit", apperrors.ErrInvalidCurrencyTable, c.CurrencyCode, tier.Name)
		}
		if tier.EligibleForDrawer {
			seenEligible = true
		} else if seenEligible {
			return fmt.Errorf("%w: %s tier %q is ineligible below an eligible tier", apperrors.ErrInvalidCurrencyTable, c.CurrencyCode, tier.Name)
		}
	}
	if !seenEligible {
		return fmt.Errorf("%w: %s has no drawer-eligible tier", apperrors.ErrInvalidCurrencyTable, c.CurrencyCode)
	}
	return nil
}

// EligibleFrom returns the index of the first drawer-eligible tier.
// Tiers before it are always deposited.
func (c *CurrencyDefinition) EligibleFrom() int {
	for i, tier := range c.Tiers {
		if tier.EligibleForDrawer {
			return i
		}
	}
	return len(c.Tiers)
}

// MajorUnit is one major currency unit in minor units, 100 for USD.
func (c *CurrencyDefinition) MajorUnit() int64 {
	unit := int64(1)
	for range c.Fraction {
		unit *= 10
	}
	return unit
}

var (
	minInt64Decimal = decimal.NewFromInt(math.MinInt64)
	maxInt64Decimal = decimal.NewFromInt(math.MaxInt64)
)

// ToMinor converts a major-unit amount into minor units. It fails when the amount carries more
// precision than the currency's minor unit or does not fit in int64 minor units.
func (c *CurrencyDefinition) ToMinor(amount decimal.Decimal) (int64, error) {
	shifted := amount.Shift(int32(c.Fraction))
	if !shifted.IsInteger() {
		return 0, fmt.Errorf("amount %s has more than %d decimal places for %s", amount.String(), c.Fraction, c.CurrencyCode)
	}
	if shifted.LessThan(minInt64Decimal) || shifted.GreaterThan(maxInt64Decimal) {
		return 0, fmt.Errorf("amount %s is out of range for %s", amount.String(), c.CurrencyCode)
	}
	return shifted.IntPart(), nil
}

// FromMinor renders minor units as an exact major-unit decimal.
func (c *CurrencyDefinition) FromMinor(minor int64) decimal.Decimal {
	return decimal.New(minor, -int32(c.Fraction))
}
