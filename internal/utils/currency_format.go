package utils

import (
	"github.com/Rhymond/go-money"
	"github.com/SscSPs/till_reconciliation_app/internal/core/domain"
)

// FormatMinor renders minor units the way the currency is usually written, e.g. "$1,234.56".
// Currencies unknown to the ISO table fall back to the definition's symbol and fraction.
func FormatMinor(minor int64, def *domain.CurrencyDefinition) string {
	if iso := money.GetCurrency(def.CurrencyCode); iso != nil && iso.Fraction == def.Fraction {
		return money.New(minor, def.CurrencyCode).Display()
	}
	return def.Symbol + def.FromMinor(minor).StringFixed(int32(def.Fraction))
}
