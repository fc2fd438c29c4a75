// Package reconciliation implements the cash drawer split: given the units counted in a drawer
// and the amount that must stay in it, it decides which units remain as float and which are
// banked, and assembles the totals reported back to callers.
//
// Everything here is pure. Money is handled as int64 minor units; conversion to decimals happens
// at the edges of the application.
package reconciliation

import (
	"fmt"

	"github.com/SscSPs/till_reconciliation_app/internal/apperrors"
	"github.com/SscSPs/till_reconciliation_app/internal/core/domain"
)

// CurrencyResolver looks up a currency definition by code.
type CurrencyResolver interface {
	Resolve(code string) (*domain.CurrencyDefinition, error)
}

// Reconcile resolves the currency, validates the input and builds the full report.
// No result is produced for invalid input.
func Reconcile(currencies CurrencyResolver, currencyCode string, target int64, counts domain.DenominationVector) (*domain.ReconciliationResult, error) {
	def, err := currencies.Resolve(currencyCode)
	if err != nil {
		return nil, err
	}
	return ReconcileWith(def, target, counts)
}

// ReconcileWith builds the report for an already resolved currency.
func ReconcileWith(def *domain.CurrencyDefinition, target int64, counts domain.DenominationVector) (*domain.ReconciliationResult, error) {
	if target < 0 {
		return nil, fmt.Errorf("%w: %d is negative", apperrors.ErrInvalidTarget, target)
	}
	if err := counts.Validate(def); err != nil {
		return nil, err
	}

	original := counts.Clone()
	allocation, err := Allocate(original, def, target)
	if err != nil {
		return nil, err
	}

	return &domain.ReconciliationResult{
		CurrencyCode: def.CurrencyCode,
		Symbol:       def.Symbol,
		Fraction:     def.Fraction,
		DrawerTarget: target,
		Legend:       Legend(def),
		GrandTotal:   original.TotalValue(def.Tiers),
		Deposit:      Summarize(allocation.Deposit, def),
		Drawer:       Summarize(allocation.Drawer, def),
		Overage:      allocation.Overage,
	}, nil
}
