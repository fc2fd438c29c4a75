package services

import (
	"context"

	"github.com/SscSPs/till_reconciliation_app/internal/core/domain"
	"github.com/SscSPs/till_reconciliation_app/internal/dto"
)

// CurrencyReaderSvc exposes the static currency tables.
type CurrencyReaderSvc interface {
	// ListCurrencies returns every supported currency, sorted by code.
	ListCurrencies(ctx context.Context) []domain.CurrencyDefinition

	// GetCurrency returns one currency or apperrors.ErrUnknownCurrency.
	GetCurrency(ctx context.Context, currencyCode string) (*domain.CurrencyDefinition, error)
}

// ReconciliationSvc runs drawer reconciliations without storing them.
type ReconciliationSvc interface {
	CurrencyReaderSvc

	// Reconcile splits a drawer count between drawer and deposit.
	Reconcile(ctx context.Context, req dto.ReconcileRequest) (*domain.ReconciliationResult, error)
}
