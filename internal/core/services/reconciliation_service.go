package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/till_reconciliation_app/internal/apperrors"
	"github.com/SscSPs/till_reconciliation_app/internal/core/currencytable"
	"github.com/SscSPs/till_reconciliation_app/internal/core/domain"
	portssvc "github.com/SscSPs/till_reconciliation_app/internal/core/ports/services"
	"github.com/SscSPs/till_reconciliation_app/internal/core/reconciliation"
	"github.com/SscSPs/till_reconciliation_app/internal/dto"
)

type reconciliationService struct {
	BaseService
	currencies *currencytable.Table
}

// NewReconciliationService creates the stateless reconciliation service over a currency table.
func NewReconciliationService(currencies *currencytable.Table) portssvc.ReconciliationSvc {
	return &reconciliationService{currencies: currencies}
}

var _ portssvc.ReconciliationSvc = (*reconciliationService)(nil)

func (s *reconciliationService) ListCurrencies(ctx context.Context) []domain.CurrencyDefinition {
	return s.currencies.List()
}

func (s *reconciliationService) GetCurrency(ctx context.Context, currencyCode string) (*domain.CurrencyDefinition, error) {
	def, err := s.currencies.Resolve(currencyCode)
	if err != nil {
		return nil, err
	}
	out := *def
	out.Tiers = append([]domain.Denomination(nil), def.Tiers...)
	return &out, nil
}

func (s *reconciliationService) Reconcile(ctx context.Context, req dto.ReconcileRequest) (*domain.ReconciliationResult, error) {
	def, err := s.currencies.Resolve(req.CurrencyCode)
	if err != nil {
		s.LogDebug(ctx, "Reconciliation requested for an unknown currency", slog.String("currency_code", req.CurrencyCode))
		return nil, err
	}

	if req.DrawerAmount == nil {
		return nil, fmt.Errorf("%w: drawer amount is required", apperrors.ErrInvalidTarget)
	}
	target, err := def.ToMinor(*req.DrawerAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidTarget, err)
	}

	result, err := reconciliation.ReconcileWith(def, target, domain.DenominationVector(req.Denominations))
	if err != nil {
		s.LogDebug(ctx, "Rejected drawer count", slog.String("currency_code", def.CurrencyCode), slog.String("error", err.Error()))
		return nil, err
	}

	if result.Overage > 0 {
		s.LogInfo(ctx, "Drawer kept more than the requested amount",
			slog.String("currency_code", def.CurrencyCode),
			slog.Int64("overage_minor", result.Overage))
	}
	return result, nil
}
