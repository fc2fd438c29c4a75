package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/till_reconciliation_app/internal/apperrors"
	"github.com/SscSPs/till_reconciliation_app/internal/core/currencytable"
	"github.com/SscSPs/till_reconciliation_app/internal/core/domain"
	portssvc "github.com/SscSPs/till_reconciliation_app/internal/core/ports/services"
	"github.com/SscSPs/till_reconciliation_app/internal/core/services"
	"github.com/SscSPs/till_reconciliation_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReconciler(t *testing.T) portssvc.ReconciliationSvc {
	t.Helper()
	table, err := currencytable.Default()
	require.NoError(t, err)
	return services.NewReconciliationService(table)
}

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestReconciliationService_Reconcile(t *testing.T) {
	svc := newReconciler(t)

	result, err := svc.Reconcile(context.Background(), dto.ReconcileRequest{
		CurrencyCode:  "USD",
		DrawerAmount:  amount("100"),
		Denominations: []int64{4, 2, 10, 7, 2, 17, 15, 21, 10, 30},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(80365), result.GrandTotal)
	assert.Equal(t, domain.DenominationVector{0, 0, 0, 7, 2, 14, 13, 20, 9, 30}, result.Drawer.Denominations)
	assert.Equal(t, int64(10000), result.Drawer.Total)
	assert.Equal(t, int64(65), result.Deposit.CoinSubtotal)
	assert.Zero(t, result.Overage)
}

func TestReconciliationService_Errors(t *testing.T) {
	svc := newReconciler(t)
	counts := []int64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	tests := []struct {
		name    string
		req     dto.ReconcileRequest
		wantErr error
	}{
		{"unknown currency", dto.ReconcileRequest{CurrencyCode: "JPY", DrawerAmount: amount("1"), Denominations: counts}, apperrors.ErrUnknownCurrency},
		{"missing amount", dto.ReconcileRequest{CurrencyCode: "USD", Denominations: counts}, apperrors.ErrInvalidTarget},
		{"negative amount", dto.ReconcileRequest{CurrencyCode: "USD", DrawerAmount: amount("-1"), Denominations: counts}, apperrors.ErrInvalidTarget},
		{"sub-cent amount", dto.ReconcileRequest{CurrencyCode: "USD", DrawerAmount: amount("100.001"), Denominations: counts}, apperrors.ErrInvalidTarget},
		{"amount wraps to zero cents", dto.ReconcileRequest{CurrencyCode: "USD", DrawerAmount: amount("184467440737095516.16"), Denominations: counts}, apperrors.ErrInvalidTarget},
		{"amount beyond int64", dto.ReconcileRequest{CurrencyCode: "USD", DrawerAmount: amount("1e30"), Denominations: counts}, apperrors.ErrInvalidTarget},
		{"count overflows total", dto.ReconcileRequest{CurrencyCode: "USD", DrawerAmount: amount("100"), Denominations: []int64{0, 0, 0, 1e16, 0, 0, 0, 0, 0, 0}}, apperrors.ErrMalformedVector},
		{"short vector", dto.ReconcileRequest{CurrencyCode: "USD", DrawerAmount: amount("100"), Denominations: counts[:9]}, apperrors.ErrMalformedVector},
		{"negative count", dto.ReconcileRequest{CurrencyCode: "USD", DrawerAmount: amount("100"), Denominations: []int64{0, 0, 0, 0, 0, 0, 0, 0, 0, -1}}, apperrors.ErrMalformedVector},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Reconcile(context.Background(), tt.req)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, apperrors.IsInputError(err))
		})
	}
}

func TestReconciliationService_Currencies(t *testing.T) {
	svc := newReconciler(t)
	ctx := context.Background()

	list := svc.ListCurrencies(ctx)
	require.Len(t, list, 4)
	assert.Equal(t, "CAD", list[0].CurrencyCode)

	def, err := svc.GetCurrency(ctx, "gbp")
	require.NoError(t, err)
	assert.Equal(t, "GBP", def.CurrencyCode)

	def.Tiers[0].Name = "changed"
	again, err := svc.GetCurrency(ctx, "GBP")
	require.NoError(t, err)
	assert.NotEqual(t, "changed", again.Tiers[0].Name)

	_, err = svc.GetCurrency(ctx, "XXX")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)
}
