package dto

import (
	"encoding/json"

	"github.com/SscSPs/till_reconciliation_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReconcileRequest is one drawer count: the currency, the amount that must stay in the drawer and
// the number of units counted per tier, largest tier first.
type ReconcileRequest struct {
	CurrencyCode  string           `json:"currencyCode" binding:"required,alpha,len=3" example:"USD"`
	DrawerAmount  *decimal.Decimal `json:"drawerAmount" binding:"required,nonnegative_decimal" swaggertype:"number" example:"100"`
	Denominations []int64          `json:"denominations" binding:"required,dive,gte=0"`
}

// DenominationValue is one entry of the currency legend.
type DenominationValue struct {
	Name  string      `json:"name"`
	Value json.Number `json:"value" swaggertype:"number"`
}

// VectorTotalsResponse is a drawer or deposit split with its totals.
type VectorTotalsResponse struct {
	Denominations []int64     `json:"denominations"`
	ChangeTotal   json.Number `json:"changeTotal" swaggertype:"number"`
	Total         json.Number `json:"total" swaggertype:"number"`
}

// ReconciliationResponse is the report returned for a drawer count. Money is rendered as exact
// decimal numbers in major units.
type ReconciliationResponse struct {
	CurrencyCode  string               `json:"currencyCode"`
	Symbol        string               `json:"symbol"`
	DrawerAmount  json.Number          `json:"drawerAmount" swaggertype:"number"`
	Values        []DenominationValue  `json:"values"`
	Total         json.Number          `json:"total" swaggertype:"number"`
	DepositValues VectorTotalsResponse `json:"depositValues"`
	DrawerValues  VectorTotalsResponse `json:"drawerValues"`
	Overage       json.Number          `json:"overage" swaggertype:"number"`
}

// ReconcileResponse wraps a stateless reconciliation.
type ReconcileResponse struct {
	Submission ReconciliationResponse `json:"submission"`
}

// MinorToNumber renders minor units as an exact JSON number.
func MinorToNumber(minor int64, fraction int) json.Number {
	return json.Number(decimal.New(minor, -int32(fraction)).String())
}

func toVectorTotals(s domain.VectorSummary, fraction int) VectorTotalsResponse {
	counts := make([]int64, len(s.Denominations))
	copy(counts, s.Denominations)
	return VectorTotalsResponse{
		Denominations: counts,
		ChangeTotal:   MinorToNumber(s.CoinSubtotal, fraction),
		Total:         MinorToNumber(s.Total, fraction),
	}
}

// ToReconciliationResponse converts a domain.ReconciliationResult to its wire form.
func ToReconciliationResponse(r *domain.ReconciliationResult) ReconciliationResponse {
	values := make([]DenominationValue, len(r.Legend))
	for i, entry := range r.Legend {
		values[i] = DenominationValue{Name: entry.Name, Value: MinorToNumber(entry.FaceValue, r.Fraction)}
	}
	return ReconciliationResponse{
		CurrencyCode:  r.CurrencyCode,
		Symbol:        r.Symbol,
		DrawerAmount:  MinorToNumber(r.DrawerTarget, r.Fraction),
		Values:        values,
		Total:         MinorToNumber(r.GrandTotal, r.Fraction),
		DepositValues: toVectorTotals(r.Deposit, r.Fraction),
		DrawerValues:  toVectorTotals(r.Drawer, r.Fraction),
		Overage:       MinorToNumber(r.Overage, r.Fraction),
	}
}
