package dto

import (
	"encoding/json"

	"github.com/SscSPs/till_reconciliation_app/internal/core/domain"
)

// DenominationResponse describes one tier of a currency table.
type DenominationResponse struct {
	Name              string      `json:"name"`
	Value             json.Number `json:"value" swaggertype:"number"`
	EligibleForDrawer bool        `json:"eligibleForDrawer"`
	Coin              bool        `json:"coin"`
}

// CurrencyResponse defines the data returned for a supported currency.
type CurrencyResponse struct {
	CurrencyCode  string                 `json:"currencyCode"`
	Symbol        string                 `json:"symbol"`
	Name          string                 `json:"name"`
	Denominations []DenominationResponse `json:"denominations"`
}

// ListCurrenciesResponse wraps the supported currencies.
type ListCurrenciesResponse struct {
	Currencies []CurrencyResponse `json:"currencies"`
}

// ToCurrencyResponse converts a domain.CurrencyDefinition to CurrencyResponse DTO
func ToCurrencyResponse(def *domain.CurrencyDefinition) CurrencyResponse {
	tiers := make([]DenominationResponse, len(def.Tiers))
	for i, tier := range def.Tiers {
		tiers[i] = DenominationResponse{
			Name:              tier.Name,
			Value:             MinorToNumber(tier.FaceValue, def.Fraction),
			EligibleForDrawer: tier.EligibleForDrawer,
			Coin:              tier.Coin,
		}
	}
	return CurrencyResponse{
		CurrencyCode:  def.CurrencyCode,
		Symbol:        def.Symbol,
		Name:          def.Name,
		Denominations: tiers,
	}
}

// ToListCurrenciesResponse converts a slice of definitions.
func ToListCurrenciesResponse(defs []domain.CurrencyDefinition) ListCurrenciesResponse {
	res := make([]CurrencyResponse, len(defs))
	for i := range defs {
		res[i] = ToCurrencyResponse(&defs[i])
	}
	return ListCurrenciesResponse{Currencies: res}
}
