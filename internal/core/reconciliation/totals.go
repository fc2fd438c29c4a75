package reconciliation

import "github.com/SscSPs/till_reconciliation_app/internal/core/domain"

// Summarize computes the total and coin subtotal of a vector.
func Summarize(v domain.DenominationVector, def *domain.CurrencyDefinition) domain.VectorSummary {
	return domain.VectorSummary{
		Denominations: v,
		CoinSubtotal:  v.CoinSubtotal(def.Tiers),
		Total:         v.TotalValue(def.Tiers),
	}
}

// Legend lists the tier names and face values in table order.
func Legend(def *domain.CurrencyDefinition) []domain.LegendEntry {
	legend := make([]domain.LegendEntry, len(def.Tiers))
	for i, tier := range def.Tiers {
		legend[i] = domain.LegendEntry{Name: tier.Name, FaceValue: tier.FaceValue}
	}
	return legend
}
