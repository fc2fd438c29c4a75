// Package currencytable holds the static per-currency denomination tables used by the drawer
// reconciliation. A Table is built once at startup and is read-only afterwards, so it can be
// shared by any number of concurrent requests.
package currencytable

import (
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/till_reconciliation_app/internal/apperrors"
	"github.com/SscSPs/till_reconciliation_app/internal/core/domain"
)

// Table resolves currency codes to their denomination definitions.
type Table struct {
	byCode map[string]*domain.CurrencyDefinition
	codes  []string
}

// New validates the definitions and builds a table. Duplicate codes are rejected.
func New(defs ...domain.CurrencyDefinition) (*Table, error) {
	t := &Table{byCode: make(map[string]*domain.CurrencyDefinition, len(defs))}
	for i := range defs {
		def := defs[i]
		def.CurrencyCode = strings.ToUpper(def.CurrencyCode)
		if err := def.Validate(); err != nil {
			return nil, err
		}
		if _, exists := t.byCode[def.CurrencyCode]; exists {
			return nil, fmt.Errorf("%w: duplicate currency %s", apperrors.ErrInvalidCurrencyTable, def.CurrencyCode)
		}
		// Own the tier slice so callers cannot mutate the table through their input.
		def.Tiers = append([]domain.Denomination(nil), def.Tiers...)
		t.byCode[def.CurrencyCode] = &def
		t.codes = append(t.codes, def.CurrencyCode)
	}
	sort.Strings(t.codes)
	return t, nil
}

// Resolve returns the definition registered for code. The returned value is shared and must
// not be modified.
func (t *Table) Resolve(code string) (*domain.CurrencyDefinition, error) {
	def, ok := t.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownCurrency, code)
	}
	return def, nil
}

// Codes returns the registered currency codes in sorted order.
func (t *Table) Codes() []string {
	return append([]string(nil), t.codes...)
}

// List returns copies of every definition, sorted by code.
func (t *Table) List() []domain.CurrencyDefinition {
	out := make([]domain.CurrencyDefinition, 0, len(t.codes))
	for _, code := range t.codes {
		def := *t.byCode[code]
		def.Tiers = append([]domain.Denomination(nil), def.Tiers...)
		out = append(out, def)
	}
	return out
}
