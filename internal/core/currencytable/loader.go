package currencytable

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/Rhymond/go-money"
	"github.com/SscSPs/till_reconciliation_app/internal/apperrors"
	"github.com/SscSPs/till_reconciliation_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed currencies.yaml
var defaultTables []byte

type fileTier struct {
	Name   string `yaml:"name"`
	Value  string `yaml:"value"`
	Drawer bool   `yaml:"drawer"`
	Coin   bool   `yaml:"coin"`
}

type fileCurrency struct {
	Code     string     `yaml:"code"`
	Symbol   string     `yaml:"symbol"`
	Name     string     `yaml:"name"`
	Fraction *int       `yaml:"fraction"` // Defaults to the ISO 4217 minor unit
	Tiers    []fileTier `yaml:"tiers"`
}

type file struct {
	Currencies []fileCurrency `yaml:"currencies"`
}

// Default builds the table shipped with the application.
func Default() (*Table, error) {
	return Parse(defaultTables)
}

// Load builds a table from a YAML file. An empty path loads the built-in table.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read currency table %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML currency table.
func Parse(data []byte) (*Table, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidCurrencyTable, err)
	}
	if len(f.Currencies) == 0 {
		return nil, fmt.Errorf("%w: no currencies defined", apperrors.ErrInvalidCurrencyTable)
	}

	defs := make([]domain.CurrencyDefinition, 0, len(f.Currencies))
	for _, fc := range f.Currencies {
		def, err := fc.toDomain()
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return New(defs...)
}

func (fc fileCurrency) toDomain() (domain.CurrencyDefinition, error) {
	def := domain.CurrencyDefinition{
		CurrencyCode: fc.Code,
		Symbol:       fc.Symbol,
		Name:         fc.Name,
	}

	if fc.Fraction != nil {
		def.Fraction = *fc.Fraction
	} else {
		iso := money.GetCurrency(fc.Code)
		if iso == nil {
			return def, fmt.Errorf("%w: %q is not an ISO 4217 code, set fraction explicitly", apperrors.ErrInvalidCurrencyTable, fc.Code)
		}
		def.Fraction = iso.Fraction
	}
	if def.Symbol == "" {
		if iso := money.GetCurrency(fc.Code); iso != nil {
			def.Symbol = iso.Grapheme
		}
	}

	def.Tiers = make([]domain.Denomination, 0, len(fc.Tiers))
	for _, ft := range fc.Tiers {
		value, err := decimal.NewFromString(ft.Value)
		if err != nil {
			return def, fmt.Errorf("%w: %s tier %q has invalid value %q", apperrors.ErrInvalidCurrencyTable, fc.Code, ft.Name, ft.Value)
		}
		minor, err := def.ToMinor(value)
		if err != nil {
			return def, fmt.Errorf("%w: %s tier %q: %v", apperrors.ErrInvalidCurrencyTable, fc.Code, ft.Name, err)
		}
		def.Tiers = append(def.Tiers, domain.Denomination{
			Name:              ft.Name,
			FaceValue:         minor,
			EligibleForDrawer: ft.Drawer,
			Coin:              ft.Coin,
		})
	}
	return def, nil
}
