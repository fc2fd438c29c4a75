package currencytable_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/till_reconciliation_app/internal/apperrors"
	"github.com/SscSPs/till_reconciliation_app/internal/core/currencytable"
	"github.com/SscSPs/till_reconciliation_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_USD(t *testing.T) {
	table, err := currencytable.Default()
	require.NoError(t, err)

	def, err := table.Resolve("USD")
	require.NoError(t, err)

	assert.Equal(t, "$", def.Symbol)
	assert.Equal(t, 2, def.Fraction)
	require.Len(t, def.Tiers, 10)

	wantValues := []int64{10000, 5000, 2000, 1000, 500, 100, 25, 10, 5, 1}
	for i, tier := range def.Tiers {
		assert.Equal(t, wantValues[i], tier.FaceValue, tier.Name)
		assert.Equal(t, i >= 3, tier.EligibleForDrawer, tier.Name)
		assert.Equal(t, i >= 6, tier.Coin, tier.Name)
	}
	assert.Equal(t, "Quarters", def.Tiers[6].Name)
}

func TestDefault_AllTablesValid(t *testing.T) {
	table, err := currencytable.Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"CAD", "EUR", "GBP", "USD"}, table.Codes())
	for _, def := range table.List() {
		assert.NoError(t, def.Validate(), def.CurrencyCode)
	}
}

func TestResolve_UnknownAndCase(t *testing.T) {
	table, err := currencytable.Default()
	require.NoError(t, err)

	_, err = table.Resolve("JPY")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)

	def, err := table.Resolve(" eur ")
	require.NoError(t, err)
	assert.Equal(t, "EUR", def.CurrencyCode)
}

func TestList_ReturnsCopies(t *testing.T) {
	table, err := currencytable.Default()
	require.NoError(t, err)

	list := table.List()
	list[0].Tiers[0].FaceValue = 1

	def, err := table.Resolve(list[0].CurrencyCode)
	require.NoError(t, err)
	assert.NotEqual(t, int64(1), def.Tiers[0].FaceValue)
}

func TestNew_RejectsDuplicatesAndInvalid(t *testing.T) {
	def := domain.CurrencyDefinition{
		CurrencyCode: "TST",
		Fraction:     2,
		Tiers:        []domain.Denomination{{Name: "one", FaceValue: 100, EligibleForDrawer: true}},
	}

	_, err := currencytable.New(def, def)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCurrencyTable)

	bad := def
	bad.Tiers = []domain.Denomination{{Name: "one", FaceValue: 100}}
	_, err = currencytable.New(bad)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCurrencyTable)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{
			name: "explicit fraction for a local scrip",
			yaml: `
currencies:
  - code: XTS
    symbol: "¤"
    fraction: 0
    tiers:
      - { name: "10", value: "10" }
      - { name: "1", value: "1", drawer: true }
`,
		},
		{name: "empty", yaml: `currencies: []`, wantErr: true},
		{name: "not yaml", yaml: `currencies: [`, wantErr: true},
		{
			name: "value below the minor unit",
			yaml: `
currencies:
  - code: USD
    tiers:
      - { name: "mill", value: "0.001", drawer: true }
`,
			wantErr: true,
		},
		{
			name: "bill marked as a coin",
			yaml: `
currencies:
  - code: USD
    tiers:
      - { name: "$10", value: "10", drawer: true, coin: true }
      - { name: "Pennies", value: "0.01", drawer: true, coin: true }
`,
			wantErr: true,
		},
		{
			name: "change tier not marked as a coin",
			yaml: `
currencies:
  - code: USD
    tiers:
      - { name: "$1", value: "1", drawer: true }
      - { name: "Quarters", value: "0.25", drawer: true }
`,
			wantErr: true,
		},
		{
			name: "bad decimal",
			yaml: `
currencies:
  - code: USD
    tiers:
      - { name: "x", value: "ten", drawer: true }
`,
			wantErr: true,
		},
		{
			name: "non ISO code without fraction",
			yaml: `
currencies:
  - code: ZZZ
    tiers:
      - { name: "x", value: "1", drawer: true }
`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := currencytable.Parse([]byte(tt.yaml))
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidCurrencyTable)
				return
			}
			require.NoError(t, err)
			def, err := table.Resolve("XTS")
			require.NoError(t, err)
			assert.Equal(t, 0, def.Fraction)
			assert.Equal(t, int64(10), def.Tiers[0].FaceValue)
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	content := `
currencies:
  - code: USD
    tiers:
      - { name: "$1", value: "1", drawer: true }
      - { name: "Pennies", value: "0.01", drawer: true, coin: true }
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	table, err := currencytable.Load(path)
	require.NoError(t, err)

	def, err := table.Resolve("USD")
	require.NoError(t, err)
	assert.Equal(t, "$", def.Symbol, "symbol falls back to the ISO grapheme")
	assert.Len(t, def.Tiers, 2)

	_, err = currencytable.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	builtin, err := currencytable.Load("")
	require.NoError(t, err)
	assert.Len(t, builtin.Codes(), 4)
}
