package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/SscSPs/till_reconciliation_app/internal/core/currencytable"
	"github.com/SscSPs/till_reconciliation_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCounts(t *testing.T) {
	counts, err := parseCounts("4, 2,10,0,7")
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 2, 10, 0, 7}, counts)

	_, err = parseCounts("3,,1")
	assert.ErrorContains(t, err, "position 2")

	_, err = parseCounts("3,1,")
	assert.ErrorContains(t, err, "position 3")

	_, err = parseCounts("")
	assert.Error(t, err)

	_, err = parseCounts("1,x")
	assert.ErrorContains(t, err, "position 2")
}

func TestReconcileCmd_Request(t *testing.T) {
	c := &reconcileCmd{currency: " usd", target: "100.50", counts: "1,2"}
	req, err := c.request()
	require.NoError(t, err)
	assert.Equal(t, "USD", req.CurrencyCode)
	assert.Equal(t, "100.5", req.DrawerAmount.String())
	assert.Equal(t, []int64{1, 2}, req.Denominations)

	c.counts = "1,,2"
	_, err = c.request()
	assert.Error(t, err)

	c.counts = "1,2"
	c.target = "lots"
	_, err = c.request()
	assert.Error(t, err)
}

func TestReportMarkdown(t *testing.T) {
	table, err := currencytable.Default()
	require.NoError(t, err)
	svc := services.NewReconciliationService(table)

	c := &reconcileCmd{currency: "USD", target: "100", counts: "4,2,10,7,2,17,15,21,10,30"}
	req, err := c.request()
	require.NoError(t, err)
	result, err := svc.Reconcile(context.Background(), req)
	require.NoError(t, err)
	def, err := svc.GetCurrency(context.Background(), "USD")
	require.NoError(t, err)

	md := reportMarkdown(result, def)
	assert.Contains(t, md, "Counted **$803.65**")
	assert.Contains(t, md, "| $100 | 4 | 0 | 4 |")
	assert.Contains(t, md, "| Change | $6.00 | $0.65 |")
	assert.Contains(t, md, "| Total | $100.00 | $703.65 |")
	assert.NotContains(t, md, "over target")
}

func TestLegendAndListMarkdown(t *testing.T) {
	table, err := currencytable.Default()
	require.NoError(t, err)

	def, err := table.Resolve("USD")
	require.NoError(t, err)
	legend := legendMarkdown(def)
	assert.Contains(t, legend, "| 1 | $100 | $100.00 | no | no |")
	assert.Contains(t, legend, "| 10 | Pennies | $0.01 | yes | yes |")

	list := currencyListMarkdown(table.List())
	assert.Contains(t, list, "| USD |")
	assert.Contains(t, list, "| EUR |")
}

func TestPrintMarkdown_Raw(t *testing.T) {
	var buf bytes.Buffer
	printMarkdown(&buf, "# Title\n", true)
	assert.Equal(t, "# Title\n", buf.String())
}
