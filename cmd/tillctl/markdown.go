package main

import (
	"fmt"
	"strings"

	"github.com/SscSPs/till_reconciliation_app/internal/core/domain"
	"github.com/SscSPs/till_reconciliation_app/internal/utils"
)

// reportMarkdown lays out a reconciliation as a per-denomination table followed by the totals.
func reportMarkdown(r *domain.ReconciliationResult, def *domain.CurrencyDefinition) string {
	var b strings.Builder
	money := func(minor int64) string { return utils.FormatMinor(minor, def) }

	fmt.Fprintf(&b, "# Drawer reconciliation (%s)\n\n", r.CurrencyCode)
	fmt.Fprintf(&b, "Counted **%s**, leaving **%s** in the drawer.\n\n", money(r.GrandTotal), money(r.DrawerTarget))

	b.WriteString("| Denomination | Counted | Drawer | Deposit |\n")
	b.WriteString("|---|--:|--:|--:|\n")
	for i, entry := range r.Legend {
		counted := r.Drawer.Denominations[i] + r.Deposit.Denominations[i]
		fmt.Fprintf(&b, "| %s | %d | %d | %d |\n", entry.Name, counted, r.Drawer.Denominations[i], r.Deposit.Denominations[i])
	}

	b.WriteString("\n| | Drawer | Deposit |\n")
	b.WriteString("|---|--:|--:|\n")
	fmt.Fprintf(&b, "| Change | %s | %s |\n", money(r.Drawer.CoinSubtotal), money(r.Deposit.CoinSubtotal))
	fmt.Fprintf(&b, "| Total | %s | %s |\n", money(r.Drawer.Total), money(r.Deposit.Total))

	if r.Overage > 0 {
		fmt.Fprintf(&b, "\n> The drawer is over target by %s: the remaining small denominations cannot make the exact amount.\n", money(r.Overage))
	}
	return b.String()
}

func currencyListMarkdown(defs []domain.CurrencyDefinition) string {
	var b strings.Builder
	b.WriteString("| Code | Name | Symbol | Denominations |\n")
	b.WriteString("|---|---|---|--:|\n")
	for _, def := range defs {
		fmt.Fprintf(&b, "| %s | %s | %s | %d |\n", def.CurrencyCode, def.Name, def.Symbol, len(def.Tiers))
	}
	return b.String()
}

func legendMarkdown(def *domain.CurrencyDefinition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s (%s)\n\n", def.Name, def.CurrencyCode)
	b.WriteString("| # | Denomination | Value | Stays in drawer | Coin |\n")
	b.WriteString("|--:|---|--:|---|---|\n")
	for i, tier := range def.Tiers {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n", i+1, tier.Name, utils.FormatMinor(tier.FaceValue, def), yesNo(tier.EligibleForDrawer), yesNo(tier.Coin))
	}
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
