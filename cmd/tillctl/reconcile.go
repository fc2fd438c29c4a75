package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/SscSPs/till_reconciliation_app/internal/apperrors"
	"github.com/SscSPs/till_reconciliation_app/internal/core/services"
	"github.com/SscSPs/till_reconciliation_app/internal/dto"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type reconcileCmd struct {
	currency string
	target   string
	counts   string
	asJSON   bool
	raw      bool
}

func (*reconcileCmd) Name() string     { return "reconcile" }
func (*reconcileCmd) Synopsis() string { return "split a drawer count into drawer and deposit" }
func (*reconcileCmd) Usage() string {
	return `tillctl reconcile -counts <n,n,...> [-currency <code>] [-target <amount>] [-json] [-raw]

  Counts are given per denomination, largest first, as listed by "tillctl currencies -code <code>".
`
}

func (c *reconcileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "USD", "ISO 4217 currency code")
	f.StringVar(&c.target, "target", "100", "Amount to leave in the drawer")
	f.StringVar(&c.counts, "counts", "", "Comma separated count per denomination, largest first")
	f.BoolVar(&c.asJSON, "json", false, "Print the report as JSON")
	f.BoolVar(&c.raw, "raw", false, "Print markdown without terminal styling")
}

func (c *reconcileCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	req, err := c.request()
	if err != nil {
		fail("%v", err)
		return subcommands.ExitUsageError
	}

	table, err := openTable()
	if err != nil {
		fail("loading currency tables: %v", err)
		return subcommands.ExitFailure
	}
	svc := services.NewReconciliationService(table)

	result, err := svc.Reconcile(ctx, req)
	if err != nil {
		fail("%v", err)
		if apperrors.IsInputError(err) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}

	if c.asJSON {
		if err := printJSON(os.Stdout, dto.ReconcileResponse{Submission: dto.ToReconciliationResponse(result)}); err != nil {
			fail("%v", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	def, err := svc.GetCurrency(ctx, result.CurrencyCode)
	if err != nil {
		fail("%v", err)
		return subcommands.ExitFailure
	}
	printMarkdown(os.Stdout, reportMarkdown(result, def), c.raw)
	return subcommands.ExitSuccess
}

func (c *reconcileCmd) request() (dto.ReconcileRequest, error) {
	target, err := decimal.NewFromString(strings.TrimSpace(c.target))
	if err != nil {
		return dto.ReconcileRequest{}, fmt.Errorf("invalid -target %q: %w", c.target, err)
	}
	counts, err := parseCounts(c.counts)
	if err != nil {
		return dto.ReconcileRequest{}, err
	}
	return dto.ReconcileRequest{
		CurrencyCode:  strings.ToUpper(strings.TrimSpace(c.currency)),
		DrawerAmount:  &target,
		Denominations: counts,
	}, nil
}

// parseCounts reads "3,1,10" into a count vector. Every position needs an explicit count.
func parseCounts(s string) ([]int64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("-counts is required")
	}
	parts := strings.Split(s, ",")
	counts := make([]int64, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("missing count at position %d", i+1)
		}
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid count %q at position %d", p, i+1)
		}
		counts[i] = n
	}
	return counts, nil
}
