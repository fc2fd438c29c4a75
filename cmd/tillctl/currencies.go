package main

import (
	"context"
	"flag"
	"os"

	"github.com/SscSPs/till_reconciliation_app/internal/core/services"
	"github.com/SscSPs/till_reconciliation_app/internal/dto"
	"github.com/google/subcommands"
)

type currenciesCmd struct {
	code   string
	asJSON bool
	raw    bool
}

func (*currenciesCmd) Name() string     { return "currencies" }
func (*currenciesCmd) Synopsis() string { return "list supported currencies or show one denomination table" }
func (*currenciesCmd) Usage() string {
	return `tillctl currencies [-code <code>] [-json] [-raw]
`
}

func (c *currenciesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "code", "", "Show the denominations of this currency")
	f.BoolVar(&c.asJSON, "json", false, "Print as JSON")
	f.BoolVar(&c.raw, "raw", false, "Print markdown without terminal styling")
}

func (c *currenciesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	table, err := openTable()
	if err != nil {
		fail("loading currency tables: %v", err)
		return subcommands.ExitFailure
	}
	svc := services.NewReconciliationService(table)

	if c.code == "" {
		defs := svc.ListCurrencies(ctx)
		if c.asJSON {
			return exitFor(printJSON(os.Stdout, dto.ToListCurrenciesResponse(defs)))
		}
		printMarkdown(os.Stdout, currencyListMarkdown(defs), c.raw)
		return subcommands.ExitSuccess
	}

	def, err := svc.GetCurrency(ctx, c.code)
	if err != nil {
		fail("%v", err)
		return subcommands.ExitUsageError
	}
	if c.asJSON {
		return exitFor(printJSON(os.Stdout, dto.ToCurrencyResponse(def)))
	}
	printMarkdown(os.Stdout, legendMarkdown(def), c.raw)
	return subcommands.ExitSuccess
}

func exitFor(err error) subcommands.ExitStatus {
	if err != nil {
		fail("%v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
