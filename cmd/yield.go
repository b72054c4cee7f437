package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lpereira/grana"
	"github.com/shopspring/decimal"
)

type yieldCmd struct {
	account string
	rate    float64
	date    string
}

func (*yieldCmd) Name() string     { return "yield" }
func (*yieldCmd) Synopsis() string { return "credit an account with one month of yield" }
func (*yieldCmd) Usage() string {
	return `grn yield -account <ref> [-rate <pct>] [-d <date>]

  Credits the account with rate percent of its current balance and
  records the new balance in its history. Without -rate, the account's
  fixed yield rate is used, or the latest published rate of its yield
  index (fetched from the Banco Central SGS series).
`
}

func (c *yieldCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account receiving the yield.")
	f.Float64Var(&c.rate, "rate", 0, "Monthly rate in percent. Overrides the account settings.")
	f.StringVar(&c.date, "d", "", "Date of the yield entry (defaults to today).")
}

func (c *yieldCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, book := LoadBook()

	account, err := resolveAccount(book, c.account)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	on, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitFailure
	}

	rate := decimal.NewFromFloat(c.rate)
	switch {
	case !rate.IsZero():
		// explicit rate always wins
	case !account.YieldRate.IsZero():
		rate = account.YieldRate
	case account.YieldIndex != "":
		rate, err = grana.IndexRate(account.YieldIndex)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching %s rate, pass -rate explicitly: %v\n", account.YieldIndex, err)
			return subcommands.ExitFailure
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: account %q has no yield settings, pass -rate\n", account.Name)
		return subcommands.ExitUsageError
	}

	gain, err := book.RecordYield(account.ID, on, rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := SaveBook(store, book); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Yield of %s credited to %q (rate %s%%), balance now %s\n", gain, account.Name, rate, account.CurrentBalance)
	return subcommands.ExitSuccess
}
