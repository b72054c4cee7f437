package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type payCmd struct {
	card    string
	month   string
	account string
	date    string
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "pay a credit-card invoice from an account" }
func (*payCmd) Usage() string {
	return `grn pay -card <ref> -account <ref> [-month <2006-01>] [-d <date>]

  Pays one monthly invoice: every purchase in the bucket is marked paid
  and the invoice total is debited once from the account. Defaults to
  the oldest open invoice when -month is omitted.
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.card, "card", "", "Credit card whose invoice is being paid.")
	f.StringVar(&c.account, "account", "", "Account the payment comes out of.")
	f.StringVar(&c.month, "month", "", "Due month of the invoice to pay (defaults to the oldest open one).")
	f.StringVar(&c.date, "d", "", "Effective payment date (defaults to today).")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, book := LoadBook()

	card, err := resolveCard(book, c.card)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	account, err := resolveAccount(book, c.account)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	paidOn, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitFailure
	}

	invoices := book.Invoices(card.ID)
	if len(invoices) == 0 {
		fmt.Fprintf(os.Stderr, "Error: card %q has no open invoice\n", card.Name)
		return subcommands.ExitFailure
	}
	invoice := invoices[0]
	if c.month != "" {
		found := false
		for _, inv := range invoices {
			if inv.Month == c.month {
				invoice, found = inv, true
				break
			}
		}
		if !found {
			fmt.Fprintf(os.Stderr, "Error: card %q has no open invoice for %s\n", card.Name, c.month)
			return subcommands.ExitFailure
		}
	}

	if err := book.PayInvoice(invoice.ExpenseIDs(), account.ID, invoice.Total, paidOn); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := SaveBook(store, book); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Invoice %s of %q paid: %s from %q\n", invoice.Month, card.Name, invoice.Total, account.Name)
	return subcommands.ExitSuccess
}
