package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lpereira/grana"
	"github.com/lpereira/grana/renderer"
)

type txCmd struct {
	start string
	end   string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list expenses and incomes" }
func (*txCmd) Usage() string {
	return `grn tx [-s <start_date>] [-d <end_date>]

  Lists transactions chronologically, optionally restricted to a date range.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.start, "s", "", "The start date for a custom range.")
	f.StringVar(&p.end, "d", "", "The end date for the range.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, book := LoadBook()
	book.SortTransactions()

	var start, end grana.Date
	var err error
	if p.start != "" {
		if start, err = grana.ParseDate(p.start); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if p.end != "" {
		if end, err = grana.ParseDate(p.end); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	inRange := func(d grana.Date) bool {
		if !start.IsZero() && d.Before(start) {
			return false
		}
		if !end.IsZero() && d.After(end) {
			return false
		}
		return true
	}

	var expenses []grana.Expense
	book.AllExpenses()(func(e grana.Expense) bool {
		if inRange(e.Date) {
			expenses = append(expenses, e)
		}
		return true
	})
	var incomes []grana.Income
	book.AllIncomes()(func(in grana.Income) bool {
		if inRange(in.Date) {
			incomes = append(incomes, in)
		}
		return true
	})

	printMarkdown(renderer.Transactions(book, expenses, incomes))
	return subcommands.ExitSuccess
}
