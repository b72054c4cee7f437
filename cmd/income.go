package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lpereira/grana"
)

type incomeCmd struct {
	description string
	amount      float64
	category    string
	date        string
	competence  string
	account     string
	received    bool
	count       int
	mode        string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record an income, optionally in installments" }
func (*incomeCmd) Usage() string {
	return `grn income -desc <text> -amount <value> -account <ref> [-d <date>] [-competence <date>] [-category <cat>] [-received] [-n <count> [-mode each|total]]

  Records an income for an account. With -n greater than 1 the income is
  split into monthly installments, all created pending.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "desc", "", "Income description.")
	f.Float64Var(&c.amount, "amount", 0, "Income amount.")
	f.StringVar(&c.category, "category", "", "Income category.")
	f.StringVar(&c.date, "d", "", "Receipt/cash date (defaults to today).")
	f.StringVar(&c.competence, "competence", "", "Accrual date, independent of the cash date.")
	f.StringVar(&c.account, "account", "", "Account receiving the income.")
	f.BoolVar(&c.received, "received", false, "Mark the income already received (credits the account now).")
	f.IntVar(&c.count, "n", 1, "Number of installments.")
	f.StringVar(&c.mode, "mode", "each", "How to read -amount for installments: each or total.")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, book := LoadBook()

	date, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitFailure
	}

	income := grana.Income{
		Description: c.description,
		Amount:      grana.BRL(c.amount),
		Category:    c.category,
		Date:        date,
	}
	if c.received {
		income.Status = grana.StatusReceived
	}
	if c.competence != "" {
		competence, err := grana.ParseDate(c.competence)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing competence date: %v\n", err)
			return subcommands.ExitFailure
		}
		income.CompetenceDate = competence
	}
	if c.account != "" {
		account, err := resolveAccount(book, c.account)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		income.AccountID = account.ID
	}

	rows := []grana.Income{income}
	if c.count > 1 {
		mode, err := grana.ParseAmountMode(c.mode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		rows, err = grana.ExpandIncome(income, c.count, mode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	if err := book.AddIncomes(rows...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := SaveBook(store, book); status != subcommands.ExitSuccess {
		return status
	}
	if len(rows) == 1 {
		fmt.Printf("Income %q recorded\n", rows[0].Description)
	} else {
		fmt.Printf("Income %q recorded in %d installments\n", c.description, len(rows))
	}
	return subcommands.ExitSuccess
}
