package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lpereira/grana"
)

type editCmd struct {
	kind        string
	description string
	amount      float64
	category    string
	date        string
	due         string
	status      string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an expense or income" }
func (*editCmd) Usage() string {
	return `grn edit -kind expense|income <id> [-desc <text>] [-amount <value>] [-category <cat>] [-d <date>] [-due <date>] [-status <status>]

  Edits the record with the given id. Only the flags passed change; for
  balances the edit behaves like deleting the old record and creating
  the new one.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "expense", "Kind of record to edit: expense or income.")
	f.StringVar(&c.description, "desc", "", "New description.")
	f.Float64Var(&c.amount, "amount", 0, "New amount.")
	f.StringVar(&c.category, "category", "", "New category.")
	f.StringVar(&c.date, "d", "", "New entry date.")
	f.StringVar(&c.due, "due", "", "New due date (expenses only).")
	f.StringVar(&c.status, "status", "", "New status.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: edit takes exactly one id")
		return subcommands.ExitUsageError
	}
	store, book := LoadBook()
	id := f.Arg(0)

	var date, due grana.Date
	var err error
	if c.date != "" {
		if date, err = grana.ParseDate(c.date); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if c.due != "" {
		if due, err = grana.ParseDate(c.due); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing due date: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	switch c.kind {
	case "expense":
		existing := book.Expense(id)
		if existing == nil {
			fmt.Fprintf(os.Stderr, "Error: could not find expense %q\n", id)
			return subcommands.ExitFailure
		}
		expense := *existing
		if c.description != "" {
			expense.Description = c.description
		}
		if c.amount != 0 {
			expense.Amount = grana.BRL(c.amount)
		}
		if c.category != "" {
			expense.Category = c.category
		}
		if !date.IsZero() {
			expense.Date = date
		}
		if !due.IsZero() {
			expense.DueDate = due
		}
		if c.status != "" {
			expense.Status = grana.Status(c.status)
		}
		if err := book.UpdateExpense(expense); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	case "income":
		existing := book.Income(id)
		if existing == nil {
			fmt.Fprintf(os.Stderr, "Error: could not find income %q\n", id)
			return subcommands.ExitFailure
		}
		income := *existing
		if c.description != "" {
			income.Description = c.description
		}
		if c.amount != 0 {
			income.Amount = grana.BRL(c.amount)
		}
		if c.category != "" {
			income.Category = c.category
		}
		if !date.IsZero() {
			income.Date = date
		}
		if c.status != "" {
			income.Status = grana.Status(c.status)
		}
		if err := book.UpdateIncome(income); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown kind %q\n", c.kind)
		return subcommands.ExitUsageError
	}

	if status := SaveBook(store, book); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("%s %s updated\n", c.kind, id)
	return subcommands.ExitSuccess
}
