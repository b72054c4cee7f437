package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lpereira/grana"
)

type expenseCmd struct {
	description string
	amount      float64
	category    string
	date        string
	due         string
	method      string
	account     string
	card        string
	typ         string
	paid        bool
	count       int
	mode        string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense, optionally in installments" }
func (*expenseCmd) Usage() string {
	return `grn expense -desc <text> -amount <value> -method <method> (-account <ref> | -card <ref>) [-d <date>] [-due <date>] [-category <cat>] [-type fixed|variable|personal] [-paid] [-n <count> [-mode each|total]]

  Records an expense. Credit purchases take their due date from the
  card's cycle when -due is omitted. With -n greater than 1 the expense
  is split into monthly installments, all created pending.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.description, "desc", "", "Expense description.")
	f.Float64Var(&c.amount, "amount", 0, "Expense amount.")
	f.StringVar(&c.category, "category", "", "Expense category.")
	f.StringVar(&c.date, "d", "", "Entry/purchase date (defaults to today).")
	f.StringVar(&c.due, "due", "", "Due date (defaults to the entry date, or the card cycle for credit).")
	f.StringVar(&c.method, "method", string(grana.Debit), "Payment method (Débito, Crédito, PIX, Boleto, Transferência, Dinheiro).")
	f.StringVar(&c.account, "account", "", "Account paying the expense (non-credit methods).")
	f.StringVar(&c.card, "card", "", "Credit card of the purchase (Crédito only).")
	f.StringVar(&c.typ, "type", "", "Expense type (fixed, variable, personal).")
	f.BoolVar(&c.paid, "paid", false, "Mark the expense already paid (debits the account now).")
	f.IntVar(&c.count, "n", 1, "Number of installments.")
	f.StringVar(&c.mode, "mode", "each", "How to read -amount for installments: each or total.")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, book := LoadBook()

	date, err := parseDateFlag(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitFailure
	}

	expense := grana.Expense{
		Description: c.description,
		Amount:      grana.BRL(c.amount),
		Category:    c.category,
		Date:        date,
		Method:      grana.PaymentMethod(c.method),
		Type:        grana.ExpenseType(c.typ),
	}
	if c.paid {
		expense.Status = grana.StatusPaid
	}

	if expense.Method.IsCredit() {
		card, err := resolveCard(book, c.card)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		expense.CardID = card.ID
		expense.DueDate = grana.InvoiceDueDate(date, card.ClosingDay, card.DueDay)
	} else if c.account != "" {
		account, err := resolveAccount(book, c.account)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		expense.AccountID = account.ID
	}
	if c.due != "" {
		due, err := grana.ParseDate(c.due)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing due date: %v\n", err)
			return subcommands.ExitFailure
		}
		expense.DueDate = due
	}

	rows := []grana.Expense{expense}
	if c.count > 1 {
		mode, err := grana.ParseAmountMode(c.mode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		rows, err = grana.ExpandExpense(expense, c.count, mode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	if err := book.AddExpenses(rows...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := SaveBook(store, book); status != subcommands.ExitSuccess {
		return status
	}
	if len(rows) == 1 {
		fmt.Printf("Expense %q recorded, due %s\n", rows[0].Description, rows[0].DueDate)
	} else {
		fmt.Printf("Expense %q recorded in %d installments, first due %s\n", c.description, len(rows), rows[0].DueDate)
	}
	return subcommands.ExitSuccess
}
