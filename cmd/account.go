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

type accountCmd struct {
	id         string
	name       string
	typ        string
	initial    float64
	yieldRate  float64
	yieldIndex string
}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "create or edit an account" }
func (*accountCmd) Usage() string {
	return `grn account -name <name> [-type <type>] [-initial <amount>] [-yield-rate <pct>] [-yield-index <CDI|SELIC|POUPANCA>] [-id <id>]

  Creates an account, or edits the account with the given id.
`
}

func (c *accountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the account to edit. Empty creates a new account.")
	f.StringVar(&c.name, "name", "", "Account name.")
	f.StringVar(&c.typ, "type", "", "Free-text account type (corrente, investimento...).")
	f.Float64Var(&c.initial, "initial", 0, "Initial balance, used only at creation.")
	f.Float64Var(&c.yieldRate, "yield-rate", 0, "Monthly yield rate in percent.")
	f.StringVar(&c.yieldIndex, "yield-index", "", "Yield index the account follows.")
}

func (c *accountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, book := LoadBook()

	var account grana.Account
	if c.id != "" {
		existing := book.Account(c.id)
		if existing == nil {
			fmt.Fprintf(os.Stderr, "Error: could not find account %q\n", c.id)
			return subcommands.ExitFailure
		}
		account = *existing
		if c.name != "" {
			account.Name = c.name
		}
		if c.typ != "" {
			account.Type = c.typ
		}
	} else {
		account = grana.NewAccount(c.name, c.typ, grana.BRL(c.initial))
	}
	if c.yieldRate != 0 {
		account.YieldRate = decimal.NewFromFloat(c.yieldRate)
	}
	if c.yieldIndex != "" {
		account.YieldIndex = c.yieldIndex
	}

	if err := book.UpsertAccount(account); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := SaveBook(store, book); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Account %q saved (%s)\n", account.Name, account.ID)
	return subcommands.ExitSuccess
}

type rmAccountCmd struct{}

func (*rmAccountCmd) Name() string     { return "rm-account" }
func (*rmAccountCmd) Synopsis() string { return "delete an account" }
func (*rmAccountCmd) Usage() string {
	return `grn rm-account <id-or-name>

  Deletes an account. Transactions that reference it are kept and will
  render against a deleted-account label.
`
}

func (*rmAccountCmd) SetFlags(*flag.FlagSet) {}

func (c *rmAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: rm-account takes exactly one account")
		return subcommands.ExitUsageError
	}
	store, book := LoadBook()
	account, err := resolveAccount(book, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	name := account.Name
	book.DeleteAccount(account.ID)
	if status := SaveBook(store, book); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Account %q deleted\n", name)
	return subcommands.ExitSuccess
}
