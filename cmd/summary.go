package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lpereira/grana/renderer"
)

type summaryCmd struct {
	history string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display accounts and balances" }
func (*summaryCmd) Usage() string {
	return `grn summary [-history <account>]

  Displays the accounts table, or the balance history of one account.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.history, "history", "", "Show the balance history of this account instead.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, book := LoadBook()

	if c.history != "" {
		account, err := resolveAccount(book, c.history)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.BalanceHistory(*account))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.Accounts(book))
	return subcommands.ExitSuccess
}
