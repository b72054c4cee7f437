package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lpereira/grana"
)

type statusCmd struct {
	status string
}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "change the status of incomes in bulk" }
func (*statusCmd) Usage() string {
	return `grn status -s received|pending <income-id> [<income-id>...]

  Transitions the listed incomes. Moving to received credits each
  income's account; moving back to pending debits it. Incomes already
  at the target status are left untouched.
`
}

func (c *statusCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.status, "s", string(grana.StatusReceived), "Target status: received or pending.")
}

func (c *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: status takes at least one income id")
		return subcommands.ExitUsageError
	}
	store, book := LoadBook()

	if err := book.SetIncomeStatus(f.Args(), grana.Status(c.status)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := SaveBook(store, book); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Marked %d income(s) %s\n", f.NArg(), c.status)
	return subcommands.ExitSuccess
}
