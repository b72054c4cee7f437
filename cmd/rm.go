package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rmCmd struct {
	kind string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete expenses or incomes" }
func (*rmCmd) Usage() string {
	return `grn rm -kind expense|income <id> [<id>...]

  Deletes the listed records. A paid expense refunds its account, a
  received income debits it back, before the record is removed.
  Unknown ids are ignored.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "expense", "Kind of record to delete: expense or income.")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: rm takes at least one id")
		return subcommands.ExitUsageError
	}
	store, book := LoadBook()

	switch c.kind {
	case "expense":
		for _, id := range f.Args() {
			book.DeleteExpense(id)
		}
	case "income":
		book.DeleteIncomes(f.Args())
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown kind %q\n", c.kind)
		return subcommands.ExitUsageError
	}

	if status := SaveBook(store, book); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Deleted %d %s record(s)\n", f.NArg(), c.kind)
	return subcommands.ExitSuccess
}
