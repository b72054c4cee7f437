package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/lpereira/grana/renderer"
)

type invoicesCmd struct {
	card string
}

func (*invoicesCmd) Name() string     { return "invoices" }
func (*invoicesCmd) Synopsis() string { return "list the open invoices of a credit card" }
func (*invoicesCmd) Usage() string {
	return `grn invoices -card <ref>

  Groups the card's pending purchases into monthly invoices.
`
}

func (c *invoicesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.card, "card", "", "Credit card to report on.")
}

func (c *invoicesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, book := LoadBook()

	card, err := resolveCard(book, c.card)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Invoices(book, card.ID, book.Invoices(card.ID)))
	return subcommands.ExitSuccess
}
