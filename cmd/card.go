package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/lpereira/grana"
)

type cardCmd struct {
	id      string
	name    string
	brand   string
	closing int
	due     int
	limit   float64
}

func (*cardCmd) Name() string     { return "card" }
func (*cardCmd) Synopsis() string { return "create or edit a credit card" }
func (*cardCmd) Usage() string {
	return `grn card -name <name> -closing <1-31> -due <1-31> [-brand <brand>] [-limit <amount>] [-id <id>]

  Creates a credit card, or edits the card with the given id.
`
}

func (c *cardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the card to edit. Empty creates a new card.")
	f.StringVar(&c.name, "name", "", "Card name.")
	f.StringVar(&c.brand, "brand", "", "Card brand (Visa, Mastercard...).")
	f.IntVar(&c.closing, "closing", 0, "Day of month the invoice closes.")
	f.IntVar(&c.due, "due", 0, "Day of month the invoice is due.")
	f.Float64Var(&c.limit, "limit", 0, "Optional credit limit.")
}

func (c *cardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, book := LoadBook()

	card := grana.CreditCard{
		ID:         c.id,
		Name:       c.name,
		Brand:      c.brand,
		ClosingDay: c.closing,
		DueDay:     c.due,
	}
	if c.limit != 0 {
		card.Limit = grana.BRL(c.limit)
	}
	if card.ID == "" {
		card.ID = uuid.NewString()
	}

	card, err := card.Validate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if existing := book.Card(card.ID); existing != nil {
		*existing = card
	} else {
		book.Cards = append(book.Cards, card)
	}
	if status := SaveBook(store, book); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Card %q saved (closes %d, due %d)\n", card.Name, card.ClosingDay, card.DueDay)
	return subcommands.ExitSuccess
}
