// Package cmd implements the CLI application to manage the book.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/lpereira/grana"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok
// to use global variables.

var dataDir = flag.String("data-dir", ".grana", "Path to the folder holding the book's data files")

// LoadBook opens the store and reads the whole book. Loading is
// best-effort: missing or corrupt collections come back empty.
func LoadBook() (*grana.Store, *grana.Book) {
	store := grana.NewStore(*dataDir)
	return store, store.Load()
}

// SaveBook writes the book through to disk after an engine call.
func SaveBook(store *grana.Store, b *grana.Book) subcommands.ExitStatus {
	if err := store.Save(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal. If the renderer
// fails the raw markdown is still printed.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// resolveAccount finds an account by id or name.
func resolveAccount(b *grana.Book, ref string) (*grana.Account, error) {
	if acc := b.Account(ref); acc != nil {
		return acc, nil
	}
	for i := range b.Accounts {
		if b.Accounts[i].Name == ref {
			return &b.Accounts[i], nil
		}
	}
	return nil, fmt.Errorf("could not find account %q", ref)
}

// resolveCard finds a credit card by id or name.
func resolveCard(b *grana.Book, ref string) (*grana.CreditCard, error) {
	if card := b.Card(ref); card != nil {
		return card, nil
	}
	for i := range b.Cards {
		if b.Cards[i].Name == ref {
			return &b.Cards[i], nil
		}
	}
	return nil, fmt.Errorf("could not find card %q", ref)
}

// parseDateFlag parses an optional date flag, defaulting to today.
func parseDateFlag(value string) (grana.Date, error) {
	if value == "" {
		return grana.Today(), nil
	}
	return grana.ParseDate(value)
}
