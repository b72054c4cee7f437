// Package renderer turns book entities into markdown reports for the CLI.
package renderer

import (
	"bytes"
	"io"

	"github.com/lpereira/grana"
)

// DeletedAccount is the fallback label for a dangling account reference.
const DeletedAccount = "Deleted Account"

// DeletedCard is the fallback label for a dangling card reference.
const DeletedCard = "Deleted Card"

// AccountName resolves an account id to a display name. Accounts are
// deletable while referenced, so a missing id renders as DeletedAccount.
func AccountName(b *grana.Book, id string) string {
	if acc := b.Account(id); acc != nil {
		return acc.Name
	}
	return DeletedAccount
}

// CardName resolves a card id to a display name, with the same fallback
// contract as AccountName.
func CardName(b *grana.Book, id string) string {
	if card := b.Card(id); card != nil {
		return card.Name
	}
	return DeletedCard
}

// ConditionalBlock lets you fully write a block and decide at the end to
// print it or not. If the block function returns true, the content is
// printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}
