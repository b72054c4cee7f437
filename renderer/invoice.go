package renderer

import (
	"fmt"
	"strings"

	"github.com/lpereira/grana"
)

// Invoices renders the open monthly invoices of one credit card.
func Invoices(b *grana.Book, cardID string, invoices []grana.Invoice) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s invoices\n", CardName(b, cardID))
	if len(invoices) == 0 {
		sb.WriteString("\nNo open invoices.\n")
		return sb.String()
	}
	for _, inv := range invoices {
		fmt.Fprintf(&sb, "\n## %s (total %s)\n\n", inv.Month, inv.Total)
		sb.WriteString("| Due | Description | Amount |\n|---|---|--:|\n")
		for _, e := range inv.Expenses {
			fmt.Fprintf(&sb, "| %s | %s | %s |\n", e.DueDate, e.Description, e.Amount)
		}
	}
	return sb.String()
}
