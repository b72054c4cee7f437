package renderer

import (
	"fmt"
	"strings"

	"github.com/lpereira/grana"
)

// Expense renders a single expense row to a string.
func Expense(b *grana.Book, e grana.Expense) string {
	target := AccountName(b, e.AccountID)
	if e.Method.IsCredit() {
		target = CardName(b, e.CardID)
	}
	return fmt.Sprintf("%s %s %s via %s (%s, %s)", e.DueDate, e.Description, e.Amount, e.Method, target, e.Status)
}

// Income renders a single income row to a string.
func Income(b *grana.Book, in grana.Income) string {
	return fmt.Sprintf("%s %s %s into %s (%s)", in.Date, in.Description, in.Amount, AccountName(b, in.AccountID), in.Status)
}

// Transactions renders the expense and income listings as markdown.
func Transactions(b *grana.Book, expenses []grana.Expense, incomes []grana.Income) string {
	var sb strings.Builder
	sb.WriteString("# Transactions\n")
	if len(expenses) > 0 {
		sb.WriteString("\n## Expenses\n\n| Due | Description | Amount | Method | Paid from | Status |\n|---|---|--:|---|---|---|\n")
		for _, e := range expenses {
			target := AccountName(b, e.AccountID)
			if e.Method.IsCredit() {
				target = CardName(b, e.CardID)
			}
			fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s | %s |\n", e.DueDate, e.Description, e.Amount, e.Method, target, e.Status)
		}
	}
	if len(incomes) > 0 {
		sb.WriteString("\n## Incomes\n\n| Date | Description | Amount | Account | Status |\n|---|---|--:|---|---|\n")
		for _, in := range incomes {
			fmt.Fprintf(&sb, "| %s | %s | %s | %s | %s |\n", in.Date, in.Description, in.Amount, AccountName(b, in.AccountID), in.Status)
		}
	}
	if len(expenses) == 0 && len(incomes) == 0 {
		sb.WriteString("\nNo transactions.\n")
	}
	return sb.String()
}
