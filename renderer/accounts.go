package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/lpereira/grana"
)

// Accounts renders the accounts table with current balances.
func Accounts(b *grana.Book) string {
	var sb strings.Builder
	sb.WriteString("# Accounts\n\n")
	if len(b.Accounts) == 0 {
		sb.WriteString("No accounts yet.\n")
		return sb.String()
	}
	sb.WriteString("| Account | Type | Initial | Current |\n")
	sb.WriteString("|---|---|--:|--:|\n")
	for _, a := range b.Accounts {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n", a.Name, a.Type, a.InitialBalance, a.CurrentBalance)
	}

	ConditionalBlock(&sb, func(w io.Writer) bool {
		printed := false
		for _, a := range b.Accounts {
			if a.YieldIndex == "" && a.YieldRate.IsZero() {
				continue
			}
			if !printed {
				fmt.Fprintf(w, "\n## Yield\n\n| Account | Index | Rate %%/mo |\n|---|---|--:|\n")
				printed = true
			}
			fmt.Fprintf(w, "| %s | %s | %s |\n", a.Name, a.YieldIndex, a.YieldRate)
		}
		return printed
	})
	return sb.String()
}

// BalanceHistory renders the dated balance snapshots of one account.
func BalanceHistory(a grana.Account) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s balance history\n\n", a.Name)
	if len(a.BalanceHistory) == 0 {
		sb.WriteString("No history recorded.\n")
		return sb.String()
	}
	sb.WriteString("| Date | Balance |\n|---|--:|\n")
	for _, p := range a.BalanceHistory {
		fmt.Fprintf(&sb, "| %s | %s |\n", p.Date, p.Value)
	}
	return sb.String()
}
