package grana

import (
	"slices"
	"strings"
)

// InvoiceDueDate computes the due date a credit purchase carries, given
// the card's closing and due days.
//
// A purchase on or after the closing day belongs to the next billing
// cycle. When the due day number precedes the closing day number
// (e.g. closes on the 25th, due on the 5th) the due date always lands
// in the calendar month after the cycle's nominal month. A due day
// past the end of the target month rolls into the following month,
// per the Date normalization policy.
func InvoiceDueDate(purchase Date, closingDay, dueDay int) Date {
	target := purchase
	if purchase.Day() >= closingDay {
		target = target.AddMonths(1)
	}
	if dueDay < closingDay {
		target = target.AddMonths(1)
	}
	return target.WithDay(dueDay)
}

// Invoice is one monthly bucket of open credit purchases for a card.
type Invoice struct {
	Month    string // "2006-01" key of the due month
	CardID   string
	Expenses []Expense
	Total    Money
}

// Invoices groups the card's pending credit purchases into monthly
// invoices keyed by due month. Buckets come out ascending by month,
// rows within a bucket ascending by due date.
func (b *Book) Invoices(cardID string) []Invoice {
	buckets := make(map[string][]Expense)
	b.AllExpenses(ByCard(cardID))(func(e Expense) bool {
		if !e.Method.IsCredit() || e.Status != StatusPending {
			return true
		}
		key := e.DueDate.MonthKey()
		buckets[key] = append(buckets[key], e)
		return true
	})

	invoices := make([]Invoice, 0, len(buckets))
	for month, expenses := range buckets {
		slices.SortStableFunc(expenses, func(x, y Expense) int {
			switch {
			case x.DueDate.Before(y.DueDate):
				return -1
			case x.DueDate.After(y.DueDate):
				return 1
			}
			return 0
		})
		var total Money
		for _, e := range expenses {
			total = total.Add(e.Amount)
		}
		invoices = append(invoices, Invoice{Month: month, CardID: cardID, Expenses: expenses, Total: total})
	}
	slices.SortFunc(invoices, func(x, y Invoice) int { return strings.Compare(x.Month, y.Month) })
	return invoices
}

// ExpenseIDs returns the ids of the invoice rows, the shape PayInvoice expects.
func (inv Invoice) ExpenseIDs() []string {
	ids := make([]string, 0, len(inv.Expenses))
	for _, e := range inv.Expenses {
		ids = append(ids, e.ID)
	}
	return ids
}
