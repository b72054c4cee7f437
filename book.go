package grana

import (
	"slices"
)

// Book is the whole ledger aggregate. It is the explicit state passed
// into and returned from every engine operation; the host application
// owns persistence and writes the book through after each call.
//
// There is exactly one logical writer: operations are synchronous and
// atomic by construction (whole-aggregate mutation before the caller
// observes anything). A multi-process host must add its own
// single-writer queue or versioning; the book itself has none.
type Book struct {
	Accounts []Account
	Cards    []CreditCard
	Expenses []Expense
	Incomes  []Income

	AccountTypes     []string
	IncomeCategories []string

	Company Company
	Users   []User
	Session Session
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{}
}

// Account returns the account with this id, or nil if unknown. Accounts
// are deletable while still referenced, so callers must treat a nil
// result as a dangling reference, not an error.
func (b *Book) Account(id string) *Account {
	for i := range b.Accounts {
		if b.Accounts[i].ID == id {
			return &b.Accounts[i]
		}
	}
	return nil
}

// Card returns the credit card with this id, or nil if unknown.
func (b *Book) Card(id string) *CreditCard {
	for i := range b.Cards {
		if b.Cards[i].ID == id {
			return &b.Cards[i]
		}
	}
	return nil
}

// Expense returns the expense with this id, or nil if unknown.
func (b *Book) Expense(id string) *Expense {
	for i := range b.Expenses {
		if b.Expenses[i].ID == id {
			return &b.Expenses[i]
		}
	}
	return nil
}

// Income returns the income with this id, or nil if unknown.
func (b *Book) Income(id string) *Income {
	for i := range b.Incomes {
		if b.Incomes[i].ID == id {
			return &b.Incomes[i]
		}
	}
	return nil
}

// AllExpenses returns an iterator over expenses accepted by any filter.
// With no filter every expense is yielded, in stored order.
func (b *Book) AllExpenses(filters ...func(Expense) bool) func(yield func(Expense) bool) {
	return func(yield func(Expense) bool) {
		for _, e := range b.Expenses {
			if !accepted(e, filters) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// AllIncomes returns an iterator over incomes accepted by any filter.
func (b *Book) AllIncomes(filters ...func(Income) bool) func(yield func(Income) bool) {
	return func(yield func(Income) bool) {
		for _, i := range b.Incomes {
			if !accepted(i, filters) {
				continue
			}
			if !yield(i) {
				return
			}
		}
	}
}

func accepted[T any](v T, filters []func(T) bool) bool {
	if len(filters) == 0 {
		return true
	}
	for _, f := range filters {
		if f(v) {
			return true
		}
	}
	return false
}

// ByCard returns a predicate that filters expenses by credit card.
func ByCard(cardID string) func(Expense) bool {
	return func(e Expense) bool { return e.CardID == cardID }
}

// ByExpenseStatus returns a predicate that filters expenses by status.
func ByExpenseStatus(s Status) func(Expense) bool {
	return func(e Expense) bool { return e.Status == s }
}

// ByGroup returns a predicate that filters expenses by installment group.
func ByGroup(groupID string) func(Expense) bool {
	return func(e Expense) bool { return e.InstallmentGroupID == groupID }
}

// SortTransactions orders expenses and incomes chronologically. The sort
// is stable: records on the same day keep their relative order.
func (b *Book) SortTransactions() {
	slices.SortStableFunc(b.Expenses, func(x, y Expense) int {
		switch {
		case x.Date.Before(y.Date):
			return -1
		case x.Date.After(y.Date):
			return 1
		}
		return 0
	})
	slices.SortStableFunc(b.Incomes, func(x, y Income) int {
		switch {
		case x.Date.Before(y.Date):
			return -1
		case x.Date.After(y.Date):
			return 1
		}
		return 0
	})
}
