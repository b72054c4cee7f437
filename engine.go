package grana

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// This file is the only place allowed to mutate Account.CurrentBalance.
//
// Every operation validates its input before touching the book, applies
// the whole change synchronously, and leaves unrelated records alone.
// The legal status transitions per record are pending -> paid/received
// (realizes the balance effect) and its reverse (undoes it); deletion
// reverses any realized effect first.

// credit adds amount to the account's balance. A missing account is a
// tolerated dangling reference: the mutation is skipped, never an error.
func (b *Book) credit(accountID string, amount Money) {
	if acc := b.Account(accountID); acc != nil {
		acc.CurrentBalance = acc.CurrentBalance.Add(amount)
	}
}

// debit subtracts amount from the account's balance, with the same
// dangling-reference tolerance as credit.
func (b *Book) debit(accountID string, amount Money) {
	if acc := b.Account(accountID); acc != nil {
		acc.CurrentBalance = acc.CurrentBalance.Sub(amount)
	}
}

// AddExpenses validates and appends expenses. A record created already
// paid with a direct payment method debits its account once; credit-card
// purchases never touch a balance at creation.
func (b *Book) AddExpenses(expenses ...Expense) error {
	validated := make([]Expense, 0, len(expenses))
	for _, e := range expenses {
		v, err := e.Validate()
		if err != nil {
			return err
		}
		validated = append(validated, v)
	}
	for _, e := range validated {
		if e.Realized() {
			b.debit(e.AccountID, e.Amount)
		}
		b.Expenses = append(b.Expenses, e)
	}
	return nil
}

// AddIncomes validates and appends incomes, crediting the account for
// records created already received.
func (b *Book) AddIncomes(incomes ...Income) error {
	validated := make([]Income, 0, len(incomes))
	for _, in := range incomes {
		v, err := in.Validate()
		if err != nil {
			return err
		}
		validated = append(validated, v)
	}
	for _, in := range validated {
		if in.Realized() {
			b.credit(in.AccountID, in.Amount)
		}
		b.Incomes = append(b.Incomes, in)
	}
	return nil
}

// UpdateExpense replaces the stored expense with the same id. For
// balances an edit is a delete+create pair: the old record's realized
// effect is reversed, then the new one's is applied.
func (b *Book) UpdateExpense(e Expense) error {
	old := b.Expense(e.ID)
	if old == nil {
		return fmt.Errorf("unknown expense %q", e.ID)
	}
	v, err := e.Validate()
	if err != nil {
		return err
	}
	if old.Realized() {
		b.credit(old.AccountID, old.Amount)
	}
	if v.Realized() {
		b.debit(v.AccountID, v.Amount)
	}
	*b.Expense(v.ID) = v
	return nil
}

// UpdateIncome replaces the stored income with the same id, reversing
// and reapplying realized effects like UpdateExpense.
func (b *Book) UpdateIncome(in Income) error {
	old := b.Income(in.ID)
	if old == nil {
		return fmt.Errorf("unknown income %q", in.ID)
	}
	v, err := in.Validate()
	if err != nil {
		return err
	}
	if old.Realized() {
		b.debit(old.AccountID, old.Amount)
	}
	if v.Realized() {
		b.credit(v.AccountID, v.Amount)
	}
	*b.Income(v.ID) = v
	return nil
}

// DeleteExpense removes the expense, refunding its account first when
// the record had been paid directly. Unknown ids are a no-op, so a
// repeated delete can never refund twice.
func (b *Book) DeleteExpense(id string) {
	e := b.Expense(id)
	if e == nil {
		return
	}
	if e.Realized() {
		b.credit(e.AccountID, e.Amount)
	}
	b.Expenses = slices.DeleteFunc(b.Expenses, func(x Expense) bool { return x.ID == id })
}

// DeleteIncome removes the income, debiting back a received amount
// first. Unknown ids are a no-op.
func (b *Book) DeleteIncome(id string) {
	in := b.Income(id)
	if in == nil {
		return
	}
	if in.Realized() {
		b.debit(in.AccountID, in.Amount)
	}
	b.Incomes = slices.DeleteFunc(b.Incomes, func(x Income) bool { return x.ID == id })
}

// SetIncomeStatus transitions every selected income to the new status.
// Moving to received credits the account, moving back to pending debits
// it. Ids already at the target status are skipped, so the effect can
// never be applied twice.
func (b *Book) SetIncomeStatus(ids []string, status Status) error {
	if status != StatusPending && status != StatusReceived {
		return fmt.Errorf("invalid income status %q", status)
	}
	for _, id := range ids {
		in := b.Income(id)
		if in == nil || in.Status == status {
			continue
		}
		if status == StatusReceived {
			b.credit(in.AccountID, in.Amount)
		} else {
			b.debit(in.AccountID, in.Amount)
		}
		in.Status = status
	}
	return nil
}

// DeleteIncomes reverses every selected received income and then removes
// all selected records in one pass.
func (b *Book) DeleteIncomes(ids []string) {
	selected := make(map[string]bool, len(ids))
	for _, id := range ids {
		selected[id] = true
	}
	for i := range b.Incomes {
		if in := &b.Incomes[i]; selected[in.ID] && in.Realized() {
			b.debit(in.AccountID, in.Amount)
		}
	}
	b.Incomes = slices.DeleteFunc(b.Incomes, func(x Income) bool { return selected[x.ID] })
}

// PayInvoice settles a credit-card invoice: every listed expense is
// marked paid on paidOn, and the caller-computed total is subtracted
// exactly once from the source account. This is the only path by which
// a credit purchase ever reaches a real balance.
func (b *Book) PayInvoice(expenseIDs []string, accountID string, total Money, paidOn Date) error {
	if total.IsNegative() {
		return fmt.Errorf("invoice total must not be negative, got %v", total)
	}
	for _, id := range expenseIDs {
		e := b.Expense(id)
		if e == nil {
			return fmt.Errorf("unknown expense %q", id)
		}
		if !e.Method.IsCredit() {
			return fmt.Errorf("expense %q is not a credit purchase", id)
		}
	}
	if paidOn.IsZero() {
		paidOn = Today()
	}
	for _, id := range expenseIDs {
		e := b.Expense(id)
		e.Status = StatusPaid
		e.PaidOn = paidOn
	}
	b.debit(accountID, total)
	return nil
}

// UpsertAccount validates the account and replaces the stored record
// with the same id, or appends it as a new account.
func (b *Book) UpsertAccount(a Account) error {
	v, err := a.Validate()
	if err != nil {
		return err
	}
	if existing := b.Account(v.ID); existing != nil {
		*existing = v
		return nil
	}
	b.Accounts = append(b.Accounts, v)
	return nil
}

// DeleteAccount removes the account. Deletion never cascades: expenses
// and incomes keep their now-dangling reference, which every reader
// renders as a deleted account.
func (b *Book) DeleteAccount(id string) {
	b.Accounts = slices.DeleteFunc(b.Accounts, func(a Account) bool { return a.ID == id })
}

// RecordYield credits the account with rate percent of its current
// balance and records the resulting balance in its history, updating
// the point in place when one already exists for that date.
func (b *Book) RecordYield(accountID string, on Date, rate decimal.Decimal) (Money, error) {
	acc := b.Account(accountID)
	if acc == nil {
		return Money{}, fmt.Errorf("unknown account %q", accountID)
	}
	if rate.IsZero() {
		return Money{}, fmt.Errorf("yield rate must not be zero")
	}
	if on.IsZero() {
		on = Today()
	}
	gain := acc.CurrentBalance.ApplyRate(rate)
	acc.CurrentBalance = acc.CurrentBalance.Add(gain)

	point := BalancePoint{Date: on, Value: acc.CurrentBalance}
	for i := range acc.BalanceHistory {
		if acc.BalanceHistory[i].Date == on {
			acc.BalanceHistory[i] = point
			return gain, nil
		}
	}
	acc.BalanceHistory = append(acc.BalanceHistory, point)
	slices.SortStableFunc(acc.BalanceHistory, func(x, y BalancePoint) int {
		switch {
		case x.Date.Before(y.Date):
			return -1
		case x.Date.After(y.Date):
			return 1
		}
		return 0
	})
	return gain, nil
}
