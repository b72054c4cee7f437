package grana

import (
	"fmt"

	"github.com/google/uuid"
)

// AmountMode tells the expander how to interpret the base amount of an
// installment plan.
type AmountMode int

const (
	// PerInstallment means the base amount is the value of each installment.
	PerInstallment AmountMode = iota
	// TotalAmount means the base amount is the plan total, divided by the
	// installment count. No cross-installment rounding correction is
	// applied; last-cent drift is accepted.
	TotalAmount
)

// ParseAmountMode parses a string into an AmountMode.
func ParseAmountMode(s string) (AmountMode, error) {
	switch s {
	case "each":
		return PerInstallment, nil
	case "total":
		return TotalAmount, nil
	default:
		return 0, fmt.Errorf("unknown amount mode: %q (want each or total)", s)
	}
}

func installmentAmount(base Money, n int, mode AmountMode) Money {
	if mode == TotalAmount {
		return base.DivN(n)
	}
	return base
}

// ExpandExpense produces the n rows of an installment plan from a base
// expense. Row i keeps the base fields with its date and due date
// advanced i calendar months, its description suffixed "(i/n)", and the
// shared group id linking the siblings. Every generated row starts
// pending, whatever status the base carried: future-dated installments
// are not realized yet, and honoring a caller's "paid" on the first row
// would leave a balance effect the engine never applied.
func ExpandExpense(base Expense, n int, mode AmountMode) ([]Expense, error) {
	if n < 1 {
		return nil, fmt.Errorf("installment count must be at least 1, got %d", n)
	}
	amount := installmentAmount(base.Amount, n, mode)
	group := uuid.NewString()

	rows := make([]Expense, 0, n)
	for i := 0; i < n; i++ {
		row := base
		row.ID = uuid.NewString()
		row.Amount = amount
		row.Date = base.Date.AddMonths(i)
		row.DueDate = base.DueDate.AddMonths(i)
		row.Description = fmt.Sprintf("%s (%d/%d)", base.Description, i+1, n)
		row.Status = StatusPending
		row.Installments = true
		row.InstallmentNumber = i + 1
		row.TotalInstallments = n
		row.InstallmentGroupID = group
		rows = append(rows, row)
	}
	return rows, nil
}

// ExpandIncome is the income counterpart of ExpandExpense, with the same
// dating, linkage and forced-pending policy.
func ExpandIncome(base Income, n int, mode AmountMode) ([]Income, error) {
	if n < 1 {
		return nil, fmt.Errorf("installment count must be at least 1, got %d", n)
	}
	amount := installmentAmount(base.Amount, n, mode)
	group := uuid.NewString()

	rows := make([]Income, 0, n)
	for i := 0; i < n; i++ {
		row := base
		row.ID = uuid.NewString()
		row.Amount = amount
		row.Date = base.Date.AddMonths(i)
		if !base.CompetenceDate.IsZero() {
			row.CompetenceDate = base.CompetenceDate.AddMonths(i)
		}
		row.Description = fmt.Sprintf("%s (%d/%d)", base.Description, i+1, n)
		row.Status = StatusPending
		row.Installments = true
		row.InstallmentNumber = i + 1
		row.TotalInstallments = n
		row.InstallmentGroupID = group
		rows = append(rows, row)
	}
	return rows, nil
}
