package grana

import (
	"fmt"
	"testing"
	"time"
)

func baseInstallmentExpense() Expense {
	return Expense{
		Description: "notebook",
		Amount:      BRL(1000),
		Date:        NewDate(2025, time.January, 10),
		DueDate:     NewDate(2025, time.February, 5),
		Method:      Credit,
		CardID:      "card1",
	}
}

func TestExpandExpense_totalAmountSumsToBase(t *testing.T) {
	rows, err := ExpandExpense(baseInstallmentExpense(), 4, TotalAmount)
	if err != nil {
		t.Fatalf("ExpandExpense failed: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expanded into %d rows, want 4", len(rows))
	}
	sum := Money{}
	for _, row := range rows {
		if !row.Amount.Equal(BRL(250)) {
			t.Errorf("installment amount = %v, want %v", row.Amount, BRL(250))
		}
		sum = sum.Add(row.Amount)
	}
	if !sum.Equal(BRL(1000)) {
		t.Errorf("installments sum to %v, want %v", sum, BRL(1000))
	}
}

func TestExpandExpense_perInstallmentKeepsAmount(t *testing.T) {
	rows, err := ExpandExpense(baseInstallmentExpense(), 3, PerInstallment)
	if err != nil {
		t.Fatalf("ExpandExpense failed: %v", err)
	}
	for _, row := range rows {
		if !row.Amount.Equal(BRL(1000)) {
			t.Errorf("installment amount = %v, want %v", row.Amount, BRL(1000))
		}
	}
}

func TestExpandExpense_statusForcedPending(t *testing.T) {
	base := baseInstallmentExpense()
	base.Status = StatusPaid
	rows, err := ExpandExpense(base, 3, PerInstallment)
	if err != nil {
		t.Fatalf("ExpandExpense failed: %v", err)
	}
	for i, row := range rows {
		if row.Status != StatusPending {
			t.Errorf("installment %d status = %q, want %q", i+1, row.Status, StatusPending)
		}
	}
}

func TestExpandExpense_datesAndLinkage(t *testing.T) {
	rows, err := ExpandExpense(baseInstallmentExpense(), 3, PerInstallment)
	if err != nil {
		t.Fatalf("ExpandExpense failed: %v", err)
	}

	group := rows[0].InstallmentGroupID
	if group == "" {
		t.Fatal("installment group id is empty")
	}
	seen := make(map[string]bool)
	for i, row := range rows {
		if want := baseInstallmentExpense().Date.AddMonths(i); row.Date != want {
			t.Errorf("installment %d date = %s, want %s", i+1, row.Date, want)
		}
		if want := baseInstallmentExpense().DueDate.AddMonths(i); row.DueDate != want {
			t.Errorf("installment %d due date = %s, want %s", i+1, row.DueDate, want)
		}
		if want := fmt.Sprintf("notebook (%d/3)", i+1); row.Description != want {
			t.Errorf("installment %d description = %q, want %q", i+1, row.Description, want)
		}
		if !row.Installments || row.InstallmentNumber != i+1 || row.TotalInstallments != 3 {
			t.Errorf("installment %d linkage = (%v, %d, %d), want (true, %d, 3)",
				i+1, row.Installments, row.InstallmentNumber, row.TotalInstallments, i+1)
		}
		if row.InstallmentGroupID != group {
			t.Errorf("installment %d group = %q, want %q", i+1, row.InstallmentGroupID, group)
		}
		if seen[row.ID] || row.ID == "" {
			t.Errorf("installment %d id %q is not unique", i+1, row.ID)
		}
		seen[row.ID] = true
	}
}

func TestExpandExpense_endOfMonthRollsForward(t *testing.T) {
	base := baseInstallmentExpense()
	base.Date = NewDate(2025, time.January, 31)
	base.DueDate = base.Date
	rows, err := ExpandExpense(base, 2, PerInstallment)
	if err != nil {
		t.Fatalf("ExpandExpense failed: %v", err)
	}
	// January 31 + 1 month normalizes past February's end.
	if want := NewDate(2025, time.March, 3); rows[1].Date != want {
		t.Errorf("second installment date = %s, want %s", rows[1].Date, want)
	}
}

func TestExpandExpense_rejectsNonPositiveCount(t *testing.T) {
	if _, err := ExpandExpense(baseInstallmentExpense(), 0, PerInstallment); err == nil {
		t.Error("ExpandExpense accepted a zero installment count")
	}
}

func TestExpandIncome(t *testing.T) {
	base := Income{
		Description:    "consultoria",
		Amount:         BRL(900),
		Date:           NewDate(2025, time.April, 1),
		CompetenceDate: NewDate(2025, time.March, 31),
		AccountID:      "acc1",
		Status:         StatusReceived,
	}
	rows, err := ExpandIncome(base, 3, TotalAmount)
	if err != nil {
		t.Fatalf("ExpandIncome failed: %v", err)
	}
	for i, row := range rows {
		if !row.Amount.Equal(BRL(300)) {
			t.Errorf("installment %d amount = %v, want %v", i+1, row.Amount, BRL(300))
		}
		if row.Status != StatusPending {
			t.Errorf("installment %d status = %q, want %q", i+1, row.Status, StatusPending)
		}
		if want := base.CompetenceDate.AddMonths(i); row.CompetenceDate != want {
			t.Errorf("installment %d competence date = %s, want %s", i+1, row.CompetenceDate, want)
		}
	}
}

func TestParseAmountMode(t *testing.T) {
	testCases := []struct {
		in      string
		want    AmountMode
		wantErr bool
	}{
		{in: "each", want: PerInstallment},
		{in: "total", want: TotalAmount},
		{in: "split", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := ParseAmountMode(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseAmountMode(%q) accepted an unknown mode", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAmountMode(%q) failed: %v", tc.in, err)
		} else if got != tc.want {
			t.Errorf("ParseAmountMode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
