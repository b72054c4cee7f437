package grana

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestStore_roundTrip(t *testing.T) {
	book := NewBook()
	book.Accounts = append(book.Accounts, Account{
		ID:             "acc1",
		Name:           "Investimentos",
		Type:           "investimento",
		InitialBalance: BRL(1000),
		CurrentBalance: BRL(1011),
		YieldRate:      decimal.NewFromFloat(1.1),
		YieldIndex:     "CDI",
		BalanceHistory: []BalancePoint{
			{Date: NewDate(2025, time.March, 31), Value: BRL(1011)},
		},
	})
	book.Cards = append(book.Cards, CreditCard{
		ID: "card1", Name: "Nubank", Brand: "Mastercard",
		ClosingDay: 25, DueDay: 5, Limit: BRL(5000),
	})
	e, err := Expense{
		Description: "notebook (1/4)",
		Amount:      BRL(250),
		Date:        NewDate(2025, time.January, 10),
		DueDate:     NewDate(2025, time.February, 5),
		Method:      Credit,
		CardID:      "card1",
		Status:      StatusPaid,
		PaidOn:      NewDate(2025, time.February, 5),
		Installments: true, InstallmentNumber: 1, TotalInstallments: 4,
		InstallmentGroupID: "group1",
	}.Validate()
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	book.Expenses = append(book.Expenses, e)
	in, err := Income{
		Description:    "consultoria",
		Amount:         BRL(900),
		Date:           NewDate(2025, time.April, 1),
		CompetenceDate: NewDate(2025, time.March, 31),
		AccountID:      "acc1",
		Status:         StatusReceived,
	}.Validate()
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	book.Incomes = append(book.Incomes, in)
	book.Users = append(book.Users, User{Name: "Ana", Username: "ana", Role: "admin", Views: []string{"dashboard"}})
	book.AccountTypes = []string{"corrente", "poupanca", "investimento"}
	book.IncomeCategories = []string{"salário", "freela"}
	book.Company = Company{Name: "Padaria da Ana", TaxID: "12.345.678/0001-00"}
	book.Session = Session{Token: "tok", Username: "ana", Started: NewDate(2025, time.May, 1)}

	store := NewStore(t.TempDir())
	if err := store.Save(book); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded := store.Load()

	if len(loaded.Accounts) != 1 {
		t.Fatalf("loaded %d accounts, want 1", len(loaded.Accounts))
	}
	acc := loaded.Account("acc1")
	if acc.Name != "Investimentos" || !acc.CurrentBalance.Equal(BRL(1011)) {
		t.Errorf("loaded account = %q %v, want Investimentos %v", acc.Name, acc.CurrentBalance, BRL(1011))
	}
	if !acc.YieldRate.Equal(decimal.NewFromFloat(1.1)) || acc.YieldIndex != "CDI" {
		t.Errorf("loaded yield = %v %q, want 1.1 CDI", acc.YieldRate, acc.YieldIndex)
	}
	if len(acc.BalanceHistory) != 1 || !acc.BalanceHistory[0].Value.Equal(BRL(1011)) {
		t.Errorf("loaded balance history = %v", acc.BalanceHistory)
	}

	card := loaded.Card("card1")
	if card == nil || card.ClosingDay != 25 || card.DueDay != 5 || !card.Limit.Equal(BRL(5000)) {
		t.Errorf("loaded card = %+v", card)
	}

	le := loaded.Expense(e.ID)
	if le == nil {
		t.Fatalf("expense %q not loaded", e.ID)
	}
	if !le.Amount.Equal(e.Amount) || le.Description != e.Description || le.Date != e.Date ||
		le.DueDate != e.DueDate || le.Method != e.Method || le.CardID != e.CardID ||
		le.Status != e.Status || le.Type != e.Type || le.PaidOn != e.PaidOn {
		t.Errorf("loaded expense = %+v, want %+v", *le, e)
	}
	if !le.Installments || le.InstallmentNumber != 1 || le.TotalInstallments != 4 || le.InstallmentGroupID != "group1" {
		t.Errorf("loaded installment linkage = %+v", *le)
	}

	li := loaded.Income(in.ID)
	if li == nil {
		t.Fatalf("income %q not loaded", in.ID)
	}
	if !li.Amount.Equal(in.Amount) || li.Description != in.Description || li.Date != in.Date ||
		li.CompetenceDate != in.CompetenceDate || li.AccountID != in.AccountID || li.Status != in.Status {
		t.Errorf("loaded income = %+v, want %+v", *li, in)
	}

	if len(loaded.Users) != 1 || loaded.Users[0].Username != "ana" || len(loaded.Users[0].Views) != 1 {
		t.Errorf("loaded users = %+v", loaded.Users)
	}
	if len(loaded.AccountTypes) != 3 || len(loaded.IncomeCategories) != 2 {
		t.Errorf("loaded categories = %v %v", loaded.AccountTypes, loaded.IncomeCategories)
	}
	if loaded.Company.Name != "Padaria da Ana" {
		t.Errorf("loaded company = %+v", loaded.Company)
	}
	if loaded.Session.Token != "tok" || loaded.Session.Started != NewDate(2025, time.May, 1) {
		t.Errorf("loaded session = %+v", loaded.Session)
	}
}

func TestStore_missingDirLoadsEmptyBook(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "does-not-exist"))
	book := store.Load()
	if len(book.Accounts)+len(book.Cards)+len(book.Expenses)+len(book.Incomes) != 0 {
		t.Errorf("missing data directory produced a non-empty book: %+v", book)
	}
}

func TestStore_corruptFileDegradesToEmptyCollection(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	book := NewBook()
	book.Accounts = append(book.Accounts, Account{ID: "acc1", Name: "Conta", InitialBalance: BRL(10), CurrentBalance: BRL(10)})
	if err := store.Save(book); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, expensesFile), []byte("not json\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	loaded := store.Load()
	if len(loaded.Expenses) != 0 {
		t.Errorf("corrupt expenses file loaded %d records, want 0", len(loaded.Expenses))
	}
	if len(loaded.Accounts) != 1 {
		t.Errorf("healthy accounts file loaded %d records, want 1", len(loaded.Accounts))
	}
}

func TestStore_expenseTypeDefaultsToVariable(t *testing.T) {
	dir := t.TempDir()
	// a record written before the type field existed.
	line := `{"id":"e1","description":"mercado","amount":50,"currency":"BRL","date":"2024-06-01","dueDate":"2024-06-01","paymentMethod":"Débito","accountId":"acc1","status":"paid"}` + "\n"
	if err := os.WriteFile(filepath.Join(dir, expensesFile), []byte(line), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	book := NewStore(dir).Load()
	e := book.Expense("e1")
	if e == nil {
		t.Fatal("expense e1 not loaded")
	}
	if e.Type != Variable {
		t.Errorf("untyped expense loaded as %q, want %q", e.Type, Variable)
	}
	if !e.Amount.Equal(BRL(50)) {
		t.Errorf("loaded amount = %v, want %v", e.Amount, BRL(50))
	}
}
