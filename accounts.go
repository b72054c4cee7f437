package grana

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is a balance-bearing account (checking, savings, investment...).
//
// CurrentBalance is InitialBalance plus the net effect of every realized
// transaction ever linked to the account, minus later reversals. Only the
// engine operations in engine.go mutate it.
type Account struct {
	ID             string
	Name           string
	Type           string // free-text category, e.g. "corrente", "investimento"
	InitialBalance Money  // snapshot at creation, never mutated
	CurrentBalance Money
	YieldRate      decimal.Decimal // optional monthly yield, in percent
	YieldIndex     string          // optional index the yield follows (CDI, SELIC...)
	BalanceHistory []BalancePoint  // appended/updated on yield entry, ordered by date
}

// BalancePoint is a dated balance snapshot.
type BalancePoint struct {
	Date  Date  `json:"date"`
	Value Money `json:"value"`
}

// NewAccount creates an account with its current balance seeded from the
// initial one.
func NewAccount(name, typ string, initial Money) Account {
	return Account{
		ID:             uuid.NewString(),
		Name:           name,
		Type:           typ,
		InitialBalance: initial,
		CurrentBalance: initial,
	}
}

// Validate checks the account fields and applies quick fixes.
func (a Account) Validate() (Account, error) {
	if a.Name == "" {
		return a, errors.New("account name is missing")
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.InitialBalance.Currency() == "" {
		a.InitialBalance = M(a.InitialBalance.value, DefaultCurrency)
	}
	if a.CurrentBalance.Currency() == "" {
		a.CurrentBalance = M(a.CurrentBalance.value, a.InitialBalance.Currency())
	}
	return a, nil
}

// MarshalJSON implements json.Marshaler with a stable field order.
func (a Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.ID)
	w.Append("name", a.Name)
	w.Optional("type", a.Type)
	w.Append("initialBalance", a.InitialBalance.value)
	w.Append("currentBalance", a.CurrentBalance.value)
	w.Optional("currency", a.CurrentBalance.Currency())
	if !a.YieldRate.IsZero() {
		w.Append("yieldRate", a.YieldRate)
	}
	w.Optional("yieldIndex", a.YieldIndex)
	if len(a.BalanceHistory) > 0 {
		w.Append("balanceHistory", a.BalanceHistory)
	}
	return w.MarshalJSON()
}

type accountRecord struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	Currency       string          `json:"currency"`
	YieldRate      decimal.Decimal `json:"yieldRate"`
	YieldIndex     string          `json:"yieldIndex"`
	BalanceHistory []struct {
		Date  Date            `json:"date"`
		Value decimal.Decimal `json:"value"`
	} `json:"balanceHistory"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Account) UnmarshalJSON(data []byte) error {
	var temp accountRecord
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	if temp.Currency == "" {
		temp.Currency = DefaultCurrency
	}
	history := make([]BalancePoint, 0, len(temp.BalanceHistory))
	for _, p := range temp.BalanceHistory {
		history = append(history, BalancePoint{Date: p.Date, Value: M(p.Value, temp.Currency)})
	}
	*a = Account{
		ID:             temp.ID,
		Name:           temp.Name,
		Type:           temp.Type,
		InitialBalance: M(temp.InitialBalance, temp.Currency),
		CurrentBalance: M(temp.CurrentBalance, temp.Currency),
		YieldRate:      temp.YieldRate,
		YieldIndex:     temp.YieldIndex,
		BalanceHistory: history,
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p BalancePoint) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", p.Date)
	w.Append("value", p.Value.value)
	return w.MarshalJSON()
}

// CreditCard aggregates unpaid credit expenses into monthly invoices.
// It bears no balance of its own.
type CreditCard struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Brand      string `json:"brand"`
	ClosingDay int    `json:"closingDay"` // 1-31, day the cycle closes
	DueDay     int    `json:"dueDay"`     // 1-31, day the invoice is due
	Limit      Money  `json:"limit,omitzero"`
}

// Validate checks the card fields and applies quick fixes.
func (c CreditCard) Validate() (CreditCard, error) {
	if c.Name == "" {
		return c, errors.New("card name is missing")
	}
	if c.ClosingDay < 1 || c.ClosingDay > 31 {
		return c, fmt.Errorf("card closing day must be in 1..31, got %d", c.ClosingDay)
	}
	if c.DueDay < 1 || c.DueDay > 31 {
		return c, fmt.Errorf("card due day must be in 1..31, got %d", c.DueDay)
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return c, nil
}

// MarshalJSON implements json.Marshaler with a stable field order.
func (c CreditCard) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", c.ID)
	w.Append("name", c.Name)
	w.Optional("brand", c.Brand)
	w.Append("closingDay", c.ClosingDay)
	w.Append("dueDay", c.DueDay)
	if !c.Limit.IsZero() {
		w.Append("limit", c.Limit.value)
		w.Optional("limitCurrency", c.Limit.Currency())
	}
	return w.MarshalJSON()
}

type cardRecord struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Brand         string          `json:"brand"`
	ClosingDay    int             `json:"closingDay"`
	DueDay        int             `json:"dueDay"`
	Limit         decimal.Decimal `json:"limit"`
	LimitCurrency string          `json:"limitCurrency"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *CreditCard) UnmarshalJSON(data []byte) error {
	var temp cardRecord
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*c = CreditCard{
		ID:         temp.ID,
		Name:       temp.Name,
		Brand:      temp.Brand,
		ClosingDay: temp.ClosingDay,
		DueDay:     temp.DueDay,
	}
	if !temp.Limit.IsZero() {
		if temp.LimitCurrency == "" {
			temp.LimitCurrency = DefaultCurrency
		}
		c.Limit = M(temp.Limit, temp.LimitCurrency)
	}
	return nil
}

// Company is the profile of the business the book belongs to. Logic-free,
// carried for the presentation layer.
type Company struct {
	Name  string `json:"name"`
	TaxID string `json:"taxId,omitempty"`
	Email string `json:"email,omitempty"`
}

// User is a login with per-view role permissions. The engine persists
// but never enforces them; enforcement belongs to the presentation layer.
type User struct {
	Name         string   `json:"name"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"passwordHash,omitempty"`
	Role         string   `json:"role"`
	Views        []string `json:"views,omitempty"` // view names this role may open
}

// Session is the active-session token record.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Started  Date   `json:"started,omitzero"`
}
