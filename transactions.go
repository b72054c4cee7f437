package grana

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of a transaction. A pending record has
// no effect on any balance; a paid/received one has been applied to its
// account exactly once.
type Status string

const (
	StatusPending  Status = "pending"
	StatusPaid     Status = "paid"     // expenses
	StatusReceived Status = "received" // incomes
)

// PaymentMethod identifies how an expense is settled.
type PaymentMethod string

const (
	Debit    PaymentMethod = "Débito"
	Credit   PaymentMethod = "Crédito"
	Pix      PaymentMethod = "PIX"
	Boleto   PaymentMethod = "Boleto"
	Transfer PaymentMethod = "Transferência"
	Cash     PaymentMethod = "Dinheiro"
)

// IsCredit reports whether the method routes through a credit-card invoice.
func (m PaymentMethod) IsCredit() bool { return m == Credit }

// ValidatePaymentMethod checks the method is one of the known values.
func ValidatePaymentMethod(m PaymentMethod) error {
	switch m {
	case Debit, Credit, Pix, Boleto, Transfer, Cash:
		return nil
	}
	return fmt.Errorf("unknown payment method %q", string(m))
}

// ExpenseType is the budgeting category of an expense.
type ExpenseType string

const (
	Fixed    ExpenseType = "fixed"
	Variable ExpenseType = "variable"
	Personal ExpenseType = "personal"
)

// Expense is a single ledger outflow. Amount is a positive magnitude;
// the direction is implied by the record kind.
type Expense struct {
	ID          string
	Description string
	Amount      Money
	Category    string
	Date        Date // entry/purchase date
	DueDate     Date // when it affects cash flow
	Method      PaymentMethod
	AccountID   string // weak reference, exclusive with CardID
	CardID      string // weak reference, set for credit purchases
	Status      Status
	Type        ExpenseType
	PaidOn      Date // effective payment date, set by invoice payment

	// Installment linkage. Siblings share GroupID but are otherwise
	// independent rows.
	Installments       bool
	InstallmentNumber  int
	TotalInstallments  int
	InstallmentGroupID string
}

// Income is a single ledger inflow. AccountID is required (incomes are
// always account-backed).
type Income struct {
	ID             string
	Description    string
	Amount         Money
	Category       string
	Date           Date // receipt/cash date
	CompetenceDate Date // accrual date, independent of the cash date
	AccountID      string
	Status         Status

	Installments       bool
	InstallmentNumber  int
	TotalInstallments  int
	InstallmentGroupID string
}

// Validate checks the expense for correctness and applies quick fixes
// (generated id, defaulted date/status/type/currency). It returns the
// validated, possibly modified, record or an error before any mutation.
func (e Expense) Validate() (Expense, error) {
	if e.Description == "" {
		return e, errors.New("expense description is missing")
	}
	if !e.Amount.IsPositive() {
		return e, fmt.Errorf("expense amount must be positive, got %v", e.Amount)
	}
	if err := ValidatePaymentMethod(e.Method); err != nil {
		return e, err
	}
	if e.Method.IsCredit() {
		if e.CardID == "" {
			return e, errors.New("credit expense requires a card")
		}
		if e.AccountID != "" {
			return e, errors.New("credit expense cannot also reference an account")
		}
	} else {
		if e.AccountID == "" {
			return e, fmt.Errorf("%s expense requires an account", e.Method)
		}
		if e.CardID != "" {
			return e, fmt.Errorf("%s expense cannot reference a card", e.Method)
		}
	}
	switch e.Status {
	case "":
		e.Status = StatusPending
	case StatusPending, StatusPaid:
	default:
		return e, fmt.Errorf("invalid expense status %q", e.Status)
	}
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Date.IsZero() {
		e.Date = Today()
	}
	if e.DueDate.IsZero() {
		e.DueDate = e.Date
	}
	if e.Type == "" {
		e.Type = Variable
	}
	if e.Amount.Currency() == "" {
		e.Amount = M(e.Amount.value, DefaultCurrency)
	}
	return e, nil
}

// Realized reports whether the expense has already affected an account
// balance. Credit purchases are realized only through invoice payment.
func (e Expense) Realized() bool {
	return e.Status == StatusPaid && !e.Method.IsCredit() && e.AccountID != ""
}

// Validate checks the income for correctness and applies quick fixes,
// mirroring Expense.Validate.
func (i Income) Validate() (Income, error) {
	if i.Description == "" {
		return i, errors.New("income description is missing")
	}
	if !i.Amount.IsPositive() {
		return i, fmt.Errorf("income amount must be positive, got %v", i.Amount)
	}
	if i.AccountID == "" {
		return i, errors.New("income requires an account")
	}
	switch i.Status {
	case "":
		i.Status = StatusPending
	case StatusPending, StatusReceived:
	default:
		return i, fmt.Errorf("invalid income status %q", i.Status)
	}
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.Date.IsZero() {
		i.Date = Today()
	}
	if i.Amount.Currency() == "" {
		i.Amount = M(i.Amount.value, DefaultCurrency)
	}
	return i, nil
}

// Realized reports whether the income has already affected its account balance.
func (i Income) Realized() bool { return i.Status == StatusReceived }

// installmentWriter appends the shared installment linkage fields.
func installmentWriter(w *jsonObjectWriter, installments bool, number, total int, group string) {
	w.Optional("installments", installments)
	w.Optional("installmentNumber", number)
	w.Optional("totalInstallments", total)
	w.Optional("installmentGroupId", group)
}

// MarshalJSON implements json.Marshaler with a stable field order.
func (e Expense) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("description", e.Description)
	w.EmbedFrom(e.Amount)
	w.Optional("category", e.Category)
	w.Append("date", e.Date)
	w.Append("dueDate", e.DueDate)
	w.Append("paymentMethod", e.Method)
	w.Optional("accountId", e.AccountID)
	w.Optional("cardId", e.CardID)
	w.Append("status", e.Status)
	w.Append("type", e.Type)
	if !e.PaidOn.IsZero() {
		w.Append("paidOn", e.PaidOn)
	}
	installmentWriter(&w, e.Installments, e.InstallmentNumber, e.TotalInstallments, e.InstallmentGroupID)
	return w.MarshalJSON()
}

// expenseRecord is a specialized struct to decode an expense with its
// amount and currency in two fields.
type expenseRecord struct {
	ID                 string          `json:"id"`
	Description        string          `json:"description"`
	Amount             decimal.Decimal `json:"amount"`
	Currency           string          `json:"currency"`
	Category           string          `json:"category"`
	Date               Date            `json:"date"`
	DueDate            Date            `json:"dueDate"`
	Method             PaymentMethod   `json:"paymentMethod"`
	AccountID          string          `json:"accountId"`
	CardID             string          `json:"cardId"`
	Status             Status          `json:"status"`
	Type               ExpenseType     `json:"type"`
	PaidOn             Date            `json:"paidOn"`
	Installments       bool            `json:"installments"`
	InstallmentNumber  int             `json:"installmentNumber"`
	TotalInstallments  int             `json:"totalInstallments"`
	InstallmentGroupID string          `json:"installmentGroupId"`
}

// UnmarshalJSON implements json.Unmarshaler. Records written before the
// type field existed are defaulted to variable here, at read time.
func (e *Expense) UnmarshalJSON(data []byte) error {
	var temp expenseRecord
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	if temp.Type == "" {
		temp.Type = Variable
	}
	*e = Expense{
		ID:                 temp.ID,
		Description:        temp.Description,
		Amount:             M(temp.Amount, temp.Currency),
		Category:           temp.Category,
		Date:               temp.Date,
		DueDate:            temp.DueDate,
		Method:             temp.Method,
		AccountID:          temp.AccountID,
		CardID:             temp.CardID,
		Status:             temp.Status,
		Type:               temp.Type,
		PaidOn:             temp.PaidOn,
		Installments:       temp.Installments,
		InstallmentNumber:  temp.InstallmentNumber,
		TotalInstallments:  temp.TotalInstallments,
		InstallmentGroupID: temp.InstallmentGroupID,
	}
	return nil
}

// MarshalJSON implements json.Marshaler with a stable field order.
func (i Income) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", i.ID)
	w.Append("description", i.Description)
	w.EmbedFrom(i.Amount)
	w.Optional("category", i.Category)
	w.Append("date", i.Date)
	if !i.CompetenceDate.IsZero() {
		w.Append("competenceDate", i.CompetenceDate)
	}
	w.Append("accountId", i.AccountID)
	w.Append("status", i.Status)
	installmentWriter(&w, i.Installments, i.InstallmentNumber, i.TotalInstallments, i.InstallmentGroupID)
	return w.MarshalJSON()
}

// incomeRecord is the decoding counterpart of Income.
type incomeRecord struct {
	ID                 string          `json:"id"`
	Description        string          `json:"description"`
	Amount             decimal.Decimal `json:"amount"`
	Currency           string          `json:"currency"`
	Category           string          `json:"category"`
	Date               Date            `json:"date"`
	CompetenceDate     Date            `json:"competenceDate"`
	AccountID          string          `json:"accountId"`
	Status             Status          `json:"status"`
	Installments       bool            `json:"installments"`
	InstallmentNumber  int             `json:"installmentNumber"`
	TotalInstallments  int             `json:"totalInstallments"`
	InstallmentGroupID string          `json:"installmentGroupId"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (i *Income) UnmarshalJSON(data []byte) error {
	var temp incomeRecord
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*i = Income{
		ID:                 temp.ID,
		Description:        temp.Description,
		Amount:             M(temp.Amount, temp.Currency),
		Category:           temp.Category,
		Date:               temp.Date,
		CompetenceDate:     temp.CompetenceDate,
		AccountID:          temp.AccountID,
		Status:             temp.Status,
		Installments:       temp.Installments,
		InstallmentNumber:  temp.InstallmentNumber,
		TotalInstallments:  temp.TotalInstallments,
		InstallmentGroupID: temp.InstallmentGroupID,
	}
	return nil
}
