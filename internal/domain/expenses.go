package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseRecord is one row of the expense manager's expense_report table,
// exactly as persisted: every column an untyped string except the id and the
// two epoch-millisecond timestamps.
type ExpenseRecord struct {
	ID               int64
	Account          string
	Amount           string
	Category         string
	Subcategory      string
	PaymentMethod    string
	Description      string
	ExpensedTime     int64
	ModificationTime int64
	ReferenceNumber  string
	Status           string
	Property1        string
	Property2        string
	Property3        string
	Property4        string
	Property5        string
	Tax              string
	ExpenseTag       string
}

// ExpenseTransaction is the normalized form of an ExpenseRecord used for
// matching. Category and Subcategory may be empty when the stored code did not
// resolve; ReferenceAmount is zero when the record carries no override.
type ExpenseTransaction struct {
	ID              int64              `json:"id"`
	Amount          decimal.Decimal    `json:"amount"`
	ReferenceAmount decimal.Decimal    `json:"reference_amount"`
	Category        ExpenseCategory    `json:"category,omitempty"`
	Subcategory     ExpenseSubCategory `json:"subcategory,omitempty"`
	PaymentMethod   PaymentMethod      `json:"payment_method"`
	Description     string             `json:"description"`
	ExpensedTime    time.Time          `json:"expensed_time"`
}

// EffectiveAmount returns the reference (override) amount when positive, else
// the base amount. This is the value the transaction matches under.
func (t ExpenseTransaction) EffectiveAmount() decimal.Decimal {
	if t.ReferenceAmount.IsPositive() {
		return t.ReferenceAmount
	}
	return t.Amount
}
