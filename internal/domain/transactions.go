package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the type code tagging one row of a bank statement export.
type TransactionType string

const (
	TransactionTypeMasterCard     TransactionType = "MST"
	TransactionTypeNETS           TransactionType = "NETS"
	TransactionTypePointOfSale    TransactionType = "POS"
	TransactionTypeGiro           TransactionType = "GRO"
	TransactionTypeBillPayment    TransactionType = "BILL"
	TransactionTypeFundTransfer   TransactionType = "ITR"
	TransactionTypeFastPayment    TransactionType = "ICT"
	TransactionTypeSalary         TransactionType = "SAL"
	TransactionTypeInterest       TransactionType = "INT"
	TransactionTypeCashWithdrawal TransactionType = "AWL"
)

// IsCardPayment reports whether entries of this type carry a payment card number.
func (t TransactionType) IsCardPayment() bool {
	return t == TransactionTypeMasterCard
}

// PaymentMethod maps the bank's type code into the payment-method space the
// expense manager records against. Types that never correspond to a recorded
// expense (salary credits, interest, ATM withdrawals) have no mapping.
func (t TransactionType) PaymentMethod() (PaymentMethod, bool) {
	switch t {
	case TransactionTypeMasterCard:
		return PaymentMethodDebitCard, true
	case TransactionTypeNETS, TransactionTypePointOfSale:
		return PaymentMethodNETS, true
	case TransactionTypeGiro:
		return PaymentMethodGiro, true
	case TransactionTypeBillPayment, TransactionTypeFundTransfer, TransactionTypeFastPayment:
		return PaymentMethodElectronicTransfer, true
	default:
		return "", false
	}
}

// LedgerTransaction represents one row from the bank statement export.
// The three reference strings are never absent; an empty column is an empty string.
type LedgerTransaction struct {
	TransactionDate time.Time       `json:"transaction_date"`
	Type            TransactionType `json:"type"`
	DebitAmount     decimal.Decimal `json:"debit_amount"`
	CreditAmount    decimal.Decimal `json:"credit_amount"`
	Reference1      string          `json:"reference_1"`
	Reference2      string          `json:"reference_2"`
	Reference3      string          `json:"reference_3"`
}

// EffectiveAmount returns the meaningful side of the entry. Exactly one of
// debit and credit is set per type; debit wins when both are present.
func (t LedgerTransaction) EffectiveAmount() decimal.Decimal {
	if t.DebitAmount.IsPositive() {
		return t.DebitAmount
	}
	return t.CreditAmount
}

// MatchKey identifies the bucket a transaction can match within. The amount is
// the canonical string form of the effective amount: decimal.Decimal cannot be
// a map key, and String trims trailing zeros, so equal monetary values always
// produce equal keys regardless of how the source wrote them.
type MatchKey struct {
	Amount string        `json:"amount"`
	Method PaymentMethod `json:"method"`
}

// NewMatchKey builds the key used both to index expenses and to probe the index.
func NewMatchKey(amount decimal.Decimal, method PaymentMethod) MatchKey {
	return MatchKey{Amount: amount.String(), Method: method}
}
