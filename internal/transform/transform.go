package transform

import (
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"expense-tally/internal/domain"
)

// Characters stripped from reference_number before the override-amount parse;
// the column holds free text such as "Ref: S$4.55".
var referenceAmountNoise = regexp.MustCompile(`[^\d.]+`)

// Record maps one persisted expense row to its normalized transaction.
//
// Category and subcategory codes that resolve to nothing are left unset. An
// unresolvable payment method makes the row unusable for keying and fails it,
// as does an unparseable amount or reference number.
func Record(record domain.ExpenseRecord) (domain.ExpenseTransaction, error) {
	amount, err := decimal.NewFromString(record.Amount)
	if err != nil {
		return domain.ExpenseTransaction{}, &domain.ParseError{Field: "amount", Value: record.Amount, Err: err}
	}
	paymentMethod, ok := domain.ResolvePaymentMethod(record.PaymentMethod)
	if !ok {
		return domain.ExpenseTransaction{}, &domain.ParseError{Field: "payment_method", Value: record.PaymentMethod}
	}
	referenceAmount, err := parseReferenceAmount(record.ReferenceNumber)
	if err != nil {
		return domain.ExpenseTransaction{}, err
	}
	category, _ := domain.ResolveExpenseCategory(record.Category)
	subcategory, _ := domain.ResolveExpenseSubCategory(record.Subcategory)

	return domain.ExpenseTransaction{
		ID:              record.ID,
		Amount:          amount,
		ReferenceAmount: referenceAmount,
		Category:        category,
		Subcategory:     subcategory,
		PaymentMethod:   paymentMethod,
		Description:     record.Description,
		ExpensedTime:    time.UnixMilli(record.ExpensedTime).UTC(),
	}, nil
}

// Records maps every row it can, logging and dropping the rest. It returns the
// normalized transactions in input order and the number of rows skipped.
func Records(records []domain.ExpenseRecord, log zerolog.Logger) ([]domain.ExpenseTransaction, int) {
	transactions := make([]domain.ExpenseTransaction, 0, len(records))
	skipped := 0
	for _, record := range records {
		transaction, err := Record(record)
		if err != nil {
			log.Warn().
				Err(err).
				Int64("id", record.ID).
				Msg("skipping unusable expense record")
			skipped++
			continue
		}
		transactions = append(transactions, transaction)
	}
	return transactions, skipped
}

// parseReferenceAmount extracts the override amount from the free-text
// reference_number column. A blank column means no override.
func parseReferenceAmount(referenceNumber string) (decimal.Decimal, error) {
	if strings.TrimSpace(referenceNumber) == "" {
		return decimal.Zero, nil
	}
	cleansed := referenceAmountNoise.ReplaceAllString(referenceNumber, "")
	referenceAmount, err := decimal.NewFromString(cleansed)
	if err != nil {
		return decimal.Decimal{}, &domain.ParseError{Field: "reference_number", Value: referenceNumber, Err: err}
	}
	return referenceAmount, nil
}
