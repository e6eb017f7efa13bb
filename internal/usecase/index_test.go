package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expense-tally/internal/domain"
)

func expense(id int64, amount string, method domain.PaymentMethod) domain.ExpenseTransaction {
	return domain.ExpenseTransaction{
		ID:            id,
		Amount:        decimal.RequireFromString(amount),
		PaymentMethod: method,
	}
}

func TestTransactionIndex_LookupAndConsume(t *testing.T) {
	index := NewTransactionIndex()
	index.Insert(expense(1, "4.55", domain.PaymentMethodDebitCard))
	index.Insert(expense(2, "4.55", domain.PaymentMethodDebitCard))
	index.Insert(expense(3, "4.55", domain.PaymentMethodNETS))

	key := domain.NewMatchKey(decimal.RequireFromString("4.55"), domain.PaymentMethodDebitCard)

	first, ok := index.LookupAndConsume(key)
	require.True(t, ok)
	assert.Equal(t, int64(1), first.ID, "earliest inserted candidate is consumed first")

	second, ok := index.LookupAndConsume(key)
	require.True(t, ok)
	assert.Equal(t, int64(2), second.ID)

	_, ok = index.LookupAndConsume(key)
	assert.False(t, ok, "exhausted bucket reports a miss")
}

func TestTransactionIndex_KeyUsesOverrideAmount(t *testing.T) {
	transaction := expense(1, "10.00", domain.PaymentMethodDebitCard)
	transaction.ReferenceAmount = decimal.RequireFromString("4.55")

	index := NewTransactionIndex()
	index.Insert(transaction)

	_, ok := index.LookupAndConsume(domain.NewMatchKey(decimal.RequireFromString("10.00"), domain.PaymentMethodDebitCard))
	assert.False(t, ok, "base amount must not be keyed when an override is present")

	got, ok := index.LookupAndConsume(domain.NewMatchKey(decimal.RequireFromString("4.55"), domain.PaymentMethodDebitCard))
	require.True(t, ok)
	assert.Equal(t, int64(1), got.ID)
}

func TestTransactionIndex_KeyIsValueEquality(t *testing.T) {
	index := NewTransactionIndex()
	index.Insert(expense(1, "4.50", domain.PaymentMethodNETS))

	_, ok := index.LookupAndConsume(domain.NewMatchKey(decimal.RequireFromString("4.5"), domain.PaymentMethodNETS))
	assert.True(t, ok, "4.50 and 4.5 are the same monetary value")
}

func TestTransactionIndex_Remaining(t *testing.T) {
	index := NewTransactionIndex()
	index.Insert(expense(1, "1.00", domain.PaymentMethodCash))
	index.Insert(expense(2, "2.00", domain.PaymentMethodCash))
	index.Insert(expense(3, "3.00", domain.PaymentMethodCash))

	_, ok := index.LookupAndConsume(domain.NewMatchKey(decimal.RequireFromString("2.00"), domain.PaymentMethodCash))
	require.True(t, ok)

	remaining := index.Remaining()
	require.Len(t, remaining, 2)
	assert.Equal(t, int64(1), remaining[0].ID)
	assert.Equal(t, int64(3), remaining[1].ID)
	assert.Equal(t, 3, index.Len())
}
