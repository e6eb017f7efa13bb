package usecase

import (
	"context"

	"expense-tally/internal/domain"
)

// LedgerSource and ExpenseSource supply the two already-materialized input
// sequences of a reconciliation run. The usecase layer depends on these
// interfaces, not on the CSV or database implementations.
//
//go:generate mockgen -destination=mocks/mock_sources.go -source=interface.go LedgerSource,ExpenseSource
type LedgerSource interface {
	GetLedgerTransactions(ctx context.Context, path string) ([]domain.LedgerTransaction, error)
}

type ExpenseSource interface {
	GetExpenseRecords(ctx context.Context) ([]domain.ExpenseRecord, error)
}
