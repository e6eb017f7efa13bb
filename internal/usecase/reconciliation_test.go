package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expense-tally/internal/domain"
	"expense-tally/internal/usecase"
	mock_usecase "expense-tally/internal/usecase/mocks"
)

const ledgerPath = "/statements/export.csv"

func cardLedgerEntry(amount string) domain.LedgerTransaction {
	return domain.LedgerTransaction{
		TransactionDate: time.Date(2019, 12, 27, 0, 0, 0, 0, time.UTC),
		Type:            domain.TransactionTypeMasterCard,
		DebitAmount:     decimal.RequireFromString(amount),
		Reference1:      "TAPAS SI NG 20DEC",
		Reference2:      "5132-4172-5981-4347",
	}
}

func debitCardRecord(id int64, amount, referenceNumber string) domain.ExpenseRecord {
	return domain.ExpenseRecord{
		ID:              id,
		Amount:          amount,
		Category:        "Entertainment",
		Subcategory:     "Alcohol/ Restaurant",
		PaymentMethod:   "Debit Card",
		Description:     "tapas",
		ExpensedTime:    1576800000000,
		ReferenceNumber: referenceNumber,
	}
}

func newUseCase(t *testing.T, ledgerTxs []domain.LedgerTransaction, records []domain.ExpenseRecord) *usecase.ReconciliationUseCase {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	ledgerSource := mock_usecase.NewMockLedgerSource(ctrl)
	ledgerSource.EXPECT().GetLedgerTransactions(gomock.Any(), ledgerPath).Return(ledgerTxs, nil).AnyTimes()
	expenseSource := mock_usecase.NewMockExpenseSource(ctrl)
	expenseSource.EXPECT().GetExpenseRecords(gomock.Any()).Return(records, nil).AnyTimes()

	return usecase.NewReconciliationUseCase(ledgerSource, expenseSource, zerolog.Nop())
}

func TestReconciliationUseCase_Reconcile(t *testing.T) {
	ctx := context.Background()

	t.Run("card entry pairs with the stored expense", func(t *testing.T) {
		uc := newUseCase(t,
			[]domain.LedgerTransaction{cardLedgerEntry("4.55")},
			[]domain.ExpenseRecord{debitCardRecord(1, "4.55", "")},
		)

		report, err := uc.Reconcile(ctx, ledgerPath)
		require.NoError(t, err)

		assert.NotEmpty(t, report.ReconciliationSummary.RunID)
		assert.Equal(t, 1, report.ReconciliationSummary.TotalLedgerEntries)
		assert.Equal(t, 1, report.ReconciliationSummary.TotalExpensesIndexed)
		assert.Equal(t, 0, report.ReconciliationSummary.SkippedExpenseRecords)
		assert.Equal(t, 1, report.ReconciliationSummary.MatchedTransactions)
		require.Len(t, report.MatchedPairs, 1)
		assert.Equal(t, int64(1), report.MatchedPairs[0].Expense.ID)
		assert.Empty(t, report.UnmatchedTransactions.LedgerOnly)
		assert.Empty(t, report.UnmatchedTransactions.ExpenseOnly)
		assert.Equal(t, 0, report.UnmatchedTransactions.Count)
	})

	t.Run("card entries carry the corrected transaction date", func(t *testing.T) {
		uc := newUseCase(t,
			[]domain.LedgerTransaction{cardLedgerEntry("4.55"), cardLedgerEntry("9.99")},
			[]domain.ExpenseRecord{debitCardRecord(1, "4.55", "")},
		)

		report, err := uc.Reconcile(ctx, ledgerPath)
		require.NoError(t, err)

		corrected := time.Date(2019, 12, 20, 0, 0, 0, 0, time.UTC)
		require.Len(t, report.MatchedPairs, 1)
		assert.True(t, report.MatchedPairs[0].LedgerEntry.TransactionDate.Equal(corrected),
			"matched entry date = %v, want %v", report.MatchedPairs[0].LedgerEntry.TransactionDate, corrected)
		require.Len(t, report.UnmatchedTransactions.LedgerOnly, 1)
		assert.True(t, report.UnmatchedTransactions.LedgerOnly[0].TransactionDate.Equal(corrected),
			"unmatched entry date = %v, want %v", report.UnmatchedTransactions.LedgerOnly[0].TransactionDate, corrected)
	})

	t.Run("two candidates share a key, the earlier one is consumed", func(t *testing.T) {
		uc := newUseCase(t,
			[]domain.LedgerTransaction{cardLedgerEntry("4.55")},
			[]domain.ExpenseRecord{
				debitCardRecord(1, "4.55", ""),
				debitCardRecord(2, "4.55", ""),
			},
		)

		report, err := uc.Reconcile(ctx, ledgerPath)
		require.NoError(t, err)

		assert.Equal(t, 1, report.ReconciliationSummary.MatchedTransactions)
		require.Len(t, report.MatchedPairs, 1)
		assert.Equal(t, int64(1), report.MatchedPairs[0].Expense.ID)
		require.Len(t, report.UnmatchedTransactions.ExpenseOnly, 1)
		assert.Equal(t, int64(2), report.UnmatchedTransactions.ExpenseOnly[0].ID)
	})

	t.Run("override amount keys the expense, not the base amount", func(t *testing.T) {
		uc := newUseCase(t,
			[]domain.LedgerTransaction{cardLedgerEntry("4.55")},
			[]domain.ExpenseRecord{debitCardRecord(1, "10.00", "Ref: S$4.55")},
		)

		report, err := uc.Reconcile(ctx, ledgerPath)
		require.NoError(t, err)

		assert.Equal(t, 1, report.ReconciliationSummary.MatchedTransactions)
		assert.Empty(t, report.UnmatchedTransactions.ExpenseOnly)
	})

	t.Run("invalid card number leaves the entry unmatched without aborting", func(t *testing.T) {
		badCard := cardLedgerEntry("4.55")
		badCard.Reference2 = "5632-4172-5981-4347"

		uc := newUseCase(t,
			[]domain.LedgerTransaction{badCard, cardLedgerEntry("4.55")},
			[]domain.ExpenseRecord{debitCardRecord(1, "4.55", "")},
		)

		report, err := uc.Reconcile(ctx, ledgerPath)
		require.NoError(t, err)

		assert.Equal(t, 1, report.ReconciliationSummary.MatchedTransactions)
		require.Len(t, report.UnmatchedTransactions.LedgerOnly, 1)
		assert.Equal(t, "5632-4172-5981-4347", report.UnmatchedTransactions.LedgerOnly[0].Reference2)
	})

	t.Run("unresolvable payment method skips the record silently", func(t *testing.T) {
		bad := debitCardRecord(1, "4.55", "")
		bad.PaymentMethod = "Seashells"

		uc := newUseCase(t,
			[]domain.LedgerTransaction{cardLedgerEntry("4.55")},
			[]domain.ExpenseRecord{bad},
		)

		report, err := uc.Reconcile(ctx, ledgerPath)
		require.NoError(t, err)

		assert.Equal(t, 1, report.ReconciliationSummary.SkippedExpenseRecords)
		assert.Equal(t, 0, report.ReconciliationSummary.TotalExpensesIndexed)
		assert.Equal(t, 0, report.ReconciliationSummary.MatchedTransactions)
		assert.Len(t, report.UnmatchedTransactions.LedgerOnly, 1)
	})

	t.Run("type with no payment method mapping is unmatched", func(t *testing.T) {
		salary := domain.LedgerTransaction{
			TransactionDate: time.Date(2019, 12, 31, 0, 0, 0, 0, time.UTC),
			Type:            domain.TransactionTypeSalary,
			CreditAmount:    decimal.RequireFromString("5000.00"),
		}

		uc := newUseCase(t, []domain.LedgerTransaction{salary}, nil)

		report, err := uc.Reconcile(ctx, ledgerPath)
		require.NoError(t, err)

		assert.Equal(t, 0, report.ReconciliationSummary.MatchedTransactions)
		assert.Len(t, report.UnmatchedTransactions.LedgerOnly, 1)
	})

	t.Run("identical inputs give identical reports", func(t *testing.T) {
		ledgerTxs := []domain.LedgerTransaction{cardLedgerEntry("4.55"), cardLedgerEntry("7.80")}
		records := []domain.ExpenseRecord{
			debitCardRecord(1, "4.55", ""),
			debitCardRecord(2, "12.00", ""),
		}

		uc := newUseCase(t, ledgerTxs, records)

		first, err := uc.Reconcile(ctx, ledgerPath)
		require.NoError(t, err)
		second, err := uc.Reconcile(ctx, ledgerPath)
		require.NoError(t, err)

		first.ReconciliationSummary.RunID = ""
		second.ReconciliationSummary.RunID = ""
		assert.Equal(t, first, second)
	})
}

func TestReconciliationUseCase_Reconcile_SourceErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("ledger source error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ledgerSource := mock_usecase.NewMockLedgerSource(ctrl)
		ledgerSource.EXPECT().GetLedgerTransactions(gomock.Any(), ledgerPath).Return(nil, errors.New("no such file"))
		expenseSource := mock_usecase.NewMockExpenseSource(ctrl)

		uc := usecase.NewReconciliationUseCase(ledgerSource, expenseSource, zerolog.Nop())
		_, err := uc.Reconcile(ctx, ledgerPath)
		assert.ErrorContains(t, err, "could not get ledger transactions")
	})

	t.Run("expense source error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ledgerSource := mock_usecase.NewMockLedgerSource(ctrl)
		ledgerSource.EXPECT().GetLedgerTransactions(gomock.Any(), ledgerPath).Return(nil, nil)
		expenseSource := mock_usecase.NewMockExpenseSource(ctrl)
		expenseSource.EXPECT().GetExpenseRecords(gomock.Any()).Return(nil, errors.New("locked"))

		uc := usecase.NewReconciliationUseCase(ledgerSource, expenseSource, zerolog.Nop())
		_, err := uc.Reconcile(ctx, ledgerPath)
		assert.ErrorContains(t, err, "could not get expense records")
	})
}
