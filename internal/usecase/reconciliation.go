package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"expense-tally/internal/card"
	"expense-tally/internal/domain"
	"expense-tally/internal/transform"
)

// ReconciliationUseCase orchestrates one reconciliation run between the bank's
// ledger and the expense manager's stored records.
type ReconciliationUseCase struct {
	ledger   LedgerSource
	expenses ExpenseSource
	log      zerolog.Logger
}

// NewReconciliationUseCase creates a new instance of the usecase.
func NewReconciliationUseCase(ledger LedgerSource, expenses ExpenseSource, log zerolog.Logger) *ReconciliationUseCase {
	return &ReconciliationUseCase{ledger: ledger, expenses: expenses, log: log}
}

// Reconcile matches every ledger entry against the stored expenses and reports
// what paired up and what did not. Each stored expense satisfies at most one
// ledger entry; when several share a key, the one the source returned first is
// consumed first. No per-record problem aborts the run.
func (uc *ReconciliationUseCase) Reconcile(ctx context.Context, ledgerPath string) (*domain.ReconciliationReport, error) {
	ledgerTransactions, err := uc.ledger.GetLedgerTransactions(ctx, ledgerPath)
	if err != nil {
		return nil, fmt.Errorf("could not get ledger transactions: %w", err)
	}
	expenseRecords, err := uc.expenses.GetExpenseRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get expense records: %w", err)
	}

	expenseTransactions, skipped := transform.Records(expenseRecords, uc.log)
	index := NewTransactionIndex()
	for _, transaction := range expenseTransactions {
		index.Insert(transaction)
	}

	report := domain.ReconciliationReport{
		ReconciliationSummary: domain.Summary{
			RunID:                 uuid.NewString(),
			TotalLedgerEntries:    len(ledgerTransactions),
			TotalExpensesIndexed:  index.Len(),
			SkippedExpenseRecords: skipped,
		},
		MatchedPairs: make([]domain.MatchedPair, 0),
		UnmatchedTransactions: domain.UnmatchedTransactions{
			LedgerOnly:  make([]domain.LedgerTransaction, 0),
			ExpenseOnly: make([]domain.ExpenseTransaction, 0),
		},
	}

	for _, entry := range ledgerTransactions {
		entry, key, ok := uc.prepareEntry(entry)
		if !ok {
			report.UnmatchedTransactions.LedgerOnly = append(report.UnmatchedTransactions.LedgerOnly, entry)
			continue
		}
		expense, found := index.LookupAndConsume(key)
		if !found {
			report.UnmatchedTransactions.LedgerOnly = append(report.UnmatchedTransactions.LedgerOnly, entry)
			continue
		}
		report.ReconciliationSummary.MatchedTransactions++
		report.MatchedPairs = append(report.MatchedPairs, domain.MatchedPair{
			LedgerEntry: entry,
			Expense:     expense,
		})
	}

	report.UnmatchedTransactions.ExpenseOnly = index.Remaining()
	report.UnmatchedTransactions.Count =
		len(report.UnmatchedTransactions.LedgerOnly) + len(report.UnmatchedTransactions.ExpenseOnly)

	return &report, nil
}

// prepareEntry normalizes one ledger entry and derives its (effective amount,
// payment method) probe. Card entries run through card.Normalize first: a bad
// card number leaves the entry unmatched rather than aborting the run, and a
// valid one replaces the nominal statement date with the corrected transaction
// date, so the report carries the date the purchase actually happened. A type
// code with no payment-method mapping is also unmatched.
func (uc *ReconciliationUseCase) prepareEntry(entry domain.LedgerTransaction) (domain.LedgerTransaction, domain.MatchKey, bool) {
	if entry.Type.IsCardPayment() {
		identity, err := card.Normalize(entry)
		if err != nil {
			uc.log.Warn().
				Err(err).
				Time("transaction_date", entry.TransactionDate).
				Str("reference_2", entry.Reference2).
				Msg("card validation failed, ledger entry left unmatched")
			return entry, domain.MatchKey{}, false
		}
		entry.TransactionDate = identity.TransactionDate
	}
	paymentMethod, ok := entry.Type.PaymentMethod()
	if !ok {
		return entry, domain.MatchKey{}, false
	}
	return entry, domain.NewMatchKey(entry.EffectiveAmount(), paymentMethod), true
}
