package domain

// Summary provides high-level statistics of one reconciliation run.
type Summary struct {
	RunID                 string `json:"run_id"`
	TotalLedgerEntries    int    `json:"total_ledger_entries_processed"`
	TotalExpensesIndexed  int    `json:"total_expense_transactions_indexed"`
	SkippedExpenseRecords int    `json:"skipped_expense_records"`
	MatchedTransactions   int    `json:"matched_transactions"`
}

// MatchedPair records one ledger entry and the stored expense that satisfied it.
type MatchedPair struct {
	LedgerEntry LedgerTransaction  `json:"ledger_entry"`
	Expense     ExpenseTransaction `json:"expense_transaction"`
}

// UnmatchedTransactions lists both sides that could not be paired, each in
// input order.
type UnmatchedTransactions struct {
	Count       int                  `json:"count"`
	LedgerOnly  []LedgerTransaction  `json:"ledger_missing_from_expenses"`
	ExpenseOnly []ExpenseTransaction `json:"expenses_missing_from_ledger"`
}

// ReconciliationReport is the top-level structure for the final JSON output.
type ReconciliationReport struct {
	ReconciliationSummary Summary               `json:"reconciliation_summary"`
	MatchedPairs          []MatchedPair         `json:"matched_pairs"`
	UnmatchedTransactions UnmatchedTransactions `json:"unmatched_transactions"`
}
