package usecase

import "expense-tally/internal/domain"

// indexEntry tracks one inserted transaction and whether a ledger entry
// already consumed it.
type indexEntry struct {
	transaction domain.ExpenseTransaction
	consumed    bool
}

// TransactionIndex groups expense transactions by (effective amount, payment
// method). Buckets are FIFO: the earliest-inserted candidate is consumed
// first, and a consumed candidate never satisfies a second ledger entry.
//
// The index is owned by a single reconciliation run and is not safe for
// concurrent use.
type TransactionIndex struct {
	buckets map[domain.MatchKey][]*indexEntry
	entries []*indexEntry
}

func NewTransactionIndex() *TransactionIndex {
	return &TransactionIndex{buckets: make(map[domain.MatchKey][]*indexEntry)}
}

// Insert appends the transaction to the bucket its effective amount and
// payment method select.
func (i *TransactionIndex) Insert(transaction domain.ExpenseTransaction) {
	entry := &indexEntry{transaction: transaction}
	key := domain.NewMatchKey(transaction.EffectiveAmount(), transaction.PaymentMethod)
	i.buckets[key] = append(i.buckets[key], entry)
	i.entries = append(i.entries, entry)
}

// Len returns the total number of inserted transactions, consumed or not.
func (i *TransactionIndex) Len() int {
	return len(i.entries)
}

// LookupAndConsume removes and returns the oldest remaining candidate for key.
// The second return value is false when no candidate remains.
func (i *TransactionIndex) LookupAndConsume(key domain.MatchKey) (domain.ExpenseTransaction, bool) {
	bucket := i.buckets[key]
	if len(bucket) == 0 {
		return domain.ExpenseTransaction{}, false
	}
	entry := bucket[0]
	i.buckets[key] = bucket[1:]
	entry.consumed = true
	return entry.transaction, true
}

// Remaining returns the transactions never consumed, in insertion order.
func (i *TransactionIndex) Remaining() []domain.ExpenseTransaction {
	remaining := make([]domain.ExpenseTransaction, 0, len(i.entries))
	for _, entry := range i.entries {
		if !entry.consumed {
			remaining = append(remaining, entry.transaction)
		}
	}
	return remaining
}
