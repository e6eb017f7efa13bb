package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"expense-tally/internal/domain"
)

const transactionDateFormat = "2 Jan 2006"

// Columns: date, type code, debit, credit, reference 1..3.
const ledgerColumns = 7

// CSVLedgerSource implements the LedgerSource interface over a bank statement
// CSV export.
type CSVLedgerSource struct{}

// NewCSVLedgerSource creates a new source instance.
func NewCSVLedgerSource() *CSVLedgerSource {
	return &CSVLedgerSource{}
}

// GetLedgerTransactions reads and parses the bank export file. Exports often
// omit trailing reference columns, so short rows are padded: a reference is
// never absent, only empty. Blank money cells parse as zero.
func (s *CSVLedgerSource) GetLedgerTransactions(ctx context.Context, path string) ([]domain.LedgerTransaction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	var transactions []domain.LedgerTransaction
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}
		for len(record) < ledgerColumns {
			record = append(record, "")
		}

		transactionDate, err := time.Parse(transactionDateFormat, strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("could not parse transaction date '%s': %w", record[0], err)
		}
		debit, err := parseMoney(record[2])
		if err != nil {
			return nil, fmt.Errorf("could not parse debit amount '%s': %w", record[2], err)
		}
		credit, err := parseMoney(record[3])
		if err != nil {
			return nil, fmt.Errorf("could not parse credit amount '%s': %w", record[3], err)
		}

		transactions = append(transactions, domain.LedgerTransaction{
			TransactionDate: transactionDate,
			Type:            domain.TransactionType(strings.TrimSpace(record[1])),
			DebitAmount:     debit,
			CreditAmount:    credit,
			Reference1:      strings.TrimSpace(record[4]),
			Reference2:      strings.TrimSpace(record[5]),
			Reference3:      strings.TrimSpace(record[6]),
		})
	}
	return transactions, nil
}

func parseMoney(field string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(field)
	if trimmed == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(strings.ReplaceAll(trimmed, ",", ""))
}
