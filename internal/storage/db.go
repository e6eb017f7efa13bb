package storage

import (
	"context"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"expense-tally/internal/domain"
)

// Database reads the expense manager's SQLite file. It implements the
// usecase's ExpenseSource interface.
type Database struct {
	db *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &Database{db: db}, nil
}

// GetExpenseRecords returns every stored expense row ordered by id, so a rerun
// over the same file indexes candidates in the same order.
func (d *Database) GetExpenseRecords(ctx context.Context) ([]domain.ExpenseRecord, error) {
	var rows []ExpenseReportRow
	if err := d.db.WithContext(ctx).Order("_id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read expense_report: %w", err)
	}

	records := make([]domain.ExpenseRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.ExpenseRecord{
			ID:               row.ID,
			Account:          row.Account,
			Amount:           row.Amount,
			Category:         row.Category,
			Subcategory:      row.Subcategory,
			PaymentMethod:    row.PaymentMethod,
			Description:      row.Description,
			ExpensedTime:     row.ExpensedTime,
			ModificationTime: row.ModificationTime,
			ReferenceNumber:  row.ReferenceNumber,
			Status:           row.Status,
			Property1:        row.Property1,
			Property2:        row.Property2,
			Property3:        row.Property3,
			Property4:        row.Property4,
			Property5:        row.Property5,
			Tax:              row.Tax,
			ExpenseTag:       row.ExpenseTag,
		})
	}
	return records, nil
}
