package storage

// ExpenseReportRow mirrors the expense manager's expense_report table. Columns
// stay untyped strings exactly as persisted; normalization happens in the
// transform package.
type ExpenseReportRow struct {
	ID               int64  `gorm:"column:_id;primaryKey"`
	Account          string `gorm:"column:account"`
	Amount           string `gorm:"column:amount"`
	Category         string `gorm:"column:category"`
	Subcategory      string `gorm:"column:subcategory"`
	PaymentMethod    string `gorm:"column:payment_method"`
	Description      string `gorm:"column:description"`
	ExpensedTime     int64  `gorm:"column:expensed"`
	ModificationTime int64  `gorm:"column:modified"`
	ReferenceNumber  string `gorm:"column:reference_number"`
	Status           string `gorm:"column:status"`
	Property1        string `gorm:"column:property"`
	Property2        string `gorm:"column:property2"`
	Property3        string `gorm:"column:property3"`
	Property4        string `gorm:"column:property4"`
	Property5        string `gorm:"column:property5"`
	Tax              string `gorm:"column:tax"`
	ExpenseTag       string `gorm:"column:expense_tag"`
}

func (ExpenseReportRow) TableName() string {
	return "expense_report"
}
