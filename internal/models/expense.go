package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the database representation of a personal expense.
type Expense struct {
	ExpenseID       string          `db:"expense_id"`
	UserID          string          `db:"user_id"`
	Name            string          `db:"name"`
	Amount          decimal.Decimal `db:"amount"`
	ExpenseDate     string          `db:"expense_date"`
	ExpenseCategory string          `db:"expense_category"`
	Payment         string          `db:"payment"`
	Comment         string          `db:"comment"`
	CreatedAt       time.Time       `db:"created_at"`
}
