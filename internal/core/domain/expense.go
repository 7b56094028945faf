package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single personal expense owned by one account.
type Expense struct {
	ExpenseID string          `json:"expenseID"`
	UserID    string          `json:"userid"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	// Date fields travel as strings end to end.
	ExpenseDate     string    `json:"expense_date"`
	ExpenseCategory string    `json:"expense_category"`
	Payment         string    `json:"payment"`
	Comment         string    `json:"comment,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
