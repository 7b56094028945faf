package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Group is the database representation of a shared group. The member list
// lives in group_members and is loaded alongside.
type Group struct {
	GroupID   string    `db:"group_id"`
	Name      string    `db:"name"`
	CreatedBy string    `db:"created_by"`
	CreatedAt time.Time `db:"created_at"`
	Members   []string  `db:"-"`
}

// GroupExpense is the database representation of a shared expense.
type GroupExpense struct {
	GroupExpenseID  string          `db:"group_expense_id"`
	GroupID         string          `db:"group_id"`
	Name            string          `db:"name"`
	Amount          decimal.Decimal `db:"amount"`
	ExpenseDate     string          `db:"expense_date"`
	ExpenseCategory string          `db:"expense_category"`
	Payment         string          `db:"payment"`
	Comment         string          `db:"comment"`
	CreatedBy       string          `db:"created_by"`
	CreatedAt       time.Time       `db:"created_at"`
}

// SplitMember is one row of the flat split ledger.
type SplitMember struct {
	SplitID        string          `db:"split_id"`
	GroupExpenseID string          `db:"group_expense_id"`
	MemberID       string          `db:"member_id"`
	ShareAmount    decimal.Decimal `db:"share_amount"`
	Status         string          `db:"status"`
}
