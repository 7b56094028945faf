package repositories

import (
	"context"

	"github.com/splitnest/expense_tracker_app/internal/core/domain"
)

// ExpenseReader defines read operations for personal expenses
type ExpenseReader interface {
	// FindExpenseByID retrieves one expense scoped to its owner.
	FindExpenseByID(ctx context.Context, userID, expenseID string) (*domain.Expense, error)

	// FindExpensesByUserID retrieves the owner's expenses in insertion order.
	FindExpensesByUserID(ctx context.Context, userID string) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for personal expenses
type ExpenseWriter interface {
	// SaveExpense persists a new expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// UpdateExpense rewrites an existing expense's fields.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense scoped to its owner.
	DeleteExpense(ctx context.Context, userID, expenseID string) error
}

// ExpenseRepositoryFacade combines the personal expense repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
