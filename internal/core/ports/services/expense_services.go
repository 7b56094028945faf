package services

import (
	"context"

	"github.com/splitnest/expense_tracker_app/internal/core/domain"
	"github.com/splitnest/expense_tracker_app/internal/dto"
)

// ExpenseReaderSvc defines read operations for personal expenses
type ExpenseReaderSvc interface {
	// GetExpense retrieves one expense scoped to its owner.
	GetExpense(ctx context.Context, userID, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves the owner's expenses in insertion order.
	ListExpenses(ctx context.Context, userID string) ([]domain.Expense, error)
}

// ExpenseWriterSvc defines write operations for personal expenses
type ExpenseWriterSvc interface {
	// CreateExpense logs a new expense for the user named in the request.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// UpdateExpense applies a partial update to an existing expense.
	UpdateExpense(ctx context.Context, userID, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error)

	// DeleteExpense removes an expense scoped to its owner.
	DeleteExpense(ctx context.Context, userID, expenseID string) error
}

// ExpenseSvcFacade combines the personal expense service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}

// SessionSvcFacade defines operations for saved login sessions
type SessionSvcFacade interface {
	// SaveSession appends a session snapshot.
	SaveSession(ctx context.Context, req dto.SaveSessionRequest) (*domain.SavedSession, error)

	// GetSession retrieves the account's earliest session row.
	GetSession(ctx context.Context, userID string) (*domain.SavedSession, error)

	// UpdateSession rewrites last login date and logged count on the
	// account's session rows.
	UpdateSession(ctx context.Context, userID string, req dto.UpdateSessionRequest) error

	// UpdateProfile rewrites username and name on the account's session rows.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) error
}
