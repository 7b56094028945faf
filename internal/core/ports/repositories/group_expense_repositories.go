package repositories

import (
	"context"

	"github.com/splitnest/expense_tracker_app/internal/core/domain"
)

// GroupExpenseReader defines read operations for shared expenses
type GroupExpenseReader interface {
	// FindExpensesByGroupID retrieves the group's shared expenses with
	// their split entries, in insertion order.
	FindExpensesByGroupID(ctx context.Context, groupID string) ([]domain.GroupExpense, error)

	// FindExpensesByMember retrieves every shared expense, across all
	// groups, whose split list contains the member id or email.
	FindExpensesByMember(ctx context.Context, memberID, email string) ([]domain.GroupExpense, error)

	// FindSplitByID retrieves one split entry by its id.
	FindSplitByID(ctx context.Context, splitID string) (*domain.SplitMember, error)
}

// GroupExpenseWriter defines write operations for shared expenses
type GroupExpenseWriter interface {
	// SaveGroupExpense persists the expense and its split entries in a
	// single transaction.
	SaveGroupExpense(ctx context.Context, expense domain.GroupExpense) error

	// MarkSplitReceived flips one split entry to Received.
	MarkSplitReceived(ctx context.Context, splitID string) error
}

// GroupExpenseRepositoryFacade combines the shared expense repository interfaces
type GroupExpenseRepositoryFacade interface {
	GroupExpenseReader
	GroupExpenseWriter
}
