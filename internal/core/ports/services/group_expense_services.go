package services

import (
	"context"

	"github.com/splitnest/expense_tracker_app/internal/core/domain"
	"github.com/splitnest/expense_tracker_app/internal/dto"
)

// GroupExpenseReaderSvc defines read operations for shared expenses
type GroupExpenseReaderSvc interface {
	// ListGroupExpenses retrieves the group with its shared expenses;
	// the requester must be a member.
	ListGroupExpenses(ctx context.Context, groupID, requesterEmail string) (*domain.Group, []domain.GroupExpense, error)

	// ListMemberExpenses retrieves every shared expense, across all
	// groups, whose split list contains the caller's id or email.
	ListMemberExpenses(ctx context.Context, callerID, callerEmail string) ([]domain.GroupExpense, error)
}

// GroupExpenseWriterSvc defines write operations for shared expenses
type GroupExpenseWriterSvc interface {
	// CreateGroupExpense logs a shared expense with its split entries;
	// the caller must be a member of the group.
	CreateGroupExpense(ctx context.Context, groupID, callerID, callerEmail string, req dto.CreateGroupExpenseRequest) (*domain.GroupExpense, error)

	// SettleSplit flips the caller's split entry to Received. Settling
	// an already Received entry is a no-op.
	SettleSplit(ctx context.Context, splitID, callerID, callerEmail string) error
}

// MemberDirectorySvc defines lookups between member emails and account ids
type MemberDirectorySvc interface {
	// ConvertMembers maps a group's member emails to account ids; the
	// requester must be a member.
	ConvertMembers(ctx context.Context, groupID, requesterEmail string) ([]dto.MemberIDResponse, error)

	// GetIDByEmail maps an email to its account id.
	GetIDByEmail(ctx context.Context, email string) (string, error)

	// GetEmailByID maps an account id to its email.
	GetEmailByID(ctx context.Context, userID string) (string, error)
}

// GroupExpenseSvcFacade combines the shared expense service interfaces
type GroupExpenseSvcFacade interface {
	GroupExpenseReaderSvc
	GroupExpenseWriterSvc
	MemberDirectorySvc
}
