package repositories

import (
	"context"

	"github.com/splitnest/expense_tracker_app/internal/core/domain"
)

// GroupReader defines read operations for shared groups
type GroupReader interface {
	// FindGroupByID retrieves a group together with its member list.
	FindGroupByID(ctx context.Context, groupID string) (*domain.Group, error)

	// FindGroupsByMemberEmail retrieves every group whose member list
	// contains the email.
	FindGroupsByMemberEmail(ctx context.Context, email string) ([]domain.Group, error)
}

// GroupWriter defines write operations for shared groups
type GroupWriter interface {
	// SaveGroup persists a new group with its initial member list.
	SaveGroup(ctx context.Context, group domain.Group) error

	// AddMembers appends emails to the group's member list.
	AddMembers(ctx context.Context, groupID string, emails []string) error

	// RemoveMembers deletes emails from the group's member list.
	RemoveMembers(ctx context.Context, groupID string, emails []string) error

	// RenameGroup rewrites the group's name.
	RenameGroup(ctx context.Context, groupID, name string) error

	// DeleteGroup removes the group and, via cascade, its members,
	// expenses and split rows.
	DeleteGroup(ctx context.Context, groupID string) error
}

// GroupRepositoryFacade combines the group repository interfaces
type GroupRepositoryFacade interface {
	GroupReader
	GroupWriter
}
