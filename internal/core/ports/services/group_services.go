package services

import (
	"context"

	"github.com/splitnest/expense_tracker_app/internal/core/domain"
	"github.com/splitnest/expense_tracker_app/internal/dto"
)

// GroupReaderSvc defines read operations for shared groups
type GroupReaderSvc interface {
	// GetGroupByID retrieves a group; the requester must be a member.
	GetGroupByID(ctx context.Context, groupID, requesterEmail string) (*domain.Group, error)

	// ListGroupsForMember retrieves every group whose member list
	// contains the email.
	ListGroupsForMember(ctx context.Context, email string) ([]domain.Group, error)
}

// GroupWriterSvc defines write operations for shared groups
type GroupWriterSvc interface {
	// CreateGroup creates a group; the creator is added to the member
	// list exactly once.
	CreateGroup(ctx context.Context, creatorEmail string, req dto.CreateGroupRequest) (*domain.Group, error)

	// AddMembers appends emails to the group; creator only.
	AddMembers(ctx context.Context, groupID, requesterEmail string, emails []string) (*domain.Group, error)

	// RemoveMembers deletes emails from the group; creator only.
	RemoveMembers(ctx context.Context, groupID, requesterEmail string, emails []string) (*domain.Group, error)

	// RenameGroup rewrites the group's name; creator only.
	RenameGroup(ctx context.Context, groupID, requesterEmail, name string) (*domain.Group, error)

	// DeleteGroup removes the group and everything under it; creator only.
	DeleteGroup(ctx context.Context, groupID, requesterEmail string) error
}

// GroupSvcFacade combines the group service interfaces
type GroupSvcFacade interface {
	GroupReaderSvc
	GroupWriterSvc
}
