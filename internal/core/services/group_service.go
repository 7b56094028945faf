package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/splitnest/expense_tracker_app/internal/apperrors"
	"github.com/splitnest/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/splitnest/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/splitnest/expense_tracker_app/internal/core/ports/services"
	"github.com/splitnest/expense_tracker_app/internal/dto"
	"github.com/splitnest/expense_tracker_app/internal/middleware"
)

// GroupService handles business logic for shared groups.
type GroupService struct {
	groupRepo portsrepo.GroupRepositoryFacade
}

// NewGroupService creates a new GroupService.
func NewGroupService(groupRepo portsrepo.GroupRepositoryFacade) *GroupService {
	return &GroupService{groupRepo: groupRepo}
}

var _ portssvc.GroupSvcFacade = (*GroupService)(nil)

// CreateGroup creates a group. The creator's email lands in the member
// list exactly once, whether or not the request repeats it.
func (s *GroupService) CreateGroup(ctx context.Context, creatorEmail string, req dto.CreateGroupRequest) (*domain.Group, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	members := make([]string, 0, len(req.Members)+1)
	members = append(members, creatorEmail)
	for _, m := range req.Members {
		if m != creatorEmail {
			members = append(members, m)
		}
	}

	group := domain.Group{
		GroupID:   uuid.NewString(),
		Name:      req.Name,
		CreatedBy: creatorEmail,
		Members:   members,
		CreatedAt: time.Now(),
	}

	if err := s.groupRepo.SaveGroup(ctx, group); err != nil {
		logger.Error("Failed to save group in repository", slog.String("error", err.Error()), slog.String("creator", creatorEmail))
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	logger.Info("Group created", slog.String("group_id", group.GroupID), slog.String("creator", creatorEmail))
	return &group, nil
}

// GetGroupByID retrieves a group. Non-members get ErrForbidden.
func (s *GroupService) GetGroupByID(ctx context.Context, groupID, requesterEmail string) (*domain.Group, error) {
	group, err := s.groupRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	if !group.IsMember(requesterEmail) {
		return nil, fmt.Errorf("%w: not a member of this group", apperrors.ErrForbidden)
	}
	return group, nil
}

// ListGroupsForMember retrieves every group whose member list contains
// the email.
func (s *GroupService) ListGroupsForMember(ctx context.Context, email string) ([]domain.Group, error) {
	groups, err := s.groupRepo.FindGroupsByMemberEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	if groups == nil {
		return []domain.Group{}, nil
	}
	return groups, nil
}

// AddMembers appends emails to the group's member list. Creator only.
// The list is appended blindly; duplicates are the caller's problem.
func (s *GroupService) AddMembers(ctx context.Context, groupID, requesterEmail string, emails []string) (*domain.Group, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	group, err := s.requireCreator(ctx, groupID, requesterEmail)
	if err != nil {
		return nil, err
	}

	if err := s.groupRepo.AddMembers(ctx, groupID, emails); err != nil {
		logger.Error("Failed to add members", slog.String("error", err.Error()), slog.String("group_id", groupID))
		return nil, fmt.Errorf("failed to add members: %w", err)
	}

	group.Members = append(group.Members, emails...)
	logger.Info("Members added", slog.String("group_id", groupID), slog.Int("count", len(emails)))
	return group, nil
}

// RemoveMembers deletes emails from the group's member list. Creator only.
func (s *GroupService) RemoveMembers(ctx context.Context, groupID, requesterEmail string, emails []string) (*domain.Group, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.requireCreator(ctx, groupID, requesterEmail); err != nil {
		return nil, err
	}

	if err := s.groupRepo.RemoveMembers(ctx, groupID, emails); err != nil {
		logger.Error("Failed to remove members", slog.String("error", err.Error()), slog.String("group_id", groupID))
		return nil, fmt.Errorf("failed to remove members: %w", err)
	}

	group, err := s.groupRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload group after removal: %w", err)
	}

	logger.Info("Members removed", slog.String("group_id", groupID), slog.Int("count", len(emails)))
	return group, nil
}

// RenameGroup rewrites the group's name. Creator only.
func (s *GroupService) RenameGroup(ctx context.Context, groupID, requesterEmail, name string) (*domain.Group, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	group, err := s.requireCreator(ctx, groupID, requesterEmail)
	if err != nil {
		return nil, err
	}

	if err := s.groupRepo.RenameGroup(ctx, groupID, name); err != nil {
		logger.Error("Failed to rename group", slog.String("error", err.Error()), slog.String("group_id", groupID))
		return nil, fmt.Errorf("failed to rename group: %w", err)
	}

	group.Name = name
	logger.Info("Group renamed", slog.String("group_id", groupID))
	return group, nil
}

// DeleteGroup removes the group and everything under it. Creator only.
func (s *GroupService) DeleteGroup(ctx context.Context, groupID, requesterEmail string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.requireCreator(ctx, groupID, requesterEmail); err != nil {
		return err
	}

	if err := s.groupRepo.DeleteGroup(ctx, groupID); err != nil {
		logger.Error("Failed to delete group", slog.String("error", err.Error()), slog.String("group_id", groupID))
		return fmt.Errorf("failed to delete group: %w", err)
	}

	logger.Info("Group deleted", slog.String("group_id", groupID))
	return nil
}

// requireCreator loads the group and checks the requester created it.
func (s *GroupService) requireCreator(ctx context.Context, groupID, requesterEmail string) (*domain.Group, error) {
	group, err := s.groupRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	if group.CreatedBy != requesterEmail {
		return nil, fmt.Errorf("%w: only the group creator may do this", apperrors.ErrValidation)
	}
	return group, nil
}
