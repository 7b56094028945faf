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

// GroupExpenseService handles business logic for shared expenses and
// their split ledger.
type GroupExpenseService struct {
	groupExpenseRepo portsrepo.GroupExpenseRepositoryFacade
	groupRepo        portsrepo.GroupRepositoryFacade
	userRepo         portsrepo.UserRepositoryFacade
}

// NewGroupExpenseService creates a new GroupExpenseService.
func NewGroupExpenseService(
	groupExpenseRepo portsrepo.GroupExpenseRepositoryFacade,
	groupRepo portsrepo.GroupRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
) *GroupExpenseService {
	return &GroupExpenseService{
		groupExpenseRepo: groupExpenseRepo,
		groupRepo:        groupRepo,
		userRepo:         userRepo,
	}
}

var _ portssvc.GroupExpenseSvcFacade = (*GroupExpenseService)(nil)

// CreateGroupExpense logs a shared expense. The group must exist and
// the caller must be on its member list. Every split entry starts out
// Pending; the expense and its splits land in one transaction.
func (s *GroupExpenseService) CreateGroupExpense(ctx context.Context, groupID, callerID, callerEmail string, req dto.CreateGroupExpenseRequest) (*domain.GroupExpense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}

	group, err := s.groupRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	if !group.IsMember(callerEmail) {
		return nil, fmt.Errorf("%w: not a member of this group", apperrors.ErrForbidden)
	}

	expenseID := uuid.NewString()
	splits := make([]domain.SplitMember, len(req.SplitMembers))
	for i, entry := range req.SplitMembers {
		splits[i] = domain.SplitMember{
			SplitID:        uuid.NewString(),
			GroupExpenseID: expenseID,
			MemberID:       entry.MemberID,
			ShareAmount:    entry.ShareAmount,
			Status:         domain.SplitPending,
		}
	}

	expense := domain.GroupExpense{
		GroupExpenseID:  expenseID,
		GroupID:         groupID,
		Name:            req.Name,
		Amount:          req.Amount,
		ExpenseDate:     req.ExpenseDate,
		ExpenseCategory: req.ExpenseCategory,
		Payment:         req.Payment,
		Comment:         req.Comment,
		CreatedBy:       callerID,
		CreatedAt:       time.Now(),
		SplitMembers:    splits,
	}

	if err := s.groupExpenseRepo.SaveGroupExpense(ctx, expense); err != nil {
		logger.Error("Failed to save group expense", slog.String("error", err.Error()), slog.String("group_id", groupID))
		return nil, fmt.Errorf("failed to create group expense: %w", err)
	}

	logger.Info("Group expense created", slog.String("group_expense_id", expenseID), slog.String("group_id", groupID))
	return &expense, nil
}

// ListGroupExpenses retrieves the group with its shared expenses.
// Non-members get ErrForbidden.
func (s *GroupExpenseService) ListGroupExpenses(ctx context.Context, groupID, requesterEmail string) (*domain.Group, []domain.GroupExpense, error) {
	group, err := s.groupRepo.FindGroupByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("failed to get group: %w", err)
	}
	if !group.IsMember(requesterEmail) {
		return nil, nil, fmt.Errorf("%w: not a member of this group", apperrors.ErrForbidden)
	}

	expenses, err := s.groupExpenseRepo.FindExpensesByGroupID(ctx, groupID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list group expenses: %w", err)
	}
	if expenses == nil {
		expenses = []domain.GroupExpense{}
	}
	return group, expenses, nil
}

// ListMemberExpenses retrieves every shared expense, across all groups,
// whose split list contains the caller's id or email.
func (s *GroupExpenseService) ListMemberExpenses(ctx context.Context, callerID, callerEmail string) ([]domain.GroupExpense, error) {
	expenses, err := s.groupExpenseRepo.FindExpensesByMember(ctx, callerID, callerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list member expenses: %w", err)
	}
	if expenses == nil {
		return []domain.GroupExpense{}, nil
	}
	return expenses, nil
}

// SettleSplit flips the addressed split entry Pending to Received. Only
// the member who owns the entry may settle it, and settling an entry
// that is already Received is a no-op.
func (s *GroupExpenseService) SettleSplit(ctx context.Context, splitID, callerID, callerEmail string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	split, err := s.groupExpenseRepo.FindSplitByID(ctx, splitID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get split entry: %w", err)
	}

	if split.MemberID != callerID && split.MemberID != callerEmail {
		return fmt.Errorf("%w: split entry belongs to another member", apperrors.ErrForbidden)
	}
	if split.Status == domain.SplitReceived {
		return nil
	}

	if err := s.groupExpenseRepo.MarkSplitReceived(ctx, splitID); err != nil {
		logger.Error("Failed to mark split received", slog.String("error", err.Error()), slog.String("split_id", splitID))
		return fmt.Errorf("failed to settle split: %w", err)
	}

	logger.Info("Split settled", slog.String("split_id", splitID), slog.String("group_expense_id", split.GroupExpenseID))
	return nil
}

// ConvertMembers maps the group's member emails to account ids. Members
// without a registered account keep an empty id, matching the lookup
// contract for invited-but-unregistered emails.
func (s *GroupExpenseService) ConvertMembers(ctx context.Context, groupID, requesterEmail string) ([]dto.MemberIDResponse, error) {
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

	res := make([]dto.MemberIDResponse, 0, len(group.Members))
	for _, email := range group.Members {
		entry := dto.MemberIDResponse{Email: email}
		user, err := s.userRepo.FindUserByEmail(ctx, email)
		if err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("failed to resolve member %s: %w", email, err)
			}
		} else {
			entry.UserID = user.UserID
		}
		res = append(res, entry)
	}
	return res, nil
}

// GetIDByEmail maps an email to its account id.
func (s *GroupExpenseService) GetIDByEmail(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", err
		}
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}
	return user.UserID, nil
}

// GetEmailByID maps an account id to its email.
func (s *GroupExpenseService) GetEmailByID(ctx context.Context, userID string) (string, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", err
		}
		return "", fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user.Email, nil
}
