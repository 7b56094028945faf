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

// ExpenseService handles business logic for the personal expense ledger.
type ExpenseService struct {
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

var _ portssvc.ExpenseSvcFacade = (*ExpenseService)(nil)

// CreateExpense logs a new expense for the user named in the request.
func (s *ExpenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}

	expense := domain.Expense{
		ExpenseID:       uuid.NewString(),
		UserID:          req.UserID,
		Name:            req.Name,
		Amount:          req.Amount,
		ExpenseDate:     req.ExpenseDate,
		ExpenseCategory: req.ExpenseCategory,
		Payment:         req.Payment,
		Comment:         req.Comment,
		CreatedAt:       time.Now(),
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		logger.Error("Failed to save expense in repository", slog.String("error", err.Error()), slog.String("user_id", req.UserID))
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	logger.Info("Expense created", slog.String("expense_id", expense.ExpenseID), slog.String("user_id", req.UserID))
	return &expense, nil
}

// GetExpense retrieves one expense scoped to its owner.
func (s *ExpenseService) GetExpense(ctx context.Context, userID, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, userID, expenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return expense, nil
}

// ListExpenses retrieves the owner's expenses in insertion order.
func (s *ExpenseService) ListExpenses(ctx context.Context, userID string) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.FindExpensesByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

// UpdateExpense applies a partial update to an existing expense.
// Updating an expense that does not exist returns ErrNotFound.
func (s *ExpenseService) UpdateExpense(ctx context.Context, userID, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	expense, err := s.expenseRepo.FindExpenseByID(ctx, userID, expenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load expense for update: %w", err)
	}

	applyExpenseUpdate(expense, req)

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		logger.Error("Failed to update expense in repository", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	logger.Info("Expense updated", slog.String("expense_id", expenseID), slog.String("user_id", userID))
	return expense, nil
}

func applyExpenseUpdate(expense *domain.Expense, req dto.UpdateExpenseRequest) {
	if req.Name != nil {
		expense.Name = *req.Name
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.ExpenseDate != nil {
		expense.ExpenseDate = *req.ExpenseDate
	}
	if req.ExpenseCategory != nil {
		expense.ExpenseCategory = *req.ExpenseCategory
	}
	if req.Payment != nil {
		expense.Payment = *req.Payment
	}
	if req.Comment != nil {
		expense.Comment = *req.Comment
	}
}

// DeleteExpense removes an expense scoped to its owner.
func (s *ExpenseService) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.expenseRepo.DeleteExpense(ctx, userID, expenseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		logger.Error("Failed to delete expense", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	logger.Info("Expense deleted", slog.String("expense_id", expenseID), slog.String("user_id", userID))
	return nil
}
