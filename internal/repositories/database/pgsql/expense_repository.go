package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/splitnest/expense_tracker_app/internal/apperrors"
	"github.com/splitnest/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/splitnest/expense_tracker_app/internal/core/ports/repositories"
	"github.com/splitnest/expense_tracker_app/internal/models"
	"github.com/splitnest/expense_tracker_app/internal/utils/mapping"
)

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(db *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
        INSERT INTO expenses (expense_id, user_id, name, amount, expense_date, expense_category, payment, comment, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ExpenseID,
		m.UserID,
		m.Name,
		m.Amount,
		m.ExpenseDate,
		m.ExpenseCategory,
		m.Payment,
		m.Comment,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, userID, expenseID string) (*domain.Expense, error) {
	query := `
		SELECT expense_id, user_id, name, amount, expense_date, expense_category, payment, comment, created_at
		FROM expenses
		WHERE user_id = $1 AND expense_id = $2;
	`
	var m models.Expense
	err := r.Pool.QueryRow(ctx, query, userID, expenseID).Scan(
		&m.ExpenseID,
		&m.UserID,
		&m.Name,
		&m.Amount,
		&m.ExpenseDate,
		&m.ExpenseCategory,
		&m.Payment,
		&m.Comment,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("expense not found")
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}

	d := mapping.ToDomainExpense(m)
	return &d, nil
}

func (r *PgxExpenseRepository) FindExpensesByUserID(ctx context.Context, userID string) ([]domain.Expense, error) {
	// seq preserves insertion order across the owner's list
	query := `
        SELECT expense_id, user_id, name, amount, expense_date, expense_category, payment, comment, created_at
        FROM expenses
        WHERE user_id = $1
        ORDER BY seq;
    `
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	modelExpenses := []models.Expense{}
	for rows.Next() {
		var m models.Expense
		err := rows.Scan(
			&m.ExpenseID,
			&m.UserID,
			&m.Name,
			&m.Amount,
			&m.ExpenseDate,
			&m.ExpenseCategory,
			&m.Payment,
			&m.Comment,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		modelExpenses = append(modelExpenses, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", rows.Err())
	}

	return mapping.ToDomainExpenseSlice(modelExpenses), nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
        UPDATE expenses
        SET name = $1, amount = $2, expense_date = $3, expense_category = $4, payment = $5, comment = $6
        WHERE user_id = $7 AND expense_id = $8;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.Amount,
		m.ExpenseDate,
		m.ExpenseCategory,
		m.Payment,
		m.Comment,
		m.UserID,
		m.ExpenseID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update expense query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	query := `DELETE FROM expenses WHERE user_id = $1 AND expense_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, userID, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
