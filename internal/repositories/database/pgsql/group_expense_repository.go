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

type PgxGroupExpenseRepository struct {
	BaseRepository
}

func newPgxGroupExpenseRepository(db *pgxpool.Pool) portsrepo.GroupExpenseRepositoryFacade {
	return &PgxGroupExpenseRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.GroupExpenseRepositoryFacade = (*PgxGroupExpenseRepository)(nil)

// SaveGroupExpense inserts the expense row and all of its split entries
// in a single transaction, batching the split inserts.
func (r *PgxGroupExpenseRepository) SaveGroupExpense(ctx context.Context, expense domain.GroupExpense) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	m := mapping.ToModelGroupExpense(expense)
	expenseQuery := `
        INSERT INTO group_expenses (group_expense_id, group_id, name, amount, expense_date, expense_category, payment, comment, created_by, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err = tx.Exec(ctx, expenseQuery,
		m.GroupExpenseID,
		m.GroupID,
		m.Name,
		m.Amount,
		m.ExpenseDate,
		m.ExpenseCategory,
		m.Payment,
		m.Comment,
		m.CreatedBy,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save group expense: %w", err)
	}

	batch := &pgx.Batch{}
	splitQuery := `
        INSERT INTO split_members (split_id, group_expense_id, member_id, share_amount, status)
        VALUES ($1, $2, $3, $4, $5);
    `
	for _, split := range expense.SplitMembers {
		sm := mapping.ToModelSplitMember(split)
		batch.Queue(splitQuery, sm.SplitID, sm.GroupExpenseID, sm.MemberID, sm.ShareAmount, sm.Status)
	}
	results := tx.SendBatch(ctx, batch)
	for range expense.SplitMembers {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to insert split entry: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close split batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxGroupExpenseRepository) FindExpensesByGroupID(ctx context.Context, groupID string) ([]domain.GroupExpense, error) {
	query := `
        SELECT group_expense_id, group_id, name, amount, expense_date, expense_category, payment, comment, created_by, created_at
        FROM group_expenses
        WHERE group_id = $1
        ORDER BY seq;
    `
	rows, err := r.Pool.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to query group expenses: %w", err)
	}
	modelExpenses, err := scanGroupExpenseRows(rows)
	if err != nil {
		return nil, err
	}
	return r.attachSplits(ctx, modelExpenses)
}

func (r *PgxGroupExpenseRepository) FindExpensesByMember(ctx context.Context, memberID, email string) ([]domain.GroupExpense, error) {
	query := `
        SELECT DISTINCT ge.group_expense_id, ge.group_id, ge.name, ge.amount, ge.expense_date, ge.expense_category, ge.payment, ge.comment, ge.created_by, ge.created_at, ge.seq
        FROM group_expenses ge
        JOIN split_members sm ON sm.group_expense_id = ge.group_expense_id
        WHERE sm.member_id = $1 OR sm.member_id = $2
        ORDER BY ge.seq;
    `
	rows, err := r.Pool.Query(ctx, query, memberID, email)
	if err != nil {
		return nil, fmt.Errorf("failed to query member expenses: %w", err)
	}
	defer rows.Close()

	modelExpenses := []models.GroupExpense{}
	for rows.Next() {
		var m models.GroupExpense
		var seq int64
		err := rows.Scan(
			&m.GroupExpenseID,
			&m.GroupID,
			&m.Name,
			&m.Amount,
			&m.ExpenseDate,
			&m.ExpenseCategory,
			&m.Payment,
			&m.Comment,
			&m.CreatedBy,
			&m.CreatedAt,
			&seq,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group expense row: %w", err)
		}
		modelExpenses = append(modelExpenses, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating group expense rows: %w", rows.Err())
	}

	return r.attachSplits(ctx, modelExpenses)
}

func scanGroupExpenseRows(rows pgx.Rows) ([]models.GroupExpense, error) {
	defer rows.Close()

	modelExpenses := []models.GroupExpense{}
	for rows.Next() {
		var m models.GroupExpense
		err := rows.Scan(
			&m.GroupExpenseID,
			&m.GroupID,
			&m.Name,
			&m.Amount,
			&m.ExpenseDate,
			&m.ExpenseCategory,
			&m.Payment,
			&m.Comment,
			&m.CreatedBy,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group expense row: %w", err)
		}
		modelExpenses = append(modelExpenses, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating group expense rows: %w", rows.Err())
	}
	return modelExpenses, nil
}

func (r *PgxGroupExpenseRepository) attachSplits(ctx context.Context, modelExpenses []models.GroupExpense) ([]domain.GroupExpense, error) {
	expenses := make([]domain.GroupExpense, len(modelExpenses))
	for i, m := range modelExpenses {
		splits, err := r.findSplits(ctx, m.GroupExpenseID)
		if err != nil {
			return nil, err
		}
		expenses[i] = mapping.ToDomainGroupExpense(m, splits)
	}
	return expenses, nil
}

func (r *PgxGroupExpenseRepository) findSplits(ctx context.Context, groupExpenseID string) ([]models.SplitMember, error) {
	query := `
        SELECT split_id, group_expense_id, member_id, share_amount, status
        FROM split_members
        WHERE group_expense_id = $1
        ORDER BY split_id;
    `
	rows, err := r.Pool.Query(ctx, query, groupExpenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query split entries: %w", err)
	}
	defer rows.Close()

	splits := []models.SplitMember{}
	for rows.Next() {
		var m models.SplitMember
		if err := rows.Scan(&m.SplitID, &m.GroupExpenseID, &m.MemberID, &m.ShareAmount, &m.Status); err != nil {
			return nil, fmt.Errorf("failed to scan split row: %w", err)
		}
		splits = append(splits, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating split rows: %w", rows.Err())
	}
	return splits, nil
}

func (r *PgxGroupExpenseRepository) FindSplitByID(ctx context.Context, splitID string) (*domain.SplitMember, error) {
	query := `
		SELECT split_id, group_expense_id, member_id, share_amount, status
		FROM split_members
		WHERE split_id = $1;
	`
	var m models.SplitMember
	err := r.Pool.QueryRow(ctx, query, splitID).Scan(&m.SplitID, &m.GroupExpenseID, &m.MemberID, &m.ShareAmount, &m.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("split entry not found")
		}
		return nil, fmt.Errorf("failed to find split entry %s: %w", splitID, err)
	}

	d := mapping.ToDomainSplitMember(m)
	return &d, nil
}

func (r *PgxGroupExpenseRepository) MarkSplitReceived(ctx context.Context, splitID string) error {
	query := `UPDATE split_members SET status = 'Received' WHERE split_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, splitID)
	if err != nil {
		return fmt.Errorf("failed to mark split received: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("split entry not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
