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

type PgxGroupRepository struct {
	BaseRepository
}

func newPgxGroupRepository(db *pgxpool.Pool) portsrepo.GroupRepositoryFacade {
	return &PgxGroupRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.GroupRepositoryFacade = (*PgxGroupRepository)(nil)

// SaveGroup inserts the group row and its initial member list in one
// transaction so a half-created group never becomes visible.
func (r *PgxGroupRepository) SaveGroup(ctx context.Context, group domain.Group) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	groupQuery := `
        INSERT INTO groups (group_id, name, created_by, created_at)
        VALUES ($1, $2, $3, $4);
    `
	if _, err := tx.Exec(ctx, groupQuery, group.GroupID, group.Name, group.CreatedBy, group.CreatedAt); err != nil {
		return fmt.Errorf("failed to save group: %w", err)
	}

	batch := &pgx.Batch{}
	memberQuery := `INSERT INTO group_members (group_id, email) VALUES ($1, $2);`
	for _, email := range group.Members {
		batch.Queue(memberQuery, group.GroupID, email)
	}
	results := tx.SendBatch(ctx, batch)
	for range group.Members {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to insert group member: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close member batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxGroupRepository) FindGroupByID(ctx context.Context, groupID string) (*domain.Group, error) {
	query := `
		SELECT group_id, name, created_by, created_at
		FROM groups
		WHERE group_id = $1;
	`
	var m models.Group
	err := r.Pool.QueryRow(ctx, query, groupID).Scan(&m.GroupID, &m.Name, &m.CreatedBy, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("group not found")
		}
		return nil, fmt.Errorf("failed to find group by ID %s: %w", groupID, err)
	}

	members, err := r.findMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}
	m.Members = members

	d := mapping.ToDomainGroup(m)
	return &d, nil
}

func (r *PgxGroupRepository) findMembers(ctx context.Context, groupID string) ([]string, error) {
	query := `
        SELECT email
        FROM group_members
        WHERE group_id = $1
        ORDER BY member_row_id;
    `
	rows, err := r.Pool.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to query group members: %w", err)
	}
	defer rows.Close()

	members := []string{}
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("failed to scan member row: %w", err)
		}
		members = append(members, email)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", rows.Err())
	}
	return members, nil
}

func (r *PgxGroupRepository) FindGroupsByMemberEmail(ctx context.Context, email string) ([]domain.Group, error) {
	query := `
        SELECT DISTINCT g.group_id, g.name, g.created_by, g.created_at
        FROM groups g
        JOIN group_members gm ON gm.group_id = g.group_id
        WHERE gm.email = $1
        ORDER BY g.created_at;
    `
	rows, err := r.Pool.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to query groups by member: %w", err)
	}
	defer rows.Close()

	modelGroups := []models.Group{}
	for rows.Next() {
		var m models.Group
		if err := rows.Scan(&m.GroupID, &m.Name, &m.CreatedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan group row: %w", err)
		}
		modelGroups = append(modelGroups, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating group rows: %w", rows.Err())
	}

	groups := make([]domain.Group, len(modelGroups))
	for i, m := range modelGroups {
		members, err := r.findMembers(ctx, m.GroupID)
		if err != nil {
			return nil, err
		}
		m.Members = members
		groups[i] = mapping.ToDomainGroup(m)
	}
	return groups, nil
}

func (r *PgxGroupRepository) AddMembers(ctx context.Context, groupID string, emails []string) error {
	batch := &pgx.Batch{}
	query := `INSERT INTO group_members (group_id, email) VALUES ($1, $2);`
	for _, email := range emails {
		batch.Queue(query, groupID, email)
	}

	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()

	for range emails {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert group member: %w", err)
		}
	}
	return nil
}

func (r *PgxGroupRepository) RemoveMembers(ctx context.Context, groupID string, emails []string) error {
	query := `DELETE FROM group_members WHERE group_id = $1 AND email = ANY($2);`
	if _, err := r.Pool.Exec(ctx, query, groupID, emails); err != nil {
		return fmt.Errorf("failed to remove group members: %w", err)
	}
	return nil
}

func (r *PgxGroupRepository) RenameGroup(ctx context.Context, groupID, name string) error {
	query := `UPDATE groups SET name = $1 WHERE group_id = $2;`
	cmdTag, err := r.Pool.Exec(ctx, query, name, groupID)
	if err != nil {
		return fmt.Errorf("failed to rename group: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("group not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxGroupRepository) DeleteGroup(ctx context.Context, groupID string) error {
	query := `DELETE FROM groups WHERE group_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, groupID)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("group not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
