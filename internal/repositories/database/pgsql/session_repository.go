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

type PgxSessionRepository struct {
	BaseRepository
}

func newPgxSessionRepository(db *pgxpool.Pool) portsrepo.SessionRepositoryFacade {
	return &PgxSessionRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.SessionRepositoryFacade = (*PgxSessionRepository)(nil)

func (r *PgxSessionRepository) SaveSession(ctx context.Context, session domain.SavedSession) error {
	m := mapping.ToModelSavedSession(session)
	query := `
        INSERT INTO saved_sessions (session_id, user_id, username, name, first_login_date, last_login_date, expense_logged)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.SessionID,
		m.UserID,
		m.Username,
		m.Name,
		m.FirstLoginDate,
		m.LastLoginDate,
		m.ExpenseLogged,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *PgxSessionRepository) FindOldestSessionByUserID(ctx context.Context, userID string) (*domain.SavedSession, error) {
	// the earliest snapshot is the canonical one
	query := `
		SELECT session_id, user_id, username, name, first_login_date, last_login_date, expense_logged
		FROM saved_sessions
		WHERE user_id = $1
		ORDER BY seq
		LIMIT 1;
	`
	var m models.SavedSession
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.SessionID,
		&m.UserID,
		&m.Username,
		&m.Name,
		&m.FirstLoginDate,
		&m.LastLoginDate,
		&m.ExpenseLogged,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("saved session not found")
		}
		return nil, fmt.Errorf("failed to find session for user %s: %w", userID, err)
	}

	d := mapping.ToDomainSavedSession(m)
	return &d, nil
}

func (r *PgxSessionRepository) UpdateSessions(ctx context.Context, userID, lastLoginDate string, expenseLogged int) (int64, error) {
	query := `
        UPDATE saved_sessions
        SET last_login_date = $1, expense_logged = $2
        WHERE user_id = $3;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, lastLoginDate, expenseLogged, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to update sessions: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

func (r *PgxSessionRepository) UpdateSessionProfile(ctx context.Context, userID, username, name string) (int64, error) {
	query := `
        UPDATE saved_sessions
        SET username = $1, name = $2
        WHERE user_id = $3;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, username, name, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to update session profile: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
