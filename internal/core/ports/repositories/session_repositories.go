package repositories

import (
	"context"

	"github.com/splitnest/expense_tracker_app/internal/core/domain"
)

// SessionReader defines read operations for saved login sessions
type SessionReader interface {
	// FindOldestSessionByUserID retrieves the account's earliest session row.
	FindOldestSessionByUserID(ctx context.Context, userID string) (*domain.SavedSession, error)
}

// SessionWriter defines write operations for saved login sessions
type SessionWriter interface {
	// SaveSession appends a session snapshot.
	SaveSession(ctx context.Context, session domain.SavedSession) error

	// UpdateSessions rewrites last login date and logged count on the
	// account's session rows. Returns the number of rows touched.
	UpdateSessions(ctx context.Context, userID, lastLoginDate string, expenseLogged int) (int64, error)

	// UpdateSessionProfile rewrites username and name on the account's
	// session rows. Returns the number of rows touched.
	UpdateSessionProfile(ctx context.Context, userID, username, name string) (int64, error)
}

// SessionRepositoryFacade combines the saved session repository interfaces
type SessionRepositoryFacade interface {
	SessionReader
	SessionWriter
}
