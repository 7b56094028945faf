package repositories

import (
	"context"

	"github.com/splitnest/expense_tracker_app/internal/core/domain"
)

// UserReader defines read operations for account data
type UserReader interface {
	// FindUserByID retrieves a specific account by its ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a specific account by its email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for account data
type UserWriter interface {
	// SaveUser persists a new account.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUserName rewrites the account's name and username.
	UpdateUserName(ctx context.Context, userID, name, username string) error
}

// UserLifecycleManager defines operations for account lifecycle
type UserLifecycleManager interface {
	// DeleteUser removes an account permanently.
	DeleteUser(ctx context.Context, userID string) error
}

// CategoryReader defines read operations for category tags
type CategoryReader interface {
	// FindCategoriesByUserID retrieves the account's tags in insertion order.
	FindCategoriesByUserID(ctx context.Context, userID string) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category tags
type CategoryWriter interface {
	// SaveCategories appends a batch of tags for the account.
	SaveCategories(ctx context.Context, userID string, names []string) error
}

// UserRepositoryFacade combines all account-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserLifecycleManager
	CategoryReader
	CategoryWriter
}
