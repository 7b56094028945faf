package services

import (
	"context"

	"github.com/splitnest/expense_tracker_app/internal/core/domain"
	"github.com/splitnest/expense_tracker_app/internal/dto"
)

// UserReaderSvc defines read operations for account data
type UserReaderSvc interface {
	// GetUserByID retrieves an account by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves an account by email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriterSvc defines write operations for account data
type UserWriterSvc interface {
	// CreateUser registers a new account with a hashed password.
	CreateUser(ctx context.Context, req dto.SignupRequest) (*domain.User, error)

	// UpdateName rewrites the account's name and username.
	UpdateName(ctx context.Context, userID string, req dto.UpdateNameRequest) error
}

// UserLifecycleSvc defines operations for account lifecycle
type UserLifecycleSvc interface {
	// DeleteUser removes an account permanently.
	DeleteUser(ctx context.Context, userID string) error
}

// UserAuthSvc defines operations for credential checks
type UserAuthSvc interface {
	// AuthenticateUser verifies email and password.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)
}

// CategorySvc defines operations for the account's category tags
type CategorySvc interface {
	// ListCategories retrieves the account's tags in insertion order.
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)

	// SaveCategories appends a batch of tags for the account.
	SaveCategories(ctx context.Context, userID string, names []string) error
}

// UserSvcFacade combines all account-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
	UserAuthSvc
	CategorySvc
}
