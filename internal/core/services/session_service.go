package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/splitnest/expense_tracker_app/internal/apperrors"
	"github.com/splitnest/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/splitnest/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/splitnest/expense_tracker_app/internal/core/ports/services"
	"github.com/splitnest/expense_tracker_app/internal/dto"
	"github.com/splitnest/expense_tracker_app/internal/middleware"
)

// SessionService handles business logic for saved login-session snapshots.
type SessionService struct {
	sessionRepo portsrepo.SessionRepositoryFacade
}

// NewSessionService creates a new SessionService.
func NewSessionService(sessionRepo portsrepo.SessionRepositoryFacade) *SessionService {
	return &SessionService{sessionRepo: sessionRepo}
}

var _ portssvc.SessionSvcFacade = (*SessionService)(nil)

// SaveSession appends a session snapshot for the account.
func (s *SessionService) SaveSession(ctx context.Context, req dto.SaveSessionRequest) (*domain.SavedSession, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	session := domain.SavedSession{
		SessionID:      uuid.NewString(),
		UserID:         req.UserID,
		Username:       req.Username,
		Name:           req.Name,
		FirstLoginDate: req.FirstLoginDate,
		LastLoginDate:  req.LastLoginDate,
		ExpenseLogged:  req.ExpenseLogged,
	}

	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		logger.Error("Failed to save session in repository", slog.String("error", err.Error()), slog.String("user_id", req.UserID))
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	logger.Info("Session saved", slog.String("session_id", session.SessionID), slog.String("user_id", req.UserID))
	return &session, nil
}

// GetSession retrieves the account's earliest session row.
func (s *SessionService) GetSession(ctx context.Context, userID string) (*domain.SavedSession, error) {
	session, err := s.sessionRepo.FindOldestSessionByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// UpdateSession rewrites the last login date and logged count on the
// account's session rows. No rows touched means ErrNotFound.
func (s *SessionService) UpdateSession(ctx context.Context, userID string, req dto.UpdateSessionRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	touched, err := s.sessionRepo.UpdateSessions(ctx, userID, req.LastLoginDate, req.ExpenseLogged)
	if err != nil {
		logger.Error("Failed to update sessions", slog.String("error", err.Error()), slog.String("user_id", userID))
		return fmt.Errorf("failed to update session: %w", err)
	}
	if touched == 0 {
		return fmt.Errorf("%w: no saved session for user", apperrors.ErrNotFound)
	}
	return nil
}

// UpdateProfile rewrites username and name on the account's session rows.
func (s *SessionService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	touched, err := s.sessionRepo.UpdateSessionProfile(ctx, userID, req.Username, req.Name)
	if err != nil {
		logger.Error("Failed to update session profile", slog.String("error", err.Error()), slog.String("user_id", userID))
		return fmt.Errorf("failed to update session profile: %w", err)
	}
	if touched == 0 {
		return fmt.Errorf("%w: no saved session for user", apperrors.ErrNotFound)
	}

	logger.Info("Session profile updated", slog.String("user_id", userID))
	return nil
}
