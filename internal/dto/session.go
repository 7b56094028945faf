package dto

import (
	"github.com/splitnest/expense_tracker_app/internal/core/domain"
)

// SaveSessionRequest defines the data for saving a login-session snapshot.
type SaveSessionRequest struct {
	UserID         string `json:"userid" binding:"required"`
	Username       string `json:"username" binding:"required"`
	Name           string `json:"name" binding:"required"`
	FirstLoginDate string `json:"firstlogindate" binding:"required"`
	LastLoginDate  string `json:"lastlogindate" binding:"required"`
	ExpenseLogged  int    `json:"expenselogged"`
}

// UpdateSessionRequest defines the mutable fields of a saved session.
type UpdateSessionRequest struct {
	LastLoginDate string `json:"lastlogindate" binding:"required"`
	ExpenseLogged int    `json:"expenselogged"`
}

// SessionResponse defines the data returned for a saved session.
type SessionResponse struct {
	SessionID      string `json:"_id"`
	UserID         string `json:"userid"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	FirstLoginDate string `json:"firstlogindate"`
	LastLoginDate  string `json:"lastlogindate"`
	ExpenseLogged  int    `json:"expenselogged"`
}

// ToSessionResponse converts a domain.SavedSession to SessionResponse DTO
func ToSessionResponse(s *domain.SavedSession) SessionResponse {
	return SessionResponse{
		SessionID:      s.SessionID,
		UserID:         s.UserID,
		Username:       s.Username,
		Name:           s.Name,
		FirstLoginDate: s.FirstLoginDate,
		LastLoginDate:  s.LastLoginDate,
		ExpenseLogged:  s.ExpenseLogged,
	}
}

// SaveCategoriesRequest defines the batch of category tags to append.
type SaveCategoriesRequest struct {
	Categories []string `json:"categories" binding:"required,min=1,dive,min=1,max=15,alphaspace"`
}

// UpdateProfileRequest rewrites the display fields on a saved session.
type UpdateProfileRequest struct {
	Username string `json:"username" binding:"required,min=5,max=30,usernamefmt"`
	Name     string `json:"name" binding:"required,min=3,max=30,alphaspace"`
}

// UpdateNameRequest rewrites the account's name and username.
type UpdateNameRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=30,alphaspace"`
	Username string `json:"username" binding:"required,min=5,max=30,usernamefmt"`
}

// CategoryListResponse wraps the user's category tags.
type CategoryListResponse struct {
	Categories []string `json:"categories"`
}

// ToCategoryListResponse flattens category rows to their tag names.
func ToCategoryListResponse(categories []domain.Category) CategoryListResponse {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}
	return CategoryListResponse{Categories: names}
}
