package dto

import (
	"github.com/splitnest/expense_tracker_app/internal/core/domain"
)

// SignupRequest defines the data needed to register a new account.
type SignupRequest struct {
	Name       string `json:"name" binding:"required,min=3,max=30,alphaspace"`
	Username   string `json:"username" binding:"required,min=5,max=30,usernamefmt"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=5"`
	SignupDate string `json:"userfirstsignupdate"` // Optional, defaults to the server clock
}

// LoginRequest defines the credentials for a login attempt.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the signed token plus the account snapshot.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse defines the account data returned to clients.
type UserResponse struct {
	UserID     string `json:"userid"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	SignupDate string `json:"userfirstsignupdate"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:     user.UserID,
		Name:       user.Name,
		Username:   user.Username,
		Email:      user.Email,
		SignupDate: user.SignupDate,
	}
}
