package models

import "time"

// User is the database representation of an account.
type User struct {
	UserID        string    `db:"user_id"`
	Name          string    `db:"name"`
	Username      string    `db:"username"`
	Email         string    `db:"email"`
	PasswordHash  string    `db:"password_hash"`
	SignupDate    string    `db:"signup_date"`
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}

// Category is one row of an account's category list.
type Category struct {
	CategoryID int64  `db:"category_id"`
	UserID     string `db:"user_id"`
	Name       string `db:"name"`
}
