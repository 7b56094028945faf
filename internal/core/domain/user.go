package domain

// User represents a registered account.
type User struct {
	UserID       string `json:"userID"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	// SignupDate is the caller-supplied signup date; the format is not
	// validated, matching the rest of the date fields in this system.
	SignupDate string `json:"userfirstsignupdate"`
	AuditFields
}

// Category is a free-form tag on an account's category list.
type Category struct {
	CategoryID int64  `json:"-"`
	UserID     string `json:"-"`
	Name       string `json:"name"`
}
