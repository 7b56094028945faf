package models

// SavedSession is the database representation of a login-session snapshot.
type SavedSession struct {
	SessionID      string `db:"session_id"`
	UserID         string `db:"user_id"`
	Username       string `db:"username"`
	Name           string `db:"name"`
	FirstLoginDate string `db:"first_login_date"`
	LastLoginDate  string `db:"last_login_date"`
	ExpenseLogged  int    `db:"expense_logged"`
}
