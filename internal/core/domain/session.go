package domain

// SavedSession is a login-session snapshot kept per account. The fetch
// endpoint returns the oldest one, so in practice each account carries a
// single meaningful entry.
type SavedSession struct {
	SessionID      string `json:"sessionID"`
	UserID         string `json:"userid"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	FirstLoginDate string `json:"firstlogindate"`
	LastLoginDate  string `json:"lastlogindate"`
	ExpenseLogged  int    `json:"expenselogged"`
}
