package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SplitStatus is the settlement state of one member's share.
type SplitStatus string

const (
	// SplitPending is the initial state of every share.
	SplitPending SplitStatus = "Pending"
	// SplitReceived is terminal; there is no reverse transition.
	SplitReceived SplitStatus = "Received"
)

// Group is a named collection of member emails and shared expenses.
// Members are stored by email, not by account reference: membership must
// survive invitees who have not signed up yet.
type Group struct {
	GroupID   string    `json:"groupID"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"groupcreatedby"`
	Members   []string  `json:"members"`
	CreatedAt time.Time `json:"groupcreatedat"`
}

// IsMember reports whether the given email is on the member list.
func (g *Group) IsMember(email string) bool {
	for _, m := range g.Members {
		if m == email {
			return true
		}
	}
	return false
}

// GroupExpense is a shared expense inside a group, with its cost split
// across members.
type GroupExpense struct {
	GroupExpenseID  string          `json:"groupExpenseID"`
	GroupID         string          `json:"groupID"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	ExpenseDate     string          `json:"expense_date"`
	ExpenseCategory string          `json:"expense_category"`
	Payment         string          `json:"payment"`
	Comment         string          `json:"comment,omitempty"`
	CreatedBy       string          `json:"userid"`
	CreatedAt       time.Time       `json:"createdAt"`
	SplitMembers    []SplitMember   `json:"split_members"`
}

// SplitMember is one member's share of a group expense, settled
// independently of the other shares.
type SplitMember struct {
	SplitID        string          `json:"splitID"`
	GroupExpenseID string          `json:"groupExpenseID"`
	MemberID       string          `json:"member_id"`
	ShareAmount    decimal.Decimal `json:"shareamount"`
	Status         SplitStatus     `json:"status"`
}
