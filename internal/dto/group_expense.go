package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/splitnest/expense_tracker_app/internal/core/domain"
)

// SplitEntryRequest is one member's share inside a shared expense.
type SplitEntryRequest struct {
	MemberID    string          `json:"member_id" binding:"required"`
	ShareAmount decimal.Decimal `json:"shareamount" binding:"required"`
}

// CreateGroupExpenseRequest defines the data for logging a shared expense.
// Every split entry starts out Pending regardless of what the client sends.
type CreateGroupExpenseRequest struct {
	Name            string              `json:"name" binding:"required,min=3,max=15"`
	Amount          decimal.Decimal     `json:"amount" binding:"required"`
	ExpenseDate     string              `json:"expensedate" binding:"required"`
	ExpenseCategory string              `json:"expensecategory" binding:"required,min=1,max=15,alphaspace"`
	Payment         string              `json:"payment" binding:"required,min=1,max=20"`
	Comment         string              `json:"comment" binding:"max=200"`
	SplitMembers    []SplitEntryRequest `json:"split_members" binding:"required,min=1,dive"`
}

// SplitEntryResponse defines the data returned for one split entry.
type SplitEntryResponse struct {
	SplitID     string             `json:"_id"`
	MemberID    string             `json:"member_id"`
	ShareAmount decimal.Decimal    `json:"shareamount"`
	Status      domain.SplitStatus `json:"status"`
}

// GroupExpenseResponse defines the data returned for a shared expense.
type GroupExpenseResponse struct {
	GroupExpenseID  string               `json:"_id"`
	GroupID         string               `json:"groupid"`
	Name            string               `json:"name"`
	Amount          decimal.Decimal      `json:"amount"`
	ExpenseDate     string               `json:"expensedate"`
	ExpenseCategory string               `json:"expensecategory"`
	Payment         string               `json:"payment"`
	Comment         string               `json:"comment"`
	CreatedBy       string               `json:"userid"`
	CreatedAt       time.Time            `json:"createdAt"`
	SplitMembers    []SplitEntryResponse `json:"split_members"`
}

// ToGroupExpenseResponse converts a domain.GroupExpense to its response DTO
func ToGroupExpenseResponse(e *domain.GroupExpense) GroupExpenseResponse {
	splits := make([]SplitEntryResponse, len(e.SplitMembers))
	for i, s := range e.SplitMembers {
		splits[i] = SplitEntryResponse{
			SplitID:     s.SplitID,
			MemberID:    s.MemberID,
			ShareAmount: s.ShareAmount,
			Status:      s.Status,
		}
	}
	return GroupExpenseResponse{
		GroupExpenseID:  e.GroupExpenseID,
		GroupID:         e.GroupID,
		Name:            e.Name,
		Amount:          e.Amount,
		ExpenseDate:     e.ExpenseDate,
		ExpenseCategory: e.ExpenseCategory,
		Payment:         e.Payment,
		Comment:         e.Comment,
		CreatedBy:       e.CreatedBy,
		CreatedAt:       e.CreatedAt,
		SplitMembers:    splits,
	}
}

// ToListGroupExpenseResponse converts shared expenses to response DTOs
func ToListGroupExpenseResponse(expenses []domain.GroupExpense) []GroupExpenseResponse {
	res := make([]GroupExpenseResponse, len(expenses))
	for i, e := range expenses {
		res[i] = ToGroupExpenseResponse(&e)
	}
	return res
}

// GroupWithExpensesResponse bundles a group with its shared expenses.
type GroupWithExpensesResponse struct {
	Group    GroupResponse          `json:"group"`
	Expenses []GroupExpenseResponse `json:"expenses"`
}

// MemberIDResponse maps a member email to its account id.
type MemberIDResponse struct {
	Email  string `json:"email"`
	UserID string `json:"userid"`
}

// MemberEmailResponse maps an account id to its email.
type MemberEmailResponse struct {
	UserID string `json:"userid"`
	Email  string `json:"email"`
}
