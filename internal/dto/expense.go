package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/splitnest/expense_tracker_app/internal/core/domain"
)

// CreateExpenseRequest defines the data needed to log a personal expense.
// UserID is cross-checked against the token subject before anything runs.
type CreateExpenseRequest struct {
	UserID          string          `json:"userid" binding:"required"`
	Name            string          `json:"name" binding:"required,min=3,max=15"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	ExpenseDate     string          `json:"expensedate" binding:"required"`
	ExpenseCategory string          `json:"expensecategory" binding:"required,min=1,max=15,alphaspace"`
	Payment         string          `json:"payment" binding:"required,min=1,max=20"`
	Comment         string          `json:"comment" binding:"max=200"`
}

// UpdateExpenseRequest defines the data allowed for a partial expense update.
// Pointers distinguish omitted fields from zero-value fields.
type UpdateExpenseRequest struct {
	Name            *string          `json:"name" binding:"omitempty,min=3,max=15"`
	Amount          *decimal.Decimal `json:"amount"`
	ExpenseDate     *string          `json:"expensedate"`
	ExpenseCategory *string          `json:"expensecategory" binding:"omitempty,min=1,max=15,alphaspace"`
	Payment         *string          `json:"payment" binding:"omitempty,min=1,max=20"`
	Comment         *string          `json:"comment" binding:"omitempty,max=200"`
}

// ExpenseResponse defines the data returned for a personal expense.
type ExpenseResponse struct {
	ExpenseID       string          `json:"_id"`
	UserID          string          `json:"userid"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	ExpenseDate     string          `json:"expensedate"`
	ExpenseCategory string          `json:"expensecategory"`
	Payment         string          `json:"payment"`
	Comment         string          `json:"comment"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:       e.ExpenseID,
		UserID:          e.UserID,
		Name:            e.Name,
		Amount:          e.Amount,
		ExpenseDate:     e.ExpenseDate,
		ExpenseCategory: e.ExpenseCategory,
		Payment:         e.Payment,
		Comment:         e.Comment,
		CreatedAt:       e.CreatedAt,
	}
}

// ToListExpenseResponse converts a slice of domain.Expense to response DTOs
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		res[i] = ToExpenseResponse(&e)
	}
	return res
}
