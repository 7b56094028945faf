package mapping

import (
	"github.com/splitnest/expense_tracker_app/internal/core/domain"
	"github.com/splitnest/expense_tracker_app/internal/models"
)

// ToModelExpense converts a domain.Expense to its database model.
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:       d.ExpenseID,
		UserID:          d.UserID,
		Name:            d.Name,
		Amount:          d.Amount,
		ExpenseDate:     d.ExpenseDate,
		ExpenseCategory: d.ExpenseCategory,
		Payment:         d.Payment,
		Comment:         d.Comment,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainExpense converts a models.Expense to its domain form.
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:       m.ExpenseID,
		UserID:          m.UserID,
		Name:            m.Name,
		Amount:          m.Amount,
		ExpenseDate:     m.ExpenseDate,
		ExpenseCategory: m.ExpenseCategory,
		Payment:         m.Payment,
		Comment:         m.Comment,
		CreatedAt:       m.CreatedAt,
	}
}

// ToDomainExpenseSlice converts a slice of models.Expense to domain form.
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}

// ToModelSavedSession converts a domain.SavedSession to its database model.
func ToModelSavedSession(d domain.SavedSession) models.SavedSession {
	return models.SavedSession{
		SessionID:      d.SessionID,
		UserID:         d.UserID,
		Username:       d.Username,
		Name:           d.Name,
		FirstLoginDate: d.FirstLoginDate,
		LastLoginDate:  d.LastLoginDate,
		ExpenseLogged:  d.ExpenseLogged,
	}
}

// ToDomainSavedSession converts a models.SavedSession to its domain form.
func ToDomainSavedSession(m models.SavedSession) domain.SavedSession {
	return domain.SavedSession{
		SessionID:      m.SessionID,
		UserID:         m.UserID,
		Username:       m.Username,
		Name:           m.Name,
		FirstLoginDate: m.FirstLoginDate,
		LastLoginDate:  m.LastLoginDate,
		ExpenseLogged:  m.ExpenseLogged,
	}
}
