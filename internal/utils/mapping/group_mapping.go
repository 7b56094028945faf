package mapping

import (
	"github.com/splitnest/expense_tracker_app/internal/core/domain"
	"github.com/splitnest/expense_tracker_app/internal/models"
)

// ToDomainGroup converts a models.Group (with its loaded member list) to domain form.
func ToDomainGroup(m models.Group) domain.Group {
	return domain.Group{
		GroupID:   m.GroupID,
		Name:      m.Name,
		CreatedBy: m.CreatedBy,
		Members:   m.Members,
		CreatedAt: m.CreatedAt,
	}
}

// ToModelGroupExpense converts a domain.GroupExpense to its database model.
// Split members are persisted separately in the split ledger.
func ToModelGroupExpense(d domain.GroupExpense) models.GroupExpense {
	return models.GroupExpense{
		GroupExpenseID:  d.GroupExpenseID,
		GroupID:         d.GroupID,
		Name:            d.Name,
		Amount:          d.Amount,
		ExpenseDate:     d.ExpenseDate,
		ExpenseCategory: d.ExpenseCategory,
		Payment:         d.Payment,
		Comment:         d.Comment,
		CreatedBy:       d.CreatedBy,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainGroupExpense converts a models.GroupExpense plus its split rows to domain form.
func ToDomainGroupExpense(m models.GroupExpense, splits []models.SplitMember) domain.GroupExpense {
	d := domain.GroupExpense{
		GroupExpenseID:  m.GroupExpenseID,
		GroupID:         m.GroupID,
		Name:            m.Name,
		Amount:          m.Amount,
		ExpenseDate:     m.ExpenseDate,
		ExpenseCategory: m.ExpenseCategory,
		Payment:         m.Payment,
		Comment:         m.Comment,
		CreatedBy:       m.CreatedBy,
		CreatedAt:       m.CreatedAt,
	}
	d.SplitMembers = make([]domain.SplitMember, len(splits))
	for i, s := range splits {
		d.SplitMembers[i] = ToDomainSplitMember(s)
	}
	return d
}

// ToModelSplitMember converts a domain.SplitMember to its database model.
func ToModelSplitMember(d domain.SplitMember) models.SplitMember {
	return models.SplitMember{
		SplitID:        d.SplitID,
		GroupExpenseID: d.GroupExpenseID,
		MemberID:       d.MemberID,
		ShareAmount:    d.ShareAmount,
		Status:         string(d.Status),
	}
}

// ToDomainSplitMember converts a models.SplitMember to its domain form.
func ToDomainSplitMember(m models.SplitMember) domain.SplitMember {
	return domain.SplitMember{
		SplitID:        m.SplitID,
		GroupExpenseID: m.GroupExpenseID,
		MemberID:       m.MemberID,
		ShareAmount:    m.ShareAmount,
		Status:         domain.SplitStatus(m.Status),
	}
}
