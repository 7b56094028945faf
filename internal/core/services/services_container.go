package services

import (
	portsrepo "github.com/splitnest/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/splitnest/expense_tracker_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:         NewUserService(repos.UserRepo),
		Expense:      NewExpenseService(repos.ExpenseRepo),
		Session:      NewSessionService(repos.SessionRepo),
		Group:        NewGroupService(repos.GroupRepo),
		GroupExpense: NewGroupExpenseService(repos.GroupExpenseRepo, repos.GroupRepo, repos.UserRepo),
	}
}
