package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/splitnest/expense_tracker_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		ExpenseRepo:      newPgxExpenseRepository(dbPool),
		SessionRepo:      newPgxSessionRepository(dbPool),
		GroupRepo:        newPgxGroupRepository(dbPool),
		GroupExpenseRepo: newPgxGroupExpenseRepository(dbPool),
	}
}
