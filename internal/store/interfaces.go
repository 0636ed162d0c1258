package store

import (
	"context"

	"github.com/angaro192/crud-financas/models"
	"github.com/shopspring/decimal"
)

// UserRepository is the persistence gateway for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// TransactionRepository is the persistence gateway for financial
// transactions. Every operation that addresses a single record takes both
// the record id and the owning user id; a record owned by somebody else is
// reported as [ErrTransactionNotFound], never as a distinct condition.
type TransactionRepository interface {
	Create(ctx context.Context, transaction models.FinancialTransaction) (models.FinancialTransaction, error)
	GetByID(ctx context.Context, id, userID string) (models.FinancialTransaction, error)
	List(ctx context.Context, filter models.TransactionFilter) ([]models.FinancialTransaction, error)
	Count(ctx context.Context, filter models.TransactionFilter) (int64, error)
	AggregateByTipo(ctx context.Context, filter models.TransactionFilter, tipo models.TransactionType) (decimal.Decimal, int64, error)
	Update(ctx context.Context, id, userID string, update models.TransactionUpdate) (models.FinancialTransaction, error)
	Delete(ctx context.Context, id, userID string) error
}
