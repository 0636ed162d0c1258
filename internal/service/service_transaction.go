// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/angaro192/crud-financas/internal/logger"
	"github.com/angaro192/crud-financas/internal/store"
	"github.com/angaro192/crud-financas/internal/utils"
	"github.com/angaro192/crud-financas/models"
)

// transactionService is the default [TransactionService] implementation. It
// assigns identifiers, enforces owner scoping, and computes the aggregate
// statistics on top of a [store.TransactionRepository].
type transactionService struct {
	transactions store.TransactionRepository
	logger       *logger.Logger
	generator    *utils.UUIDGenerator
}

// NewTransactionService constructs a [TransactionService] backed by the
// given repository.
func NewTransactionService(transactions store.TransactionRepository, logger *logger.Logger) TransactionService {
	logger.Debug().Msg("creating transaction service")
	return &transactionService{
		transactions: transactions,
		logger:       logger,
		generator:    utils.NewUUIDGenerator(),
	}
}

// Create persists a validated transaction under a fresh identifier, owned by
// userID.
func (s *transactionService) Create(ctx context.Context, userID utils.UUID, transaction models.FinancialTransaction) (models.FinancialTransaction, error) {
	transaction.ID = s.generator.Generate().String()
	transaction.UserID = userID.String()

	return s.transactions.Create(ctx, transaction)
}

// GetByID returns the transaction scoped to (id, userID).
func (s *transactionService) GetByID(ctx context.Context, id string, userID utils.UUID) (models.FinancialTransaction, error) {
	return s.transactions.GetByID(ctx, id, userID.String())
}

// List returns one page of the owner's transactions plus the pagination
// window describing the full result set. The page beyond the data is an
// empty slice, never an error.
func (s *transactionService) List(ctx context.Context, filter models.TransactionFilter) ([]models.FinancialTransaction, models.Pagination, error) {
	transactions, err := s.transactions.List(ctx, filter)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	total, err := s.transactions.Count(ctx, filter)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	pagination := models.Pagination{
		Page:       filter.Page,
		Limit:      filter.Limit,
		Total:      total,
		TotalPages: totalPages(total, filter.Limit),
	}

	return transactions, pagination, nil
}

// Update applies a partial update to the transaction scoped to (id, userID)
// and returns the updated record.
//
// An empty update is answered with the current record unchanged: the
// round-trip read keeps the not-found semantics identical to a real update.
func (s *transactionService) Update(ctx context.Context, id string, userID utils.UUID, update models.TransactionUpdate) (models.FinancialTransaction, error) {
	if update.IsEmpty() {
		return s.transactions.GetByID(ctx, id, userID.String())
	}

	return s.transactions.Update(ctx, id, userID.String(), update)
}

// Delete removes the transaction scoped to (id, userID).
func (s *transactionService) Delete(ctx context.Context, id string, userID utils.UUID) error {
	return s.transactions.Delete(ctx, id, userID.String())
}

// Stats computes the aggregate statistics for the owner's transactions
// matching filter: per-category sums and counts, the overall record count,
// and the balance (income minus expenses). An account with no matching
// records aggregates to exact zeros.
func (s *transactionService) Stats(ctx context.Context, filter models.TransactionFilter) (models.TransactionStats, error) {
	receitasSum, receitasCount, err := s.transactions.AggregateByTipo(ctx, filter, models.Receita)
	if err != nil {
		return models.TransactionStats{}, fmt.Errorf("aggregating receitas: %w", err)
	}

	despesasSum, despesasCount, err := s.transactions.AggregateByTipo(ctx, filter, models.Despesa)
	if err != nil {
		return models.TransactionStats{}, fmt.Errorf("aggregating despesas: %w", err)
	}

	return models.TransactionStats{
		TotalTransactions: receitasCount + despesasCount,
		TotalReceitas: models.TipoAggregate{
			Amount: receitasSum,
			Count:  receitasCount,
		},
		TotalDespesas: models.TipoAggregate{
			Amount: despesasSum,
			Count:  despesasCount,
		},
		Saldo: receitasSum.Sub(despesasSum),
	}, nil
}

// totalPages computes how many pages of size limit the result set spans.
// Zero rows still report zero pages, matching the wire contract.
func totalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
