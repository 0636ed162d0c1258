// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/angaro192/crud-financas/internal/logger"
	"github.com/angaro192/crud-financas/models"
	"github.com/shopspring/decimal"
)

// transactionRepository is the PostgreSQL-backed implementation of
// [TransactionRepository]. It executes all financial-transaction CRUD and
// aggregate operations against the "financial_transactions" table.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (user_id, transaction id, etc.).
type transactionRepository struct {
	*DB
	logger *logger.Logger
}

// NewTransactionRepository constructs a [TransactionRepository] backed by
// the provided database connection and logger.
func NewTransactionRepository(db *DB, logger *logger.Logger) TransactionRepository {
	logger.Debug().Msg("creating transaction repository")
	return &transactionRepository{
		DB:     db,
		logger: logger,
	}
}

// Create persists a new financial transaction and returns the fully
// populated record with server-assigned fields (CreatedAt, UpdatedAt).
func (r *transactionRepository) Create(ctx context.Context, transaction models.FinancialTransaction) (models.FinancialTransaction, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createTransaction,
		transaction.ID,
		transaction.Valor,
		transaction.Empresa,
		transaction.Data,
		string(transaction.Tipo),
		transaction.UserID,
	)

	if err := scanTransaction(row, &transaction); err != nil {
		log.Err(err).
			Str("func", "*transactionRepository.Create").
			Str("user_id", transaction.UserID).
			Msg("error: creating transaction failed")
		return models.FinancialTransaction{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return transaction, nil
}

// GetByID retrieves the transaction with the given id owned by userID.
//
// A missing record and a record owned by another user both yield
// [ErrTransactionNotFound]; the caller cannot tell them apart.
func (r *transactionRepository) GetByID(ctx context.Context, id, userID string) (models.FinancialTransaction, error) {
	log := logger.FromContext(ctx)

	var transaction models.FinancialTransaction
	row := r.DB.QueryRowContext(ctx, getTransactionByID, id, userID)

	if err := scanTransaction(row, &transaction); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.FinancialTransaction{}, ErrTransactionNotFound
		}

		log.Err(err).
			Str("func", "*transactionRepository.GetByID").
			Str("id", id).
			Str("user_id", userID).
			Msg("error: transaction lookup failed")
		return models.FinancialTransaction{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return transaction, nil
}

// List retrieves the page of transactions described by filter, always
// ordered by the transaction date, newest first.
//
// Returns an empty slice when the page is beyond the available data.
func (r *transactionRepository) List(ctx context.Context, filter models.TransactionFilter) ([]models.FinancialTransaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTransactionsQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "*transactionRepository.List").
			Str("user_id", filter.UserID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*transactionRepository.List").
			Str("user_id", filter.UserID).
			Msg("failed to execute query for listing transactions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.FinancialTransaction, 0, filter.Limit)

	for rows.Next() {
		var item models.FinancialTransaction

		scanErr := rows.Scan(
			&item.ID,
			&item.Valor,
			&item.Empresa,
			&item.Data,
			&item.Tipo,
			&item.UserID,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*transactionRepository.List").
				Str("user_id", filter.UserID).
				Msg("failed to scan transaction row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*transactionRepository.List").
			Str("user_id", filter.UserID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// Count returns the total number of transactions matching filter,
// ignoring pagination.
func (r *transactionRepository) Count(ctx context.Context, filter models.TransactionFilter) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountTransactionsQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "*transactionRepository.Count").
			Str("user_id", filter.UserID).
			Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "*transactionRepository.Count").
			Str("user_id", filter.UserID).
			Msg("failed to execute count query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// AggregateByTipo returns the sum of valor and the record count for the
// given category within filter. The sum is zero (never NULL) when no rows
// match, so an empty account still aggregates to exact zeros.
func (r *transactionRepository) AggregateByTipo(ctx context.Context, filter models.TransactionFilter, tipo models.TransactionType) (decimal.Decimal, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAggregateQuery(filter, tipo)
	if err != nil {
		log.Err(err).
			Str("func", "*transactionRepository.AggregateByTipo").
			Str("user_id", filter.UserID).
			Msg("failed to create query")
		return decimal.Zero, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var sum decimal.Decimal
	var count int64
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&sum, &count); err != nil {
		log.Err(err).
			Str("func", "*transactionRepository.AggregateByTipo").
			Str("user_id", filter.UserID).
			Str("tipo", string(tipo)).
			Msg("failed to execute aggregate query")
		return decimal.Zero, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return sum, count, nil
}

// Update applies the non-nil fields of update to the transaction scoped to
// (id, userID) and returns the updated record.
//
// The caller guards against empty updates. A missing or foreign-owned
// record yields [ErrTransactionNotFound].
func (r *transactionRepository) Update(ctx context.Context, id, userID string, update models.TransactionUpdate) (models.FinancialTransaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTransactionQuery(id, userID, update)
	if err != nil {
		log.Err(err).
			Str("func", "*transactionRepository.Update").
			Str("id", id).
			Str("user_id", userID).
			Msg("failed to create query")
		return models.FinancialTransaction{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var transaction models.FinancialTransaction
	row := r.DB.QueryRowContext(ctx, query, args...)

	if err := scanTransaction(row, &transaction); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.FinancialTransaction{}, ErrTransactionNotFound
		}

		log.Err(err).
			Str("func", "*transactionRepository.Update").
			Str("id", id).
			Str("user_id", userID).
			Msg("error: updating transaction failed")
		return models.FinancialTransaction{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return transaction, nil
}

// Delete removes the transaction scoped to (id, userID).
//
// Deleting a record that does not exist — or that belongs to another
// user — yields [ErrTransactionNotFound] rather than a silent success, so
// repeated deletes of the same id are reported as 404 upstream.
func (r *transactionRepository) Delete(ctx context.Context, id, userID string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteTransaction, id, userID)
	if err != nil {
		log.Err(err).
			Str("func", "*transactionRepository.Delete").
			Str("id", id).
			Str("user_id", userID).
			Msg("error: deleting transaction failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if affected == 0 {
		return ErrTransactionNotFound
	}

	return nil
}

// scanTransaction scans one row into transaction using the canonical
// column order of [transactionColumns].
func scanTransaction(row *sql.Row, transaction *models.FinancialTransaction) error {
	return row.Scan(
		&transaction.ID,
		&transaction.Valor,
		&transaction.Empresa,
		&transaction.Data,
		&transaction.Tipo,
		&transaction.UserID,
		&transaction.CreatedAt,
		&transaction.UpdatedAt,
	)
}
