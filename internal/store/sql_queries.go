package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/angaro192/crud-financas/models"
)

const (
	createUser = `INSERT INTO users (id, name, email, password)
    VALUES ($1, $2, $3, $4)
    RETURNING id, name, email, password, created_at, updated_at;`

	findUserByEmail = `SELECT id, name, email, password, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, name, email, password, created_at, updated_at
    FROM users
    WHERE id = $1;`

	listUsers = `SELECT id, name, email, password, created_at, updated_at
    FROM users
    ORDER BY created_at;`

	createTransaction = `INSERT INTO financial_transactions (id, valor, empresa, data, tipo, user_id)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, valor, empresa, data, tipo, user_id, created_at, updated_at;`

	getTransactionByID = `SELECT id, valor, empresa, data, tipo, user_id, created_at, updated_at
    FROM financial_transactions
    WHERE id = $1 AND user_id = $2;`

	deleteTransaction = `DELETE FROM financial_transactions
    WHERE id = $1 AND user_id = $2;`
)

// transactionColumns is the canonical column list scanned into a
// [models.FinancialTransaction].
var transactionColumns = []string{"id", "valor", "empresa", "data", "tipo", "user_id", "created_at", "updated_at"}

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// applyTransactionFilter adds the conjunctive WHERE conditions described by
// filter to a SELECT: owner scope (always), exact tipo match, case-insensitive
// empresa substring match, and an inclusive date range on the data column.
func applyTransactionFilter(builder sq.SelectBuilder, filter models.TransactionFilter) sq.SelectBuilder {
	builder = builder.Where(sq.Eq{"user_id": filter.UserID})

	if filter.Tipo != nil {
		builder = builder.Where(sq.Eq{"tipo": string(*filter.Tipo)})
	}

	if filter.Empresa != "" {
		builder = builder.Where(sq.ILike{"empresa": "%" + filter.Empresa + "%"})
	}

	if filter.StartDate != nil {
		builder = builder.Where(sq.GtOrEq{"data": *filter.StartDate})
	}

	if filter.EndDate != nil {
		builder = builder.Where(sq.LtOrEq{"data": *filter.EndDate})
	}

	return builder
}

// buildListTransactionsQuery builds the paginated listing query.
// Ordering is always by the transaction date, newest first.
func buildListTransactionsQuery(filter models.TransactionFilter) (string, []any, error) {
	builder := applyTransactionFilter(
		psql.Select(transactionColumns...).From("financial_transactions"),
		filter,
	).OrderBy("data DESC")

	if filter.Limit > 0 {
		offset := uint64((filter.Page - 1) * filter.Limit)
		builder = builder.Limit(uint64(filter.Limit)).Offset(offset)
	}

	return builder.ToSql()
}

// buildCountTransactionsQuery builds the total-count query matching the same
// filter as the listing query (without pagination).
func buildCountTransactionsQuery(filter models.TransactionFilter) (string, []any, error) {
	return applyTransactionFilter(
		psql.Select("COUNT(*)").From("financial_transactions"),
		filter,
	).ToSql()
}

// buildAggregateQuery builds the per-tipo sum+count query. COALESCE
// guarantees a zero sum (never NULL) when no rows match.
func buildAggregateQuery(filter models.TransactionFilter, tipo models.TransactionType) (string, []any, error) {
	return applyTransactionFilter(
		psql.Select("COALESCE(SUM(valor), 0)", "COUNT(*)").From("financial_transactions"),
		filter,
	).Where(sq.Eq{"tipo": string(tipo)}).ToSql()
}

// buildUpdateTransactionQuery builds a partial UPDATE applying only the
// non-nil fields of update, always touching updated_at, scoped to
// (id, user_id), returning the full updated row.
//
// The caller must guarantee that at least one field is set; an empty update
// still produces valid SQL but would bump updated_at for no reason.
func buildUpdateTransactionQuery(id, userID string, update models.TransactionUpdate) (string, []any, error) {
	builder := psql.Update("financial_transactions").
		Set("updated_at", sq.Expr("NOW()"))

	if update.Valor != nil {
		builder = builder.Set("valor", *update.Valor)
	}

	if update.Empresa != nil {
		builder = builder.Set("empresa", *update.Empresa)
	}

	if update.Data != nil {
		builder = builder.Set("data", *update.Data)
	}

	if update.Tipo != nil {
		builder = builder.Set("tipo", string(*update.Tipo))
	}

	return builder.
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING id, valor, empresa, data, tipo, user_id, created_at, updated_at").
		ToSql()
}
