package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterRequest is the payload accepted by POST /auth/register and
// POST /users.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload accepted by POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateTransactionRequest is the payload accepted by
// POST /financial-transactions.
//
// Data is kept as the raw string from the request so that a malformed
// datetime is reported as a field-level validation error together with any
// other violations, instead of failing the whole JSON decode.
type CreateTransactionRequest struct {
	Valor   decimal.Decimal `json:"valor"`
	Empresa string          `json:"empresa"`
	Data    string          `json:"data"`
	Tipo    TransactionType `json:"tipo"`
}

// UpdateTransactionRequest is the partial payload accepted by PUT and PATCH
// /financial-transactions/{id}. Only non-nil fields are applied; each field
// obeys the same rules as in CreateTransactionRequest when present.
type UpdateTransactionRequest struct {
	Valor   *decimal.Decimal `json:"valor,omitempty"`
	Empresa *string          `json:"empresa,omitempty"`
	Data    *string          `json:"data,omitempty"`
	Tipo    *TransactionType `json:"tipo,omitempty"`
}

// TransactionUpdate is the validated, normalized form of an update request
// as consumed by the persistence layer. Nil fields are left untouched.
type TransactionUpdate struct {
	Valor   *decimal.Decimal
	Empresa *string
	Data    *time.Time
	Tipo    *TransactionType
}

// IsEmpty reports whether the update carries no fields at all.
func (u TransactionUpdate) IsEmpty() bool {
	return u.Valor == nil && u.Empresa == nil && u.Data == nil && u.Tipo == nil
}

// TransactionFilter is the validated, normalized query for listing and
// aggregating transactions. All criteria are combined with AND; UserID is
// always set by the caller so that every query is scoped to its owner.
type TransactionFilter struct {
	// UserID scopes the query to records owned by this user. Required.
	UserID string

	// Tipo, when non-nil, restricts results to one category.
	Tipo *TransactionType

	// Empresa, when non-empty, applies a case-insensitive substring match.
	Empresa string

	// StartDate and EndDate, when non-nil, bound the Data field inclusively.
	StartDate *time.Time
	EndDate   *time.Time

	// Page and Limit control pagination: skip = (Page-1)*Limit, take = Limit.
	// Ignored by aggregate queries.
	Page  int
	Limit int
}
