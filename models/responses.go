package models

import "github.com/shopspring/decimal"

// RegisterResponse is returned by POST /auth/register and POST /users.
// Token is empty for the /users variant.
type RegisterResponse struct {
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
	Token   string     `json:"token,omitempty"`
}

// LoginResponse is returned by POST /auth/login.
type LoginResponse struct {
	Message string     `json:"message"`
	User    PublicUser `json:"user"`
	Token   string     `json:"token"`
}

// MeResponse is returned by GET /auth/me.
type MeResponse struct {
	User PublicUser `json:"user"`
}

// UsersResponse is returned by GET /users.
type UsersResponse struct {
	Users []PublicUser `json:"users"`
}

// Pagination describes the page window of a list response.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// ListTransactionsResponse is returned by GET /financial-transactions.
// Transactions is never null on the wire: an empty page serializes as [].
type ListTransactionsResponse struct {
	Transactions []FinancialTransaction `json:"transactions"`
	Pagination   Pagination             `json:"pagination"`
}

// TipoAggregate is the sum and count of one transaction category.
type TipoAggregate struct {
	Amount decimal.Decimal `json:"amount"`
	Count  int64           `json:"count"`
}

// TransactionStats carries the aggregates returned by
// GET /financial-transactions/stats. Saldo = Receitas − Despesas.
// All fields are zero (never null) when no records match.
type TransactionStats struct {
	TotalTransactions int64           `json:"totalTransactions"`
	TotalReceitas     TipoAggregate   `json:"totalReceitas"`
	TotalDespesas     TipoAggregate   `json:"totalDespesas"`
	Saldo             decimal.Decimal `json:"saldo"`
}

// StatsResponse wraps TransactionStats in the envelope the API exposes.
type StatsResponse struct {
	Stats TransactionStats `json:"stats"`
}

// ErrorResponse is the uniform error body for every non-2xx response.
// Details is populated only for validation failures and holds the
// per-field violation list.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}
