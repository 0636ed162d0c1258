package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valor is transported as a plain JSON number, matching the API contract.
// Decimal storage keeps amounts exact across the JSON boundary (no binary
// floating-point drift for values with up to 3 fraction digits).
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType is the category of a financial transaction.
// Exactly two values are valid: Despesa (expense) and Receita (income).
type TransactionType string

const (
	// Despesa marks an expense transaction.
	Despesa TransactionType = "Despesa"

	// Receita marks an income transaction.
	Receita TransactionType = "Receita"
)

// IsValid reports whether t is one of the two accepted categories.
func (t TransactionType) IsValid() bool {
	return t == Despesa || t == Receita
}

// FinancialTransaction represents a single money movement owned by a user.
type FinancialTransaction struct {
	// ID is the unique identifier of the transaction (UUID text form).
	ID string `json:"id"`

	// Valor is the monetary amount. Always strictly positive with at most
	// 3 fraction digits; persisted as NUMERIC(10,3).
	Valor decimal.Decimal `json:"valor"`

	// Empresa is the free-text counterparty name, 1–255 characters.
	Empresa string `json:"empresa"`

	// Data is the calendar date/time the transaction refers to.
	// Listing is always ordered by this field, newest first.
	Data time.Time `json:"data"`

	// Tipo is the transaction category: Despesa or Receita.
	Tipo TransactionType `json:"tipo"`

	// UserID references the owning user. Never exposed on the wire;
	// every read and write is scoped to this owner.
	UserID string `json:"-"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last modification of the record.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the FinancialTransaction model.
func (t FinancialTransaction) TableName() string {
	return "financial_transactions"
}
