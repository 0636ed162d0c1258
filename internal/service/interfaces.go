// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/angaro192/crud-financas/internal/utils"
	"github.com/angaro192/crud-financas/models"
)

// AuthService owns the account lifecycle: registration, credential
// verification, token issuance and verification, and account lookups.
type AuthService interface {
	// RegisterUser creates an account from an already validated payload and
	// issues a token for it. Returns [store.ErrEmailAlreadyExists] when the
	// email is taken.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, models.Token, error)

	// Login verifies the credentials and issues a token. Returns
	// [ErrInvalidCredentials] for an unknown email or a wrong password.
	Login(ctx context.Context, req models.LoginRequest) (models.User, models.Token, error)

	// GetUserByID looks up the account behind an authenticated request.
	GetUserByID(ctx context.Context, id utils.UUID) (models.User, error)

	// ListUsers returns every account, newest last.
	ListUsers(ctx context.Context) ([]models.User, error)

	// ParseToken verifies a raw JWT string and returns its identity claims.
	// Expiry, malformation, and a non-UUID subject are reported through the
	// package sentinels.
	ParseToken(tokenString string) (models.Token, error)
}

// TransactionService owns the financial-transaction use cases. Every method
// is scoped to the authenticated owner; a record belonging to another user
// behaves exactly like a missing one.
type TransactionService interface {
	Create(ctx context.Context, userID utils.UUID, transaction models.FinancialTransaction) (models.FinancialTransaction, error)
	GetByID(ctx context.Context, id string, userID utils.UUID) (models.FinancialTransaction, error)
	List(ctx context.Context, filter models.TransactionFilter) ([]models.FinancialTransaction, models.Pagination, error)
	Update(ctx context.Context, id string, userID utils.UUID, update models.TransactionUpdate) (models.FinancialTransaction, error)
	Delete(ctx context.Context, id string, userID utils.UUID) error
	Stats(ctx context.Context, filter models.TransactionFilter) (models.TransactionStats, error)
}
