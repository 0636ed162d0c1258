// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/angaro192/crud-financas/internal/config"
	"github.com/angaro192/crud-financas/internal/logger"
	"github.com/angaro192/crud-financas/internal/store"
)

// Services bundles every business-logic service behind one injection point
// for the HTTP layer.
type Services struct {
	AuthService        AuthService
	TransactionService TransactionService
}

// NewServices wires the service layer on top of the given storages.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	logger.Debug().Msg("creating services")
	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, cfg, logger),
		TransactionService: NewTransactionService(storages.TransactionRepository, logger),
	}
}
