package store

import "github.com/angaro192/crud-financas/internal/logger"

type Storages struct {
	UserRepository        UserRepository
	TransactionRepository TransactionRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(db, logger),
		TransactionRepository: NewTransactionRepository(db, logger),
	}
}
