// Command seed provisions the initial administrator account. Running it
// twice is harmless: an already-seeded database is left untouched.
package main

import (
	"context"
	"errors"

	"github.com/angaro192/crud-financas/internal/config"
	"github.com/angaro192/crud-financas/internal/logger"
	"github.com/angaro192/crud-financas/internal/store"
	"github.com/angaro192/crud-financas/internal/utils"
	"github.com/angaro192/crud-financas/migrations"
	"github.com/angaro192/crud-financas/models"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminName     = "Administrador"
	adminEmail    = "admin@myfinance.com"
	adminPassword = "admin123"
)

func main() {
	log := logger.NewLogger("financas-seed")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	users := store.NewUserRepository(db, log)

	if _, err := users.FindUserByEmail(ctx, adminEmail); err == nil {
		log.Info().Str("email", adminEmail).Msg("admin user already exists, nothing to do")
		return
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Fatal().Err(err).Msg("error checking for existing admin user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("error hashing admin password")
	}

	admin, err := users.CreateUser(ctx, models.User{
		ID:       utils.NewUUIDGenerator().Generate().String(),
		Name:     adminName,
		Email:    adminEmail,
		Password: string(hash),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error creating admin user")
	}

	log.Info().Str("id", admin.ID).Str("email", admin.Email).Msg("admin user created")
	log.Warn().Msg("change the default admin password after the first login")
}
