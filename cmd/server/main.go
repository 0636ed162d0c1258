package main

import (
	"context"
	"fmt"

	"github.com/angaro192/crud-financas/internal/config"
	myHTTP "github.com/angaro192/crud-financas/internal/handler/http"
	"github.com/angaro192/crud-financas/internal/logger"
	"github.com/angaro192/crud-financas/internal/server"
	"github.com/angaro192/crud-financas/internal/service"
	"github.com/angaro192/crud-financas/internal/store"
	"github.com/angaro192/crud-financas/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("financas-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Int("port", cfg.Server.Port).Str("env", cfg.App.Env).Msg("received configs")

	if cfg.UsesInsecureTokenKey() {
		log.Warn().Msg("JWT_SECRET is unset, using the insecure development signing key")
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg, log)
	handler := myHTTP.NewHandler(services, cfg.Server.RequestTimeout, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
