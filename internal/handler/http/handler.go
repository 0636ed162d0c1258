package http

import (
	"time"

	"github.com/angaro192/crud-financas/internal/logger"
	"github.com/angaro192/crud-financas/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger

	// requestTimeout bounds the handling of one inbound request; requests
	// exceeding it are answered with 504 by the timeout middleware.
	requestTimeout time.Duration
}

func NewHandler(services *service.Services, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		logger:         logger,
		requestTimeout: requestTimeout,
	}
}
