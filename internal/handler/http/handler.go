package http

import (
	"github.com/ovoronin/go-issue-tracker/internal/logger"
	"github.com/ovoronin/go-issue-tracker/internal/service"
)

// Handler holds the HTTP endpoints of the tracker API.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("tracker http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
