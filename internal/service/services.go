package service

import (
	"github.com/ovoronin/go-issue-tracker/internal/config"
	"github.com/ovoronin/go-issue-tracker/internal/logger"
	"github.com/ovoronin/go-issue-tracker/internal/store"
)

// Services bundles the server-side services handed to the transport
// layer.
type Services struct {
	EntityService EntityService
	AuthService   AuthService
	FileService   FileService
}

// NewServices wires the server services over the storages.
func NewServices(storages *store.Storages, cfg config.App, log *logger.Logger) *Services {
	return &Services{
		EntityService: NewEntityService(storages.Entities, log),
		AuthService:   NewAuthService(storages.Users, cfg, log),
		FileService:   NewFileService(storages.Files, log),
	}
}
