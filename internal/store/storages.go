package store

import (
	"github.com/ovoronin/go-issue-tracker/internal/config"
	"github.com/ovoronin/go-issue-tracker/internal/logger"
)

// Storages bundles the persistence backends handed to the service
// layer.
type Storages struct {
	Users    UserRepository
	Entities EntityRepository
	Files    FileStore
}

// NewStorages wires the repositories over one database connection and
// the on-disk file store.
func NewStorages(db *DB, filesCfg config.Files, log *logger.Logger) (*Storages, error) {
	files, err := NewDiskFileStore(filesCfg, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		Users:    NewUserRepository(db, log),
		Entities: NewEntityRepository(db, log),
		Files:    files,
	}, nil
}
