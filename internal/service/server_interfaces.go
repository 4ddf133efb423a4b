package service

import (
	"context"
	"encoding/json"

	"github.com/ovoronin/go-issue-tracker/models"
)

//go:generate mockgen -source=server_interfaces.go -destination=../mock/service_mock.go -package=mock

// EntityService is the server-side write path of the entity
// collections: validation, identifier assignment and patch merging on
// top of the entity repository.
type EntityService interface {
	// List returns the documents of the collection matching the query.
	List(ctx context.Context, collection string, query models.ListQuery) ([]json.RawMessage, error)

	// Create validates the document, assigns a server-side identifier
	// and persists it. The stored document is returned.
	Create(ctx context.Context, collection string, doc json.RawMessage) (json.RawMessage, error)

	// Update merges the patch into the stored document inside a
	// transaction. The id and created_at fields are immutable; patch
	// values for them are ignored.
	Update(ctx context.Context, collection, id string, patch models.Patch) (json.RawMessage, error)

	// Delete removes the document.
	Delete(ctx context.Context, collection, id string) error
}

// AuthService owns account registration, credential checks and the JWT
// session token lifecycle.
type AuthService interface {
	// RegisterUser creates an account from the credentials and returns
	// the stored user.
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login verifies the credentials and returns the account.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// GetUser returns the account with the given id.
	GetUser(ctx context.Context, id string) (models.User, error)

	// CreateToken mints a signed session token for the user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a session token and extracts the user id.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// FileService handles attachment file uploads with per-file outcomes.
type FileService interface {
	// Upload stores each file independently and reports one result per
	// input file; a failed file never aborts the batch.
	Upload(ctx context.Context, files []models.FileUpload) []models.UploadResult

	// Delete removes the files behind the given URLs. Unknown URLs are
	// skipped; the first I/O failure is returned after all URLs have
	// been attempted.
	Delete(ctx context.Context, urls []string) error

	// Open returns the content of a stored file for serving.
	Open(ctx context.Context, url string) ([]byte, error)
}
