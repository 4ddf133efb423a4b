package adapter

import (
	"context"
	"encoding/json"

	"github.com/ovoronin/go-issue-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CollectionClient is the transport contract for the remote entity
// collections (projects, tasks, bugs, notifications). Documents cross
// the boundary as raw JSON so the synchronization layer stays generic
// over the entity type.
//
// Every method issues exactly one remote call; network and server
// failures surface as errors, mapped to the package sentinels where
// the HTTP status allows it.
type CollectionClient interface {
	// List fetches the documents of the named collection matching the
	// query's equality filters, ordered as the query's sort requests.
	List(ctx context.Context, collection string, query models.ListQuery) ([]json.RawMessage, error)

	// Create persists a new document and returns the stored form, with
	// the server-assigned identifier filled in.
	Create(ctx context.Context, collection string, entity any) (json.RawMessage, error)

	// Update applies a partial patch to the document with the given id
	// and returns the full updated document.
	// Returns [ErrNotFound] if the id is absent from the backing store.
	Update(ctx context.Context, collection, id string, patch models.Patch) (json.RawMessage, error)

	// Delete removes the document with the given id.
	// Returns [ErrNotFound] if the id is absent from the backing store.
	Delete(ctx context.Context, collection, id string) error
}

// AuthClient is the session contract against the tracker server. A
// successful Register or Login stores the bearer token on the client so
// subsequent collection and file calls are authenticated.
type AuthClient interface {
	// Register creates an account and opens a session.
	Register(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login authenticates an existing account and opens a session.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// CurrentUser returns the account of the active session.
	CurrentUser(ctx context.Context) (models.User, error)

	// Logout drops the stored bearer token.
	Logout()
}

// FileClient is the contract of the external file storage service.
type FileClient interface {
	// Upload stores the given files and reports a per-file outcome.
	// Partial failure is expected: the returned slice always has one
	// entry per input file, failed ones carrying UploadError.
	Upload(ctx context.Context, files []models.FileUpload) ([]models.UploadResult, error)

	// DeleteFiles removes previously stored files by their URLs.
	DeleteFiles(ctx context.Context, urls []string) error
}

// TrackerAdapter is the full transport surface of the tracker server:
// entity collections, sessions and file storage behind one connection.
type TrackerAdapter interface {
	CollectionClient
	AuthClient
	FileClient
}

// EmailClient is the contract of the external email dispatch service.
// Dispatch is best-effort; callers must not let a failed send abort
// their primary operation.
type EmailClient interface {
	Send(ctx context.Context, msg models.EmailMessage) error
}
