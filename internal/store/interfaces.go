package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ovoronin/go-issue-tracker/models"
)

// EntityRecord is the row shape shared by every collection table: the
// JSON document plus the columns promoted out of it for indexing and
// remote filtering.
type EntityRecord struct {
	ID          string
	ProjectID   string
	RecipientID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Doc         json.RawMessage
}

// EntityRepository persists the entity collections (projects, tasks,
// bugs, notifications). Each collection lives in its own table of
// identical shape; the collection argument selects the table and is
// validated against the known set.
type EntityRepository interface {
	// List returns the documents matching the query's equality filters,
	// ordered as the query's sort requests (created_at descending when
	// no sort is given). Only indexed columns may be filtered or sorted
	// on; anything else fails with ErrUnsupportedFilter or
	// ErrUnsupportedSort.
	List(ctx context.Context, collection string, query models.ListQuery) ([]json.RawMessage, error)

	// Get returns the document with the given id, or ErrEntityNotFound.
	Get(ctx context.Context, collection, id string) (json.RawMessage, error)

	// Insert stores a new record.
	Insert(ctx context.Context, collection string, rec EntityRecord) error

	// ApplyPatch re-writes one record inside a transaction: the current
	// document is read, handed to merge, and the merged record replaces
	// it. Returns the merged document, or ErrEntityNotFound when the id
	// is absent.
	ApplyPatch(ctx context.Context, collection, id string, merge func(doc json.RawMessage) (EntityRecord, error)) (json.RawMessage, error)

	// Delete removes the record with the given id, or returns
	// ErrEntityNotFound.
	Delete(ctx context.Context, collection, id string) error
}

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser stores a new account. Fails with ErrEmailAlreadyExists
	// on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account with the given email, or
	// ErrUserNotFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the account with the given id, or
	// ErrUserNotFound.
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

// FileStore persists uploaded attachment files and addresses them by
// public URL.
type FileStore interface {
	// Save writes one file and returns its public URL.
	Save(ctx context.Context, name string, content []byte) (string, error)

	// Delete removes the file behind a previously returned URL. Unknown
	// URLs fail with ErrFileNotFound.
	Delete(ctx context.Context, url string) error

	// Open returns the content of the file behind the URL.
	Open(ctx context.Context, url string) ([]byte, error)
}
