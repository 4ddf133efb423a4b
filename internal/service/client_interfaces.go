package service

import (
	"context"
	"time"

	"github.com/ovoronin/go-issue-tracker/models"
)

// Entity is the constraint every synchronized entity type satisfies:
// read access to the shared meta fields, a value-copy stamping helper,
// and the name of the remote collection the type lives in.
//
// The methods come for free from embedding [models.Meta] plus the small
// per-type Stamped/Collection definitions.
type Entity[E any] interface {
	EntityID() string
	CreatedTime() time.Time
	UpdatedTime() time.Time
	Stamped(created, updated time.Time) E
	Collection() string
}

// CollectionStore keeps an in-memory ordered mirror of one remote
// entity collection and the mutation operations that keep the two
// consistent. The mirror is a write-through cache: it is only ever
// updated after the remote store has confirmed the corresponding
// change, and the remote store stays authoritative throughout.
//
// The store's collection is private state: external code reads it via
// Items and mutates it only through the store's own methods, so no
// additional locking is needed on the caller side.
type CollectionStore[E Entity[E]] interface {
	// Items returns a copy of the current in-memory collection, ordered
	// by created_at descending.
	Items() []E

	// Find returns the cached entity with the given id, if present.
	Find(id string) (E, bool)

	// Loading reports whether a fetch is currently in flight.
	Loading() bool

	// Scope returns the equality filters the store currently tracks.
	Scope() map[string]string

	// FetchAll replaces the whole in-memory collection with the remote
	// state matching the current scope. On failure the previous
	// collection is left untouched and ErrFetchFailed is returned; the
	// collection is never partially overwritten. A fetch that resolves
	// after a newer fetch has started for the same store is discarded.
	FetchAll(ctx context.Context) error

	// SetScope changes the tracked scope and immediately re-fetches.
	// An in-flight fetch for the previous scope can no longer overwrite
	// the collection once SetScope has been called.
	SetScope(ctx context.Context, scope map[string]string) error

	// Create stamps both lifecycle timestamps on the draft, persists it
	// remotely and prepends the stored entity to the collection.
	// Fails with ErrRemoteWrite; the collection is unchanged on failure.
	Create(ctx context.Context, draft E) (E, error)

	// Update applies a partial patch remotely, re-stamping updated_at,
	// and replaces the matching cached entity in place, preserving its
	// position. Fails with ErrRemoteWrite or ErrNotFound.
	Update(ctx context.Context, id string, patch models.Patch) (E, error)

	// Delete removes the entity remotely and drops it from the cache.
	// The local removal is idempotent: deleting an id that is no longer
	// cached still issues the remote call and reports its outcome.
	Delete(ctx context.Context, id string) error
}

// UploadReport is the outcome of one attachment upload batch.
type UploadReport struct {
	// Attached holds the descriptors appended to the entity, one per
	// successfully uploaded file.
	Attached []models.Attachment

	// Failed counts files the storage service rejected. Reported, not
	// raised: partial success still persists the successful files.
	Failed int
}

// AttachmentService attaches uploaded files to one entity kind (tasks
// or bugs) through the entity's own update path.
type AttachmentService[E Entity[E]] interface {
	// Upload sends the files to the storage service and appends the
	// successful descriptors to the entity's attachment list. Fails with
	// ErrStaleEntity when the entity is not in the loaded collection,
	// ErrUpload when the storage call fails outright, or the update
	// path's errors when persisting the merged list fails.
	Upload(ctx context.Context, entityID string, files []models.FileUpload) (UploadReport, error)

	// Remove deletes the stored file first, then persists the entity's
	// attachment list without the identified attachment. Fails with
	// ErrStaleEntity or ErrNotFound (unknown attachment id).
	Remove(ctx context.Context, entityID, attachmentID string) error
}

// NotificationService is the notification collection store extended
// with read-state tracking and best-effort email dispatch on creation.
type NotificationService interface {
	CollectionStore[models.Notification]

	// UnreadCount returns the number of cached unread notifications.
	UnreadCount() int

	// MarkRead marks one notification as read, stamping read_at.
	MarkRead(ctx context.Context, id string) error

	// MarkAllRead marks every cached unread notification as read. Each
	// notification is updated independently; the first failure is
	// reported after all updates have settled.
	MarkAllRead(ctx context.Context) error

	// Notify creates the notification record and then dispatches a
	// best-effort email to recipientEmail, skipped when empty. Email
	// failures are logged and swallowed; only the record creation can
	// fail the call.
	Notify(ctx context.Context, draft models.Notification, recipientEmail string) (models.Notification, error)
}

// SessionService owns the authenticated user of the client process.
// The current user is explicit state handed to whoever needs it; there
// is no ambient global.
type SessionService interface {
	SignUp(ctx context.Context, creds models.Credentials) (models.User, error)
	SignIn(ctx context.Context, creds models.Credentials) (models.User, error)

	// CurrentUser returns the signed-in user, if any.
	CurrentUser() (models.User, bool)

	// Refresh re-validates the session against the server.
	Refresh(ctx context.Context) (models.User, error)

	SignOut()
}

// RefreshJob periodically re-fetches the loaded collections so the
// client picks up changes made by other sessions.
type RefreshJob interface {
	// Start launches the background refresh goroutine. Any previously
	// running job is stopped first. A non-positive interval defaults to
	// one minute.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and blocks until it has.
	Stop()
}
