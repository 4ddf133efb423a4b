package service

import "errors"

// Failure taxonomy of the client synchronization layer. Callers match
// with [errors.Is]; every error carries the underlying transport error
// wrapped behind the sentinel.
var (
	// ErrFetchFailed is returned when a collection list call fails. The
	// previously loaded in-memory collection is left untouched and the
	// fetch may simply be retried.
	ErrFetchFailed = errors.New("failed to load collection")

	// ErrRemoteWrite is returned when a create, update or delete call is
	// rejected by the remote store. The in-memory collection is left
	// unchanged so UI code can keep its own state (e.g. an open form).
	ErrRemoteWrite = errors.New("remote write failed")

	// ErrNotFound is returned when an update or delete targets an id
	// that is absent from the backing store.
	ErrNotFound = errors.New("entity not found")

	// ErrUpload is returned when the file storage call itself fails.
	// Individual per-file failures inside a successful call are reported
	// through the upload report, not through this error.
	ErrUpload = errors.New("attachment upload failed")

	// ErrStaleEntity is returned when an attachment mutation targets an
	// entity that is missing from the loaded collection, e.g. because
	// the collection has not been fetched yet.
	ErrStaleEntity = errors.New("entity missing from loaded collection")

	// ErrNoSession is returned by operations that require an
	// authenticated user when none is signed in.
	ErrNoSession = errors.New("no active session")
)

// Server-side service errors.
var (
	// ErrInvalidDataProvided is returned when a write carries missing
	// required fields or unknown enum values.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned when login credentials do not match
	// the stored password hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrTokenIsExpired is returned when a session token's expiry claim
	// has passed.
	ErrTokenIsExpired = errors.New("token is expired")
)
