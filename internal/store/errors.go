package store

import "errors"

// Sentinel errors returned by repository methods. Callers match with
// [errors.Is].
var (
	// ErrEmailAlreadyExists is returned when registration collides with
	// an existing account email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a lookup by email or id matches
	// no user record.
	ErrUserNotFound = errors.New("user not found")

	// ErrEntityNotFound is returned when a get, update or delete targets
	// an entity id absent from the collection table.
	ErrEntityNotFound = errors.New("entity not found")

	// ErrUnknownCollection is returned when a repository call names a
	// collection without a backing table.
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrUnsupportedFilter is returned when a list query filters on a
	// field that is not an indexed column.
	ErrUnsupportedFilter = errors.New("unsupported filter field")

	// ErrUnsupportedSort is returned when a list query sorts on a field
	// that is not an indexed column.
	ErrUnsupportedSort = errors.New("unsupported sort field")

	// ErrFileNotFound is returned when a stored file referenced by URL
	// does not exist on disk.
	ErrFileNotFound = errors.New("stored file not found")
)

// Low-level database operation errors, wrapped around driver failures.
var (
	ErrBuildingSQLQuery      = errors.New("error building sql query")
	ErrExecutingQuery        = errors.New("error executing sql query")
	ErrBeginningTransaction  = errors.New("failed to begin transaction")
	ErrCommittingTransaction = errors.New("failed to commit transaction")
)
