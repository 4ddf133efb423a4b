package adapter

import "errors"

// Sentinel errors the HTTP status mapper produces. Callers match with
// [errors.Is]; anything not covered here surfaces as a plain
// "http <code>" error.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrServer       = errors.New("server error")
)
