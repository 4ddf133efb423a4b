package http

import "errors"

// Authorization header parse failures reported by the auth middleware.
var (
	// ErrEmptyAuthorizationHeader means the request carried no
	// Authorization header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader means the header could not be split
	// into a scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken means the scheme was present but the token value
	// was blank.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
