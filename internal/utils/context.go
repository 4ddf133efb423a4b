// Package utils holds the small cross-layer helpers: type-safe context
// keys, JSON response writing and JWT generation/validation.
package utils

import "context"

// contextKey is a private type for context keys, preventing collisions
// with string-based keys from other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the context key the auth middleware stores the
// authenticated user's ID under.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext retrieves the authenticated user's ID from the
// context. ok is false when no auth middleware ran for this request.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok
}
