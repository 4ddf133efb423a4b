package models

import "github.com/golang-jwt/jwt/v5"

// Token wraps a JWT session token with the fields the auth flow needs.
//
// SignedString is the compact serialized form carried in the
// Authorization header; UserID is the parsed "sub" claim, cached so
// downstream code does not re-parse the token.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`
	UserID       string `json:"-"`
}
