package models

import "time"

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the server-assigned unique identifier of the user.
	UserID string `json:"id"`

	// Email doubles as the login identifier and the address used for
	// best-effort email notifications.
	Email string `json:"email"`

	// DisplayName is non-sensitive and may be shown in UI.
	DisplayName string `json:"display_name"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Never serialized; used only at the persistence layer.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table associated with the
// User model.
func (u User) TableName() string { return "users" }

// Credentials is the register/login request payload.
type Credentials struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
}
