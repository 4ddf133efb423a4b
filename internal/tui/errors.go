package tui

import "errors"

// ErrUserQuit is returned by the login flow when the user exits the
// program instead of authenticating.
var ErrUserQuit = errors.New("user quit")
