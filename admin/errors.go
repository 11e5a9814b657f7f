package admin

import "errors"

var (
	// ErrEmptySecret indicates an empty admin secret.
	ErrEmptySecret = errors.New("admin: secret must not be empty")

	// ErrInvalidCredential indicates a malformed encoded credential.
	ErrInvalidCredential = errors.New("admin: invalid credential encoding")
)
