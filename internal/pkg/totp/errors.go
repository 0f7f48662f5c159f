package totp

import "errors"

var (
	// ErrEmptySecret is returned when the secret byte slice is empty.
	ErrEmptySecret = errors.New("totp: empty secret")

	// ErrInvalidSecretKey is returned when the secret key text is not valid Base32.
	ErrInvalidSecretKey = errors.New("totp: invalid base32 secret key")
)
