package totp

import (
	"encoding/base32"
	"errors"
	"regexp"
	"strings"
)

// secretKeyRegex matches Base32 text: uppercase A-Z, digits 2-7, and an
// optional contiguous run of trailing padding.
var secretKeyRegex = regexp.MustCompile(`^[A-Z2-7]+=*$`)

// IsValidSecretKey reports whether s is a well-formed Base32 secret key.
//
// Padding is optional; when present it must be a contiguous trailing run.
func IsValidSecretKey(s string) bool {
	return secretKeyRegex.MatchString(s)
}

// DecodeSecretKey decodes a Base32 secret key into raw bytes.
//
// Keys both with and without trailing padding are accepted; a key whose
// padding length is inconsistent with its data length fails with
// ErrInvalidSecretKey.
func DecodeSecretKey(s string) ([]byte, error) {
	if !IsValidSecretKey(s) {
		return nil, ErrInvalidSecretKey
	}

	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	if strings.ContainsRune(s, '=') {
		enc = base32.StdEncoding
	}

	raw, err := enc.DecodeString(s)
	if err != nil {
		return nil, errors.Join(ErrInvalidSecretKey, err)
	}

	return raw, nil
}
