package entity

import "strings"

// Secret is a stored TOTP secret, addressed by its normalized service name.
type Secret struct {
	// Name is the lowercase service name.
	Name string
	// SecretKey is the Base32-encoded TOTP seed, stored uppercase.
	SecretKey string
}

// NormalizeName lowercases and trims a service name so lookups are
// case-insensitive.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeSecretKey uppercases and trims a Base32 secret key before
// validation and storage.
func NormalizeSecretKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}
