package totp

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

const (
	// DefaultDigits is the standard 6-digit code length.
	DefaultDigits = 6
	// DefaultPeriod is the standard 30-second validity window.
	DefaultPeriod = 30
)

// Generator defines the contract for TOTP code generation.
type Generator interface {
	// GenerateCode derives the code for the time window containing at.
	GenerateCode(secret []byte, at time.Time) (string, error)
}

// Engine implements Generator using HMAC-SHA1 per RFC 6238.
type Engine struct {
	period int64
	digits int
}

// NewEngine constructs an Engine with sensible defaults.
//
// If digits is not 6 or 8, it falls back to 6 digits. If period is not
// positive, it uses the common 30-second period.
func NewEngine(period int64, digits int) *Engine {
	if digits != 6 && digits != 8 {
		digits = DefaultDigits
	}

	if period <= 0 {
		period = DefaultPeriod
	}

	return &Engine{
		period: period,
		digits: digits,
	}
}

// GenerateCode derives the code for the time window containing at.
//
// The result is zero-padded to the configured digit count, so codes like
// "067820" keep their leading zero. Every timestamp within the same period
// yields the same code.
func (e *Engine) GenerateCode(secret []byte, at time.Time) (string, error) {
	if len(secret) == 0 {
		return "", ErrEmptySecret
	}

	counter := at.Unix() / e.period
	code := hotp(secret, counter, e.digits)

	return fmt.Sprintf("%0*d", e.digits, code), nil
}

// hotp implements the RFC 4226 HMAC-based one-time password algorithm.
func hotp(key []byte, counter int64, digits int) int {
	// The counter is hashed as an 8-byte big-endian value (RFC 4226 section 5.1).
	var counterBytes [8]byte
	binary.BigEndian.PutUint64(counterBytes[:], uint64(counter))

	mac := hmac.New(sha1.New, key)
	mac.Write(counterBytes[:])
	digest := mac.Sum(nil)

	// Dynamic truncation (RFC 4226 section 5.3): the low nibble of the last
	// byte selects a 4-byte slice, whose top bit is cleared to keep the value
	// positive regardless of integer width.
	offset := digest[len(digest)-1] & 0x0f
	code := (int(digest[offset]&0x7f) << 24) |
		(int(digest[offset+1]) << 16) |
		(int(digest[offset+2]) << 8) |
		int(digest[offset+3])

	return code % int(math.Pow10(digits))
}
