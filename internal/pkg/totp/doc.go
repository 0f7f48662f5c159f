// Package totp implements time-based one-time passwords (RFC 6238) on top of
// the HOTP algorithm (RFC 4226), plus validation and decoding of the Base32
// secret-key text form.
//
// The code derivation is a pure function of the secret bytes and a timestamp,
// so it is safe for unlimited concurrent use.
package totp
