// Package clock provides a tiny time abstraction.
//
// Production code should depend on the Clocker interface instead of calling
// time.Now() directly. This keeps OTP derivation deterministic in tests
// because a fixed clock can be pinned to a known counter window.
package clock
