package totp

import (
	"testing"
	"time"

	potp "github.com/pquerna/otp"
	ptotp "github.com/pquerna/otp/totp"
)

// rfcSecretKey is the Base32 form of the RFC 6238 test secret "12345678901234567890".
const rfcSecretKey = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

func TestEngineGenerateCodeRFCVectors(t *testing.T) {
	secret, err := DecodeSecretKey(rfcSecretKey)
	if err != nil {
		t.Fatalf("decode rfc secret: %v", err)
	}

	// RFC 6238 appendix B vectors, reduced to 6 digits.
	tests := []struct {
		unix int64
		want string
	}{
		{59, "287082"},
		{1111111109, "081804"},
		{1111111111, "050471"},
		{1234567890, "005924"},
		{2000000000, "279037"},
	}

	engine := NewEngine(DefaultPeriod, DefaultDigits)
	for _, tt := range tests {
		got, err := engine.GenerateCode(secret, time.Unix(tt.unix, 0))
		if err != nil {
			t.Fatalf("GenerateCode(%d): %v", tt.unix, err)
		}
		if got != tt.want {
			t.Errorf("GenerateCode(%d) = %q, want %q", tt.unix, got, tt.want)
		}
	}
}

func TestEngineGenerateCodeSameWindow(t *testing.T) {
	secret, err := DecodeSecretKey("JBSWY3DPEHPK3PXP")
	if err != nil {
		t.Fatalf("decode secret: %v", err)
	}

	engine := NewEngine(DefaultPeriod, DefaultDigits)

	first, err := engine.GenerateCode(secret, time.Unix(1700000000, 0))
	if err != nil {
		t.Fatalf("GenerateCode: %v", err)
	}
	if first != "324550" {
		t.Fatalf("GenerateCode(1700000000) = %q, want %q", first, "324550")
	}

	// Any timestamp inside the same 30-second window yields the same code.
	same, err := engine.GenerateCode(secret, time.Unix(1700000009, 0))
	if err != nil {
		t.Fatalf("GenerateCode: %v", err)
	}
	if same != first {
		t.Errorf("codes within one window differ: %q vs %q", first, same)
	}

	next, err := engine.GenerateCode(secret, time.Unix(1700000010, 0))
	if err != nil {
		t.Fatalf("GenerateCode: %v", err)
	}
	if next != "367665" {
		t.Errorf("GenerateCode(1700000010) = %q, want %q", next, "367665")
	}
	if next == first {
		t.Errorf("codes across windows should differ, both %q", next)
	}
}

func TestEngineGenerateCodeLeadingZero(t *testing.T) {
	secret, err := DecodeSecretKey("JBSWY3DPEHPK3PXP")
	if err != nil {
		t.Fatalf("decode secret: %v", err)
	}

	got, err := NewEngine(DefaultPeriod, DefaultDigits).GenerateCode(secret, time.Unix(870, 0))
	if err != nil {
		t.Fatalf("GenerateCode: %v", err)
	}
	if got != "067820" {
		t.Errorf("GenerateCode(870) = %q, want %q (leading zero preserved)", got, "067820")
	}
	if len(got) != 6 {
		t.Errorf("code length = %d, want 6", len(got))
	}
}

func TestEngineGenerateCodeEmptySecret(t *testing.T) {
	if _, err := NewEngine(0, 0).GenerateCode(nil, time.Unix(59, 0)); err != ErrEmptySecret {
		t.Fatalf("GenerateCode(nil) error = %v, want %v", err, ErrEmptySecret)
	}
}

func TestNewEngineDefaults(t *testing.T) {
	engine := NewEngine(-1, 7)
	if engine.period != DefaultPeriod {
		t.Errorf("period = %d, want %d", engine.period, DefaultPeriod)
	}
	if engine.digits != DefaultDigits {
		t.Errorf("digits = %d, want %d", engine.digits, DefaultDigits)
	}
}

// TestEngineMatchesReferenceLibrary cross-checks the hand-rolled derivation
// against github.com/pquerna/otp over a spread of windows.
func TestEngineMatchesReferenceLibrary(t *testing.T) {
	const secretKey = "JBSWY3DPEHPK3PXP"

	secret, err := DecodeSecretKey(secretKey)
	if err != nil {
		t.Fatalf("decode secret: %v", err)
	}

	engine := NewEngine(DefaultPeriod, DefaultDigits)
	for _, unix := range []int64{0, 59, 870, 1111111109, 1700000000, 4000000000} {
		at := time.Unix(unix, 0)

		got, err := engine.GenerateCode(secret, at)
		if err != nil {
			t.Fatalf("GenerateCode(%d): %v", unix, err)
		}

		want, err := ptotp.GenerateCodeCustom(secretKey, at, ptotp.ValidateOpts{
			Period:    DefaultPeriod,
			Digits:    potp.DigitsSix,
			Algorithm: potp.AlgorithmSHA1,
		})
		if err != nil {
			t.Fatalf("reference GenerateCodeCustom(%d): %v", unix, err)
		}

		if got != want {
			t.Errorf("GenerateCode(%d) = %q, reference = %q", unix, got, want)
		}
	}
}
