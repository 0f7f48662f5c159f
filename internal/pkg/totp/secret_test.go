package totp

import (
	"bytes"
	"errors"
	"testing"
)

func TestIsValidSecretKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "plain", in: "JBSWY3DPEHPK3PXP", want: true},
		{name: "with padding", in: "MZXW6YTBOI======", want: true},
		{name: "digits only", in: "23456723456723", want: true},
		{name: "empty", in: "", want: false},
		{name: "lowercase", in: "jbswy3dpehpk3pxp", want: false},
		{name: "digit outside alphabet", in: "JBSWY3DPEHPK3PX1", want: false},
		{name: "symbol", in: "not base32!", want: false},
		{name: "interior padding", in: "MZXW=6YTB", want: false},
		{name: "padding only", in: "====", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidSecretKey(tt.in); got != tt.want {
				t.Errorf("IsValidSecretKey(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeSecretKey(t *testing.T) {
	got, err := DecodeSecretKey("MZXW6YTBOI======")
	if err != nil {
		t.Fatalf("DecodeSecretKey: %v", err)
	}
	if want := []byte("foobar"); !bytes.Equal(got, want) {
		t.Errorf("DecodeSecretKey = %q, want %q", got, want)
	}
}

func TestDecodeSecretKeyPaddedEquivalence(t *testing.T) {
	padded, err := DecodeSecretKey("MZXW6YQ=")
	if err != nil {
		t.Fatalf("DecodeSecretKey(padded): %v", err)
	}
	bare, err := DecodeSecretKey("MZXW6YQ")
	if err != nil {
		t.Fatalf("DecodeSecretKey(bare): %v", err)
	}
	if !bytes.Equal(padded, bare) {
		t.Errorf("padded %q != bare %q", padded, bare)
	}
	if want := []byte("foob"); !bytes.Equal(padded, want) {
		t.Errorf("DecodeSecretKey = %q, want %q", padded, want)
	}
}

func TestDecodeSecretKeyInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "lowercase", in: "mzxw6yq"},
		{name: "symbol", in: "not base32!"},
		{name: "interior padding", in: "MZXW=6YTB"},
		{name: "wrong padding length", in: "MZXW6YTB=="},
		{name: "overlong padding", in: "MZXW6YTB========"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeSecretKey(tt.in); !errors.Is(err, ErrInvalidSecretKey) {
				t.Errorf("DecodeSecretKey(%q) error = %v, want %v", tt.in, err, ErrInvalidSecretKey)
			}
		})
	}
}
