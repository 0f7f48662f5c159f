package inbound

import (
	"context"
	"testing"
	"time"

	"github.com/shandysiswandi/otpvault/internal/pkg/clock"
	"github.com/shandysiswandi/otpvault/internal/pkg/goerror"
	"github.com/shandysiswandi/otpvault/internal/pkg/instrument"
	"github.com/shandysiswandi/otpvault/internal/pkg/totp"
	"github.com/shandysiswandi/otpvault/internal/pkg/validator"
	"github.com/shandysiswandi/otpvault/internal/vault/entity"
	"github.com/shandysiswandi/otpvault/internal/vault/usecase"
)

type memRepo struct {
	secrets map[string]string
}

func (m *memRepo) CreateSecret(_ context.Context, in entity.Secret) error {
	if _, ok := m.secrets[in.Name]; ok {
		return goerror.ErrConflict
	}
	m.secrets[in.Name] = in.SecretKey
	return nil
}

func (m *memRepo) GetSecret(_ context.Context, name string) (*entity.Secret, error) {
	key, ok := m.secrets[name]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return &entity.Secret{Name: name, SecretKey: key}, nil
}

func (m *memRepo) DeleteSecret(_ context.Context, name string) error {
	if _, ok := m.secrets[name]; !ok {
		return goerror.ErrNotFound
	}
	delete(m.secrets, name)
	return nil
}

func (m *memRepo) ListSecretNames(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(m.secrets))
	for _, k := range []string{"aws", "github", "mail"} {
		if _, ok := m.secrets[k]; ok {
			names = append(names, k)
		}
	}
	return names, nil
}

func newTestProcessor(t *testing.T, repo *memRepo) *Processor {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	uc := usecase.New(usecase.Dependency{
		RepoDB:     repo,
		Validator:  v,
		Totp:       totp.NewEngine(totp.DefaultPeriod, totp.DefaultDigits),
		Clock:      clock.NewFixed(time.Unix(1700000000, 0)),
		Instrument: instrument.NewNoop(),
	})

	return NewProcessor(uc, instrument.NewNoop())
}

func TestParseMessage(t *testing.T) {
	tests := []struct {
		in       string
		wantCmd  string
		wantArgs []string
	}{
		{in: "/start", wantCmd: "start"},
		{in: "  /GetOTP github  ", wantCmd: "getotp", wantArgs: []string{"github"}},
		{in: "/addcode github JBSWY3DPEHPK3PXP", wantCmd: "addcode", wantArgs: []string{"github", "JBSWY3DPEHPK3PXP"}},
		{in: "hello there", wantCmd: ""},
		{in: "", wantCmd: ""},
	}

	for _, tt := range tests {
		cmd, args := ParseMessage(tt.in)
		if cmd != tt.wantCmd {
			t.Errorf("ParseMessage(%q) command = %q, want %q", tt.in, cmd, tt.wantCmd)
		}
		if len(args) != len(tt.wantArgs) {
			t.Errorf("ParseMessage(%q) args = %v, want %v", tt.in, args, tt.wantArgs)
			continue
		}
		for i := range args {
			if args[i] != tt.wantArgs[i] {
				t.Errorf("ParseMessage(%q) args[%d] = %q, want %q", tt.in, i, args[i], tt.wantArgs[i])
			}
		}
	}
}

func TestDispatchLifecycle(t *testing.T) {
	p := newTestProcessor(t, &memRepo{secrets: map[string]string{}})
	ctx := context.Background()

	steps := []struct {
		name    string
		command string
		args    []string
		want    string
	}{
		{name: "start shows help", command: "start", want: helpText},
		{name: "getotp without args", command: "getotp", want: "Usage: /getotp <name>"},
		{name: "addcode without args", command: "addcode", args: []string{"github"}, want: "Usage: /addcode <name> <secret_key>"},
		{name: "deletecode without args", command: "deletecode", want: "Usage: /deletecode <name>"},
		{name: "addcode invalid key", command: "addcode", args: []string{"github", "not-base32!"},
			want: "Invalid secret_key. It must be a valid Base32 string (A-Z, 2-7, and = only)."},
		{name: "listcodes empty", command: "listcodes", want: "No OTP codes stored. Use /addcode to add one."},
		{name: "getotp unknown service", command: "getotp", args: []string{"github"},
			want: "Service 'github' not found. Use /listcodes to see available services."},
		{name: "addcode", command: "addcode", args: []string{"GitHub", "jbswy3dpehpk3pxp"},
			want: "OTP code for 'github' added successfully."},
		{name: "addcode duplicate", command: "addcode", args: []string{"github", "JBSWY3DPEHPK3PXP"},
			want: "Service 'github' already exists. Use /deletecode to remove it first."},
		{name: "getotp", command: "getotp", args: []string{"GITHUB"},
			want: "Your real-time OTP code for github is: 324550"},
		{name: "listcodes", command: "listcodes", want: "Stored OTP codes:\n- github"},
		{name: "deletecode", command: "deletecode", args: []string{"github"},
			want: "OTP code for 'github' deleted successfully."},
		{name: "deletecode again", command: "deletecode", args: []string{"github"},
			want: "Service 'github' not found. Use /listcodes to see available services."},
		{name: "unknown command ignored", command: "frobnicate", want: ""},
	}

	for _, tt := range steps {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Dispatch(ctx, tt.command, tt.args); got != tt.want {
				t.Errorf("Dispatch(%q, %v) = %q, want %q", tt.command, tt.args, got, tt.want)
			}
		})
	}
}

func TestDispatchListCodesMultiple(t *testing.T) {
	repo := &memRepo{secrets: map[string]string{
		"aws":    "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ",
		"github": "JBSWY3DPEHPK3PXP",
	}}
	p := newTestProcessor(t, repo)

	want := "Stored OTP codes:\n- aws\n- github"
	if got := p.Dispatch(context.Background(), "listcodes", nil); got != want {
		t.Errorf("Dispatch(listcodes) = %q, want %q", got, want)
	}
}

func TestDispatchCorruptSecret(t *testing.T) {
	repo := &memRepo{secrets: map[string]string{"github": "not base32!"}}
	p := newTestProcessor(t, repo)

	want := "Stored secret for 'github' is corrupted. Delete and re-add it."
	if got := p.Dispatch(context.Background(), "getotp", []string{"github"}); got != want {
		t.Errorf("Dispatch(getotp corrupt) = %q, want %q", got, want)
	}
}
