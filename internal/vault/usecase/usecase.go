package usecase

import (
	"context"

	"github.com/shandysiswandi/otpvault/internal/pkg/clock"
	"github.com/shandysiswandi/otpvault/internal/pkg/config"
	"github.com/shandysiswandi/otpvault/internal/pkg/instrument"
	"github.com/shandysiswandi/otpvault/internal/pkg/totp"
	"github.com/shandysiswandi/otpvault/internal/pkg/validator"
	"github.com/shandysiswandi/otpvault/internal/vault/entity"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	CreateSecret(ctx context.Context, in entity.Secret) error
	GetSecret(ctx context.Context, name string) (*entity.Secret, error)
	DeleteSecret(ctx context.Context, name string) error
	ListSecretNames(ctx context.Context) ([]string, error)
}

// Usecase implements the vault business operations.
type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	cfg       config.Config
	totp      totp.Generator
	clock     clock.Clocker
	ins       instrument.Instrumentation
}

// Dependency lists everything Usecase needs.
type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	Config     config.Config
	Totp       totp.Generator
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

// New constructs a Usecase from its dependencies.
func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		cfg:       dep.Config,
		totp:      dep.Totp,
		clock:     dep.Clock,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("vault.usecase").Start(ctx, name)
}
