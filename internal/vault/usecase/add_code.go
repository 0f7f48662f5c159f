package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/otpvault/internal/pkg/goerror"
	"github.com/shandysiswandi/otpvault/internal/vault/entity"
)

type AddCodeInput struct {
	Name      string `validate:"required,max=100"`
	SecretKey string `validate:"required,totpsecret"`
}

type AddCodeOutput struct {
	Name string
}

// AddCode validates and stores a new TOTP secret under a service name.
func (s *Usecase) AddCode(ctx context.Context, in AddCodeInput) (*AddCodeOutput, error) {
	ctx, span := s.startSpan(ctx, "AddCode")
	defer span.End()

	in.Name = entity.NormalizeName(in.Name)
	in.SecretKey = entity.NormalizeSecretKey(in.SecretKey)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	err := s.repoDB.CreateSecret(ctx, entity.Secret{
		Name:      in.Name,
		SecretKey: in.SecretKey,
	})
	if errors.Is(err, goerror.ErrConflict) {
		return nil, goerror.NewBusiness("service already exists", goerror.CodeConflict)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create secret", "name", in.Name, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &AddCodeOutput{Name: in.Name}, nil
}
