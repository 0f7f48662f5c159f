package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/otpvault/internal/pkg/goerror"
	"github.com/shandysiswandi/otpvault/internal/pkg/totp"
	"github.com/shandysiswandi/otpvault/internal/vault/entity"
)

type GetCodeInput struct {
	Name string `validate:"required,max=100"`
}

type GetCodeOutput struct {
	Name string
	Code string
}

// GetCode derives the current TOTP code for a stored service.
func (s *Usecase) GetCode(ctx context.Context, in GetCodeInput) (*GetCodeOutput, error) {
	ctx, span := s.startSpan(ctx, "GetCode")
	defer span.End()

	in.Name = entity.NormalizeName(in.Name)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	secret, err := s.repoDB.GetSecret(ctx, in.Name)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("service not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get secret", "name", in.Name, "error", err)
		return nil, goerror.NewServer(err)
	}

	key, err := totp.DecodeSecretKey(secret.SecretKey)
	if err != nil {
		slog.ErrorContext(ctx, "stored secret is not valid base32", "name", in.Name, "error", err)
		return nil, goerror.NewCorruptData(err, "stored secret is corrupted")
	}

	code, err := s.totp.GenerateCode(key, s.clock.Now())
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate otp code", "name", in.Name, "error", err)
		return nil, goerror.NewCorruptData(err, "stored secret is corrupted")
	}

	return &GetCodeOutput{
		Name: in.Name,
		Code: code,
	}, nil
}
