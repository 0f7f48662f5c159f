package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/otpvault/internal/pkg/goerror"
	"github.com/shandysiswandi/otpvault/internal/vault/entity"
)

type DeleteCodeInput struct {
	Name string `validate:"required,max=100"`
}

type DeleteCodeOutput struct {
	Name string
}

// DeleteCode removes a stored TOTP secret.
func (s *Usecase) DeleteCode(ctx context.Context, in DeleteCodeInput) (*DeleteCodeOutput, error) {
	ctx, span := s.startSpan(ctx, "DeleteCode")
	defer span.End()

	in.Name = entity.NormalizeName(in.Name)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	err := s.repoDB.DeleteSecret(ctx, in.Name)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("service not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete secret", "name", in.Name, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &DeleteCodeOutput{Name: in.Name}, nil
}
