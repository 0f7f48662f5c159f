package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/otpvault/internal/pkg/goerror"
)

type ListCodesOutput struct {
	Names []string
}

// ListCodes returns the names of all stored secrets, sorted ascending.
func (s *Usecase) ListCodes(ctx context.Context) (*ListCodesOutput, error) {
	ctx, span := s.startSpan(ctx, "ListCodes")
	defer span.End()

	names, err := s.repoDB.ListSecretNames(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list secret names", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ListCodesOutput{Names: names}, nil
}
