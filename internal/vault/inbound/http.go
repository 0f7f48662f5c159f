package inbound

import (
	"context"

	"github.com/shandysiswandi/otpvault/internal/pkg/router"
	"github.com/shandysiswandi/otpvault/internal/vault/usecase"
)

type uc interface {
	GetCode(ctx context.Context, in usecase.GetCodeInput) (*usecase.GetCodeOutput, error)
	AddCode(ctx context.Context, in usecase.AddCodeInput) (*usecase.AddCodeOutput, error)
	DeleteCode(ctx context.Context, in usecase.DeleteCodeInput) (*usecase.DeleteCodeOutput, error)
	ListCodes(ctx context.Context) (*usecase.ListCodesOutput, error)
}

// RegisterHTTPEndpoint wires the vault REST endpoints into the router.
func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/v1/vault/codes", end.ListCodes)
	r.POST("/api/v1/vault/codes", end.AddCode)
	r.DELETE("/api/v1/vault/codes/:name", end.DeleteCode)
	r.GET("/api/v1/vault/codes/:name/otp", end.GetCode)
}
