package inbound

import (
	"github.com/shandysiswandi/otpvault/internal/pkg/router"
	"github.com/shandysiswandi/otpvault/internal/vault/usecase"
)

// HTTPEndpoint exposes REST handlers for the vault.
type HTTPEndpoint struct {
	uc uc
}

// GetCode returns the current OTP code for a stored service.
func (h *HTTPEndpoint) GetCode(r *router.Request) (any, error) {
	resp, err := h.uc.GetCode(r.Context(), usecase.GetCodeInput{
		Name: r.GetParam("name"),
	})
	if err != nil {
		return nil, err
	}

	return GetCodeResponse{
		Name: resp.Name,
		Code: resp.Code,
	}, nil
}

// AddCode stores a new TOTP secret.
func (h *HTTPEndpoint) AddCode(r *router.Request) (any, error) {
	var req AddCodeRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.AddCode(r.Context(), usecase.AddCodeInput{
		Name:      req.Name,
		SecretKey: req.SecretKey,
	})
	if err != nil {
		return nil, err
	}

	return AddCodeResponse{Name: resp.Name}, nil
}

// DeleteCode removes a stored TOTP secret.
func (h *HTTPEndpoint) DeleteCode(r *router.Request) (any, error) {
	resp, err := h.uc.DeleteCode(r.Context(), usecase.DeleteCodeInput{
		Name: r.GetParam("name"),
	})
	if err != nil {
		return nil, err
	}

	return DeleteCodeResponse{Name: resp.Name}, nil
}

// ListCodes lists stored service names.
func (h *HTTPEndpoint) ListCodes(r *router.Request) (any, error) {
	resp, err := h.uc.ListCodes(r.Context())
	if err != nil {
		return nil, err
	}

	names := resp.Names
	if names == nil {
		names = []string{}
	}

	return ListCodesResponse{Names: names}, nil
}
