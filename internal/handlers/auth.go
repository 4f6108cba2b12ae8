// internal/handlers/auth.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ammerola/meta4-erp/internal/core/domain"
	"github.com/ammerola/meta4-erp/internal/core/ports"
)

// AuthHandler proxies account requests to the upstream auth API
type AuthHandler struct {
	auth   ports.AuthService
	logger *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth ports.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		logger: logger.With(slog.String("handler", "auth")),
	}
}

// proxy decodes Req, calls op and writes its answer with status
func proxy[Req any, Resp any](h *AuthHandler, status int, op func(context.Context, Req) (*Resp, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req Req
		if err := decodeJSON(r, &req); err != nil {
			respondDomainError(ctx, w, h.logger, err)
			return
		}

		resp, err := op(ctx, req)
		if err != nil {
			respondDomainError(ctx, w, h.logger, err)
			return
		}
		respondJSON(w, h.logger, status, resp)
	}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	proxy[domain.LoginRequest](h, http.StatusOK, h.auth.Login)(w, r)
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	proxy[domain.RegisterRequest](h, http.StatusCreated, h.auth.Register)(w, r)
}

// ForgotPassword handles POST /api/v1/auth/forgot-password
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	proxy[domain.ForgotPasswordRequest](h, http.StatusOK, h.auth.ForgotPassword)(w, r)
}

// ResetPassword handles POST /api/v1/auth/reset-password
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	proxy[domain.ResetPasswordRequest](h, http.StatusOK, h.auth.ResetPassword)(w, r)
}
