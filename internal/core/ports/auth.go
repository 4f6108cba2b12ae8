// internal/core/ports/auth.go
package ports

import (
	"context"

	"github.com/ammerola/meta4-erp/internal/core/domain"
)

// AuthService proxies the upstream account endpoints
type AuthService interface {
	Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
	Register(ctx context.Context, req domain.RegisterRequest) (*domain.RegisterResponse, error)
	ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) (*domain.MessageResponse, error)
	ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) (*domain.MessageResponse, error)
}

// TokenSource supplies the bearer token attached to upstream calls.
// An empty token means the call goes out unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type tokenKey struct{}

// ContextWithToken carries the caller's bearer token to outbound calls
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the caller's bearer token, if any
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}
