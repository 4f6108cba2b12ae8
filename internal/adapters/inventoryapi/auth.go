// internal/adapters/inventoryapi/auth.go
package inventoryapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ammerola/meta4-erp/internal/core/domain"
	"github.com/ammerola/meta4-erp/internal/core/ports"
)

// AuthClient forwards account operations to the upstream auth API
type AuthClient struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// Statically assert that *AuthClient implements the AuthService interface.
var _ ports.AuthService = (*AuthClient)(nil)

// NewAuthClient creates a new auth client for baseURL (scheme and host)
func NewAuthClient(baseURL string, timeout time.Duration, logger *slog.Logger) *AuthClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &AuthClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With(slog.String("component", "auth_api")),
	}
}

// Login exchanges credentials for a token
func (c *AuthClient) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	if err := domain.ValidateRequest(req); err != nil {
		return nil, err
	}
	var resp domain.LoginResponse
	if err := c.post(ctx, "/api/auth/login", req, &resp, "Login failed"); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a staff account
func (c *AuthClient) Register(ctx context.Context, req domain.RegisterRequest) (*domain.RegisterResponse, error) {
	if req.Role == "" {
		req.Role = domain.RoleStaff
	}
	if req.Stations == nil {
		req.Stations = []string{}
	}
	if err := domain.ValidateRequest(req); err != nil {
		return nil, err
	}
	if req.Role != domain.RoleStaff {
		return nil, fmt.Errorf("%w: role must be %s", domain.ErrInvalidRequest, domain.RoleStaff)
	}

	var resp domain.RegisterResponse
	if err := c.post(ctx, "/api/auth/register", req, &resp, "Registration failed"); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ForgotPassword requests a reset link for an email address
func (c *AuthClient) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) (*domain.MessageResponse, error) {
	if err := domain.ValidateRequest(req); err != nil {
		return nil, err
	}
	var resp domain.MessageResponse
	if err := c.post(ctx, "/api/auth/forgot-password", req, &resp, "Failed to send password reset link"); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ResetPassword sets a new password using a reset token
func (c *AuthClient) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) (*domain.MessageResponse, error) {
	if err := domain.ValidateRequest(req); err != nil {
		return nil, err
	}
	var resp domain.MessageResponse
	if err := c.post(ctx, "/api/auth/reset-password", req, &resp, "Password reset failed"); err != nil {
		return nil, err
	}
	return &resp, nil
}

// post sends body as JSON. A non-2xx answer becomes an *domain.AuthError
// carrying the body's message, else "<failure>: <status text>".
func (c *AuthClient) post(ctx context.Context, path string, body, dest any, failure string) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "auth request failed",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", domain.ErrRetrieval, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRetrieval, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg domain.MessageResponse
		_ = json.Unmarshal(data, &msg)
		if msg.Message == "" {
			msg.Message = fmt.Sprintf("%s: %s", failure, statusText(resp))
		}
		c.logger.WarnContext(ctx, "auth request rejected",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode))
		return &domain.AuthError{StatusCode: resp.StatusCode, Message: msg.Message}
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("%w: malformed auth response: %v", domain.ErrRetrieval, err)
	}
	return nil
}

// statusText is the reason phrase, e.g. "Unauthorized" for "401 Unauthorized"
func statusText(resp *http.Response) string {
	if _, text, ok := strings.Cut(resp.Status, " "); ok && text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
