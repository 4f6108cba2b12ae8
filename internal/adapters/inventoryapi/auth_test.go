// internal/adapters/inventoryapi/auth_test.go
package inventoryapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/meta4-erp/internal/adapters/inventoryapi"
	"github.com/ammerola/meta4-erp/internal/core/domain"
	"github.com/ammerola/meta4-erp/test/helpers"
)

func newAuthClient(t *testing.T, handler http.HandlerFunc) *inventoryapi.AuthClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return inventoryapi.NewAuthClient(srv.URL, time.Second, helpers.TestLogger())
}

func TestAuthClient_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("returns_token", func(t *testing.T) {
		client := newAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/auth/login", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]string{"email": "dana@example.com", "password": "secret-pass"}, body)

			w.Write([]byte(`{"token":"jwt-token","user":{"id":"u1","email":"dana@example.com","role":"STAFF"}}`))
		})

		resp, err := client.Login(ctx, domain.LoginRequest{Email: "dana@example.com", Password: "secret-pass"})
		require.NoError(t, err)
		assert.Equal(t, "jwt-token", resp.Token)
		require.NotNil(t, resp.User)
		assert.Equal(t, "u1", resp.User.ID)
	})

	t.Run("uses_body_message", func(t *testing.T) {
		client := newAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Invalid credentials"}`))
		})

		_, err := client.Login(ctx, domain.LoginRequest{Email: "dana@example.com", Password: "wrong"})
		var authErr *domain.AuthError
		require.True(t, errors.As(err, &authErr))
		assert.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
		assert.Equal(t, "Invalid credentials", authErr.Message)
	})

	t.Run("falls_back_to_status_text", func(t *testing.T) {
		client := newAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`not json`))
		})

		_, err := client.Login(ctx, domain.LoginRequest{Email: "dana@example.com", Password: "x"})
		var authErr *domain.AuthError
		require.True(t, errors.As(err, &authErr))
		assert.Equal(t, "Login failed: Internal Server Error", authErr.Message)
	})

	t.Run("rejects_invalid_email_locally", func(t *testing.T) {
		client := newAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("request should not be sent")
		})

		_, err := client.Login(ctx, domain.LoginRequest{Email: "not-an-email", Password: "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid request")
	})
}

func TestAuthClient_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults_role_and_stations", func(t *testing.T) {
		client := newAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/auth/register", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "STAFF", body["role"])
			assert.Equal(t, []any{}, body["stations"])
			assert.Equal(t, "", body["department"])

			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"message":"Registered"}`))
		})

		resp, err := client.Register(ctx, domain.RegisterRequest{
			FirstName: "Dana", LastName: "Reyes", Email: "dana@example.com", Password: "long-enough",
		})
		require.NoError(t, err)
		assert.Equal(t, "Registered", resp.Message)
	})

	t.Run("refuses_other_roles", func(t *testing.T) {
		client := newAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("request should not be sent")
		})

		_, err := client.Register(ctx, domain.RegisterRequest{
			FirstName: "Dana", LastName: "Reyes", Email: "dana@example.com", Password: "long-enough", Role: "ADMIN",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})
}

func TestAuthClient_PasswordReset(t *testing.T) {
	ctx := context.Background()

	t.Run("forgot_password_fallback_message", func(t *testing.T) {
		client := newAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/auth/forgot-password", r.URL.Path)
			w.WriteHeader(http.StatusTooManyRequests)
		})

		_, err := client.ForgotPassword(ctx, domain.ForgotPasswordRequest{Email: "dana@example.com"})
		var authErr *domain.AuthError
		require.True(t, errors.As(err, &authErr))
		assert.Equal(t, "Failed to send password reset link: Too Many Requests", authErr.Message)
	})

	t.Run("reset_password", func(t *testing.T) {
		client := newAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/auth/reset-password", r.URL.Path)
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "reset-token", body["token"])
			assert.Equal(t, "brand-new-pass", body["newPassword"])
			w.Write([]byte(`{"message":"Password updated"}`))
		})

		resp, err := client.ResetPassword(ctx, domain.ResetPasswordRequest{Token: "reset-token", NewPassword: "brand-new-pass"})
		require.NoError(t, err)
		assert.Equal(t, "Password updated", resp.Message)
	})
}
