// internal/handlers/response.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/ammerola/meta4-erp/internal/core/domain"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 20

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, logger *slog.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func respondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	respondJSON(w, logger, status, ErrorResponse{Error: message})
}

// respondDomainError maps err to a status code and a client-safe message.
// Server side failures are logged with the full error.
func respondDomainError(ctx context.Context, w http.ResponseWriter, logger *slog.Logger, err error) {
	status, message := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(ctx, "request failed", slog.String("error", err.Error()))
	} else {
		logger.WarnContext(ctx, "request rejected",
			slog.Int("status", status),
			slog.String("error", err.Error()))
	}
	respondError(w, logger, status, message)
}

func statusFor(err error) (int, string) {
	var authErr *domain.AuthError
	switch {
	case errors.As(err, &authErr):
		return authErr.StatusCode, authErr.Message
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, domain.ErrRetrieval):
		return http.StatusBadGateway, "Unable to load records"
	case errors.Is(err, domain.ErrUnknownView),
		errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrSessionClosed):
		return http.StatusGone, err.Error()
	case errors.Is(err, domain.ErrTooManySessions):
		return http.StatusServiceUnavailable, err.Error()
	case errors.Is(err, domain.ErrUnknownSortKey),
		errors.Is(err, domain.ErrUnknownCategory),
		errors.Is(err, domain.ErrInvalidDirection),
		errors.Is(err, domain.ErrInvalidPageSize),
		errors.Is(err, domain.ErrPageOutOfRange),
		errors.Is(err, domain.ErrInvalidEvent),
		errors.Is(err, domain.ErrUnknownCollection),
		errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "Request timeout"
	}
	return http.StatusInternalServerError, "Internal Server Error"
}

// decodeJSON reads an optional JSON body into dest. An empty body leaves
// dest untouched.
func decodeJSON(r *http.Request, dest interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: malformed JSON body: %v", domain.ErrInvalidRequest, err)
	}
	return nil
}
