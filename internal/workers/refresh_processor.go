// internal/workers/refresh_processor.go
package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/meta4-erp/internal/core/domain"
	"github.com/ammerola/meta4-erp/internal/core/ports"
)

const (
	TypeCollectionRefresh = "collection:refresh"
)

// RefreshPayload names the collection to rewarm. An empty collection
// rewarms all of them.
type RefreshPayload struct {
	Collection domain.Collection `json:"collection,omitempty"`
}

// NewRefreshTask builds a collection refresh task
func NewRefreshTask(collection domain.Collection, opts ...asynq.Option) (*asynq.Task, error) {
	payload, err := json.Marshal(RefreshPayload{Collection: collection})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return asynq.NewTask(TypeCollectionRefresh, payload, opts...), nil
}

// RefreshProcessor rewarms cached upstream collections
type RefreshProcessor struct {
	warmer ports.CollectionWarmer
	logger *slog.Logger
}

// NewRefreshProcessor creates a new refresh processor
func NewRefreshProcessor(warmer ports.CollectionWarmer, logger *slog.Logger) *RefreshProcessor {
	return &RefreshProcessor{
		warmer: warmer,
		logger: logger.With(slog.String("processor", "refresh")),
	}
}

// ProcessRefresh handles TypeCollectionRefresh. Malformed payloads, unknown
// collections and runs where every failure was an upstream 401 are not
// retried.
func (p *RefreshProcessor) ProcessRefresh(ctx context.Context, t *asynq.Task) error {
	start := time.Now()

	var payload RefreshPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	collections := domain.Collections()
	if payload.Collection != "" {
		c, err := domain.ParseCollection(string(payload.Collection))
		if err != nil {
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		collections = []domain.Collection{c}
	}

	var errs []error
	for _, c := range collections {
		if err := p.warmer.Warm(ctx, c); err != nil {
			p.logger.WarnContext(ctx, "collection refresh failed",
				slog.String("collection", string(c)),
				slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	p.logger.InfoContext(ctx, "collection refresh completed",
		slog.Int("collections", len(collections)),
		slog.Int("failed", len(errs)),
		slog.Duration("duration", time.Since(start)))

	joined := errors.Join(errs...)
	if joined != nil && allUnauthorized(errs) {
		return fmt.Errorf("%w: %w", joined, asynq.SkipRetry)
	}
	return joined
}

func allUnauthorized(errs []error) bool {
	for _, err := range errs {
		if !errors.Is(err, domain.ErrUnauthorized) {
			return false
		}
	}
	return len(errs) > 0
}
