// internal/adapters/inventoryapi/client.go
package inventoryapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/ammerola/meta4-erp/internal/core/domain"
	"github.com/ammerola/meta4-erp/internal/core/ports"
	"github.com/ammerola/meta4-erp/internal/pkg/logger"
)

// maxBodyBytes caps how much of an upstream response is read
const maxBodyBytes = 32 << 20

// Config holds the upstream client settings
type Config struct {
	BaseURL         string
	Timeout         time.Duration
	RateLimit       float64
	RateBurst       int
	RequestIDHeader string
}

// Client is the HTTP RecordSource for the upstream inventory API
type Client struct {
	baseURL         string
	http            *http.Client
	limiter         *rate.Limiter
	tokens          ports.TokenSource
	requestIDHeader string
	logger          *slog.Logger
}

// Statically assert that *Client implements the RecordSource interface.
var _ ports.RecordSource = (*Client)(nil)

// NewClient creates a new upstream client. tokens may be nil for an
// unauthenticated upstream.
func NewClient(cfg Config, tokens ports.TokenSource, logger *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.RequestIDHeader == "" {
		cfg.RequestIDHeader = "X-Request-ID"
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}
	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		http:            &http.Client{Timeout: cfg.Timeout},
		limiter:         rate.NewLimiter(limit, burst),
		tokens:          tokens,
		requestIDHeader: cfg.RequestIDHeader,
		logger:          logger.With(slog.String("component", "inventory_api")),
	}
}

type itemsEnvelope struct {
	OK    *bool         `json:"ok"`
	Items []domain.Item `json:"items"`
}

type compositeItemsEnvelope struct {
	OK             *bool                  `json:"ok"`
	CompositeItems []domain.CompositeItem `json:"compositeItems"`
}

type transferOrdersEnvelope struct {
	OK             *bool                  `json:"ok"`
	TransferOrders []domain.TransferOrder `json:"transferOrders"`
}

type itemsWithStockEnvelope struct {
	Count int                       `json:"count"`
	Items []domain.StockLocationRow `json:"items"`
}

// FetchItems loads the items collection
func (c *Client) FetchItems(ctx context.Context) ([]domain.Item, error) {
	var env itemsEnvelope
	if err := c.get(ctx, domain.CollectionItems, &env); err != nil {
		return nil, err
	}
	if err := checkOK(domain.CollectionItems, env.OK); err != nil {
		return nil, err
	}
	return env.Items, nil
}

// FetchCompositeItems loads the composite items collection
func (c *Client) FetchCompositeItems(ctx context.Context) ([]domain.CompositeItem, error) {
	var env compositeItemsEnvelope
	if err := c.get(ctx, domain.CollectionCompositeItems, &env); err != nil {
		return nil, err
	}
	if err := checkOK(domain.CollectionCompositeItems, env.OK); err != nil {
		return nil, err
	}
	return env.CompositeItems, nil
}

// FetchTransferOrders loads the transfer orders collection
func (c *Client) FetchTransferOrders(ctx context.Context) ([]domain.TransferOrder, error) {
	var env transferOrdersEnvelope
	if err := c.get(ctx, domain.CollectionTransferOrders, &env); err != nil {
		return nil, err
	}
	if err := checkOK(domain.CollectionTransferOrders, env.OK); err != nil {
		return nil, err
	}
	return env.TransferOrders, nil
}

// FetchStockByLocation loads items with their per-location stock
func (c *Client) FetchStockByLocation(ctx context.Context) ([]domain.StockLocationRow, error) {
	var env itemsWithStockEnvelope
	if err := c.get(ctx, domain.CollectionStockByLocation, &env); err != nil {
		return nil, err
	}
	if env.Count != len(env.Items) {
		c.logger.WarnContext(ctx, "stock by location count mismatch",
			slog.Int("count", env.Count),
			slog.Int("items", len(env.Items)))
	}
	return env.Items, nil
}

// Ping checks the upstream answers on the items endpoint
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.url(domain.CollectionItems), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRetrieval, err)
	}
	resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: status %d", domain.ErrRetrieval, resp.StatusCode)
	}
	return nil
}

func (c *Client) url(collection domain.Collection) string {
	return c.baseURL + "/" + string(collection)
}

func checkOK(collection domain.Collection, ok *bool) error {
	if ok != nil && !*ok {
		return fmt.Errorf("%w: %s: upstream reported ok=false", domain.ErrRetrieval, collection)
	}
	return nil
}

func (c *Client) get(ctx context.Context, collection domain.Collection, dest any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrRetrieval, collection, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(collection), nil)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrRetrieval, collection, err)
	}
	req.Header.Set("Accept", "application/json")
	if id := logger.RequestIDFromContext(ctx); id != "" {
		req.Header.Set(c.requestIDHeader, id)
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return err
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.ErrorContext(ctx, "upstream request failed",
			slog.String("collection", string(collection)),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %s: %v", domain.ErrRetrieval, collection, err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "upstream response",
		slog.String("collection", string(collection)),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration_ms", time.Since(start)))

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, collection)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: %s: status %d", domain.ErrRetrieval, collection, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrRetrieval, collection, err)
	}
	if err := json.Unmarshal(body, dest); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return fmt.Errorf("%w: %s: malformed body at offset %d", domain.ErrRetrieval, collection, syntaxErr.Offset)
		}
		return fmt.Errorf("%w: %s: %v", domain.ErrRetrieval, collection, err)
	}
	return nil
}
