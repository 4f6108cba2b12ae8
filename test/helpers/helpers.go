// test/helpers/helpers.go
package helpers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/meta4-erp/internal/core/domain"
	"github.com/ammerola/meta4-erp/internal/pkg/config"
)

// TestRedis represents a test Redis instance. Server is nil when backed by a container.
type TestRedis struct {
	Client   *redis.Client
	Server   *miniredis.Miniredis
	Resource *dockertest.Resource
}

// TestLogger returns a test logger
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// SetupTestRedis creates an in-memory Redis instance for testing
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return &TestRedis{
		Client: client,
		Server: mr,
	}
}

// SetupRedisContainer starts a real Redis in Docker for integration tests
func SetupRedisContainer(t *testing.T) *TestRedis {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not connect to Docker")

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start Redis container")

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	client := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("localhost:%s", resource.GetPort("6379/tcp")),
	})
	t.Cleanup(func() { client.Close() })

	err = pool.Retry(func() error {
		return client.Ping(context.Background()).Err()
	})
	require.NoError(t, err, "Could not connect to Redis")

	return &TestRedis{
		Client:   client,
		Resource: resource,
	}
}

// LoadTestConfig returns a test configuration
func LoadTestConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "test-api",
			Environment: "test",
			Version:     "test",
			LogLevel:    "debug",
			LogFormat:   "text",
			Debug:       true,
		},
		Upstream: config.UpstreamConfig{
			Mode:      config.UpstreamMemory,
			BaseURL:   "http://localhost:9999/inventory/store-count",
			Timeout:   5 * time.Second,
			RateLimit: 100,
			RateBurst: 100,
		},
		Redis: config.RedisConfig{
			Host:         "localhost",
			Port:         "6379",
			DB:           0,
			TTL:          time.Minute,
			PoolSize:     10,
			CacheEnabled: true,
		},
		Asynq: config.AsynqConfig{
			RedisAddr:   "localhost:6379",
			Concurrency: 1,
			Queues:      map[string]int{"default": 1},
			RetryMax:    1,
		},
		Views: config.ViewsConfig{
			IdleTimeout:     time.Minute,
			MaxSessions:     10,
			SweepInterval:   time.Second,
			MountTimeout:    time.Second,
			RefreshInterval: time.Minute,
		},
		Security: config.SecurityConfig{
			RateLimitRequests: 100,
			RateLimitDuration: time.Minute,
			AllowedOrigins:    []string{"*"},
			SecureHeaders:     false,
			RequestIDHeader:   "X-Request-ID",
		},
		Server: config.ServerConfig{
			Host:         "localhost",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
	}
}

// CreateTestItem creates a test item
func CreateTestItem(overrides ...func(*domain.Item)) domain.Item {
	item := domain.Item{
		ItemID: "item-001",
		Product: domain.Product{
			Name:             "Walnut Bowl",
			SKU:              "WB-001",
			Unit:             "pcs",
			Status:           "active",
			Brand:            "Meta4",
			Rate:             decimal.NewFromInt(40),
			PurchaseRate:     decimal.NewFromInt(22),
			StockOnHand:      decimal.NewFromInt(30),
			AvailableStock:   decimal.NewFromInt(28),
			CreatedTime:      "2024-01-10T09:00:00Z",
			LastModifiedTime: "2024-03-01T12:00:00Z",
		},
	}

	for _, override := range overrides {
		override(&item)
	}

	return item
}

// CreateTestItems creates count items with distinct names and cycling stock levels
func CreateTestItems(count int) []domain.Item {
	items := make([]domain.Item, count)
	for i := 0; i < count; i++ {
		items[i] = CreateTestItem(func(item *domain.Item) {
			item.ItemID = fmt.Sprintf("item-%03d", i+1)
			item.Name = fmt.Sprintf("Test Item %03d", i+1)
			item.SKU = fmt.Sprintf("TI-%03d", i+1)
			item.StockOnHand = decimal.NewFromInt(int64(i % 20))
			item.LastModifiedTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).
				Add(time.Duration(i) * time.Hour).Format(time.RFC3339)
		})
	}
	return items
}

// CreateTestCompositeItem creates a test composite item
func CreateTestCompositeItem(overrides ...func(*domain.CompositeItem)) domain.CompositeItem {
	item := domain.CompositeItem{
		CompositeItemID: "composite-001",
		AssemblyType:    "kit",
		Product: domain.Product{
			Name:             "Serving Set",
			SKU:              "SS-001",
			Unit:             "set",
			Status:           "active",
			Rate:             decimal.NewFromInt(120),
			StockOnHand:      decimal.NewFromInt(4),
			AvailableStock:   decimal.NewFromInt(4),
			CreatedTime:      "2024-02-01T09:00:00Z",
			LastModifiedTime: "2024-03-02T12:00:00Z",
		},
	}

	for _, override := range overrides {
		override(&item)
	}

	return item
}

// CreateTestTransferOrder creates a test transfer order
func CreateTestTransferOrder(overrides ...func(*domain.TransferOrder)) domain.TransferOrder {
	order := domain.TransferOrder{
		TransferOrderID:     "to-001",
		TransferOrderNumber: "TO-00001",
		Date:                "2024-03-05",
		Description:         "Restock front of house",
		QuantityTransfer:    decimal.NewFromInt(10),
		QuantityTransferred: decimal.NewFromInt(10),
		FromLocationID:      "loc-1",
		FromLocationName:    "Main Warehouse",
		ToLocationID:        "loc-2",
		ToLocationName:      "Downtown Store",
		Status:              domain.TransferStatusTransferred,
		CreatedByName:       "Dana",
	}

	for _, override := range overrides {
		override(&order)
	}

	return order
}

// CreateTestStockRow creates a stock by location row held at the given locations
func CreateTestStockRow(id string, locations ...domain.ItemLocation) domain.StockLocationRow {
	row := domain.StockLocationRow{
		ItemID:         id,
		Name:           "Row " + id,
		SKU:            "SKU-" + id,
		Unit:           "pcs",
		StockOnHand:    decimal.Zero,
		AvailableStock: decimal.Zero,
		Locations:      locations,
	}
	for _, loc := range locations {
		row.StockOnHand = row.StockOnHand.Add(loc.LocationStockOnHand)
		row.AvailableStock = row.AvailableStock.Add(loc.LocationAvailableStock)
	}
	return row
}

// Location builds an ItemLocation with equal on-hand and available stock
func Location(id, name string, stock int64) domain.ItemLocation {
	return domain.ItemLocation{
		LocationID:             id,
		LocationName:           name,
		LocationStockOnHand:    decimal.NewFromInt(stock),
		LocationAvailableStock: decimal.NewFromInt(stock),
	}
}

// AssertEventuallyWithTimeout asserts that a condition is met within a timeout
func AssertEventuallyWithTimeout(t *testing.T, condition func() bool, timeout time.Duration, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Errorf("Condition not met within %v: %s", timeout, msg)
}
