//go:build integration

package redis_a_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	redis_a "github.com/ammerola/meta4-erp/internal/adapters/redis_adapter"
	"github.com/ammerola/meta4-erp/test/helpers"
	"github.com/ammerola/meta4-erp/test/mocks"
)

func TestCachedSource_RedisContainer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	tr := helpers.SetupRedisContainer(t)

	ctrl := gomock.NewController(t)
	upstream := mocks.NewMockRecordSource(ctrl)
	upstream.EXPECT().FetchItems(gomock.Any()).Return(helpers.CreateTestItems(50), nil).Times(1)

	cache := redis_a.NewCache(tr.Client, helpers.TestLogger())
	require.NoError(t, cache.Ping(ctx))
	source := redis_a.NewCachedSource(upstream, cache, time.Minute, helpers.TestLogger())

	for i := 0; i < 3; i++ {
		items, err := source.FetchItems(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 50)
	}

	ttl, err := tr.Client.TTL(ctx, "coll:items").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 50*time.Second)
}
