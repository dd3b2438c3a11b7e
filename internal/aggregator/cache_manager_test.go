package aggregator_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	agg "github.com/elab4health-svg/health-tech-sub001/internal/aggregator"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCacheManager_UpdateDashboardCache_WritesJSON(t *testing.T) {
	kv := newFakeKVStore()
	cm := agg.NewCacheManager(kv, 0, zap.NewNop())

	payload := map[string]any{"total_respondents": 3}
	require.NoError(t, cm.UpdateDashboardCache(context.Background(), payload))

	raw, err := kv.Get(context.Background(), agg.DashboardKey)
	require.NoError(t, err)

	var decoded map[string]int
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	require.Equal(t, 3, decoded["total_respondents"])
}

func TestCacheManager_UpdateCountryCache(t *testing.T) {
	kv := newFakeKVStore()
	cm := agg.NewCacheManager(kv, time.Minute, zap.NewNop())

	require.NoError(t, cm.UpdateCountryCache(context.Background(), "sg", []string{"a"}))

	raw, err := kv.Get(context.Background(), "survey:dashboard:country:sg")
	require.NoError(t, err)
	require.Equal(t, `["a"]`, raw)
}

func TestCacheManager_DashboardMissingBeforeUpdate(t *testing.T) {
	kv := newFakeKVStore()
	cm := agg.NewCacheManager(kv, 0, zap.NewNop())

	_, err := kv.Get(context.Background(), agg.DashboardKey)
	require.True(t, errors.Is(err, agg.ErrCacheMiss))

	require.NoError(t, cm.UpdateDashboardCache(context.Background(), map[string]int{"total_respondents": 0}))
	_, err = kv.Get(context.Background(), agg.DashboardKey)
	require.NoError(t, err)
}

func TestRedisKVStore_WithMiniredis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	kv := agg.NewRedisKVStore(client)
	ctx := context.Background()

	_, err := kv.Get(ctx, "missing")
	require.ErrorIs(t, err, agg.ErrCacheMiss)

	require.NoError(t, kv.Set(ctx, "k", "v", 10*time.Second))
	val, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "v", val)

	mr.FastForward(11 * time.Second)
	_, err = kv.Get(ctx, "k")
	require.ErrorIs(t, err, agg.ErrCacheMiss)
}
