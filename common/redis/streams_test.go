package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishJSONToStream(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx := context.Background()
	id, err := PublishJSONToStream(ctx, client, "survey:events", map[string]any{"snapshot_id": "s-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	msgs, err := client.XRange(ctx, "survey:events", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, `{"snapshot_id":"s-1"}`, msgs[0].Values["data"])
	assert.NotEmpty(t, msgs[0].Values["timestamp"])
}

func TestStreamValue(t *testing.T) {
	cases := map[string]interface{}{
		"abc":   "abc",
		"12":    12,
		"7":     int64(7),
		"2.5":   2.5,
		"true":  true,
		`[1,2]`: []int{1, 2},
	}
	for want, in := range cases {
		got, err := streamValue(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
