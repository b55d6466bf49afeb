package cache

import (
	"context"
	"testing"
	"time"

	"github.com/Barshamagar123/skill-matcher/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedis_DisabledIsNoop(t *testing.T) {
	ctx := context.Background()
	r := NewRedis(ctx, config.RedisConfig{}, nil)

	assert.ErrorIs(t, r.Ping(ctx), ErrUnavailable)
	require.NoError(t, r.SetJSON(ctx, "k", map[string]int{"a": 1}, 0))

	var out map[string]int
	hit, err := r.GetJSON(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	assert.NoError(t, r.Invalidate(ctx, "jobs:"))
	assert.NoError(t, r.Close())
	assert.Equal(t, defaultTTL, r.ttl)
}

func TestRedis_UnreachableFallsBack(t *testing.T) {
	ctx := context.Background()
	r := NewRedis(ctx, config.RedisConfig{Host: "127.0.0.1", Port: "1", TTL: time.Minute}, nil)

	assert.True(t, r.isUnavailable())
	assert.Equal(t, time.Minute, r.ttl)

	hit, err := r.GetJSON(ctx, "k", new(int))
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedis_NilReceiver(t *testing.T) {
	var r *Redis
	hit, err := r.GetJSON(context.Background(), "k", new(int))
	assert.NoError(t, err)
	assert.False(t, hit)
}
