package redisrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/BloggingApp/comment-service/internal/config"
	"github.com/BloggingApp/comment-service/internal/repository/redisrepo"
	"github.com/BloggingApp/comment-service/internal/repository/redistest"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	Name string `json:"name"`
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	cache := redistest.New()

	_, err := redisrepo.Get[item](cache, ctx, "missing")
	assert.ErrorIs(t, err, redis.Nil)

	require.NoError(t, cache.SetJSON(ctx, "k", item{Name: "x"}, time.Minute))
	got, err := redisrepo.Get[item](cache, ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, &item{Name: "x"}, got)

	require.NoError(t, cache.SetJSON(ctx, "nil", nil, time.Minute))
	got, err = redisrepo.Get[item](cache, ctx, "nil")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestConnectWithoutAddr(t *testing.T) {
	rdb, err := redisrepo.Connect(context.Background(), config.RedisConfig{})
	require.NoError(t, err)
	assert.Nil(t, rdb)
}
