package service

import (
	"context"
	"testing"

	"github.com/BloggingApp/comment-service/internal/repository/redisrepo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByUsername(t *testing.T) {
	env := newTestEnv(t)
	env.bootstrap(t)
	ctx := context.Background()

	user, err := env.services.FindByUsername(ctx, "tran.thi.b")
	require.NoError(t, err)
	assert.Equal(t, "Trần Thị B", user.DisplayName)
	assert.True(t, env.cache.Has(redisrepo.UserKey("tran.thi.b")))

	cached, err := env.services.FindByUsername(ctx, "tran.thi.b")
	require.NoError(t, err)
	assert.Equal(t, user, cached)

	_, err = env.services.FindByUsername(ctx, "ghost.user")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.False(t, env.cache.Has(redisrepo.UserKey("ghost.user")))
}
