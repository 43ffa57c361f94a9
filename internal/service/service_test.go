package service

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/BloggingApp/comment-service/internal/dto"
	"github.com/BloggingApp/comment-service/internal/fixture"
	"github.com/BloggingApp/comment-service/internal/model"
	"github.com/BloggingApp/comment-service/internal/repository"
	"github.com/BloggingApp/comment-service/internal/repository/redisrepo"
	"github.com/BloggingApp/comment-service/internal/repository/redistest"
	"github.com/BloggingApp/comment-service/internal/repository/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEnv struct {
	services *Service
	repo     *repository.Repository
	cache    *redistest.Fake
	set      *dto.FixtureSet
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "social.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	set, err := fixture.Default()
	require.NoError(t, err)

	cache := redistest.New()
	repo := &repository.Repository{
		Store: store,
		Redis: &redisrepo.RedisRepository{Default: cache},
	}

	return &testEnv{
		services: New(zap.NewNop(), repo),
		repo:     repo,
		cache:    cache,
		set:      set,
	}
}

// bootstrap loads the directory part of the default fixtures.
func (e *testEnv) bootstrap(t *testing.T) {
	t.Helper()
	_, err := e.services.Bootstrap(context.Background(), e.set)
	require.NoError(t, err)
}

func ptr(v int64) *int64 { return &v }

// shape renders a forest as "id(child,child),id".
func shape(nodes []*model.CommentNode) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		s := strconv.FormatInt(n.Comment.ID, 10)
		if len(n.Replies) > 0 {
			s += "(" + shape(n.Replies) + ")"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ",")
}
