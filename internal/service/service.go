package service

import (
	"context"
	"time"

	"github.com/BloggingApp/comment-service/internal/dto"
	"github.com/BloggingApp/comment-service/internal/model"
	"github.com/BloggingApp/comment-service/internal/repository"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const DEFAULT_CACHE_TTL = time.Hour

func cacheTTL() time.Duration {
	if ttl := viper.GetDuration("redis.tree-ttl"); ttl > 0 {
		return ttl
	}
	return DEFAULT_CACHE_TTL
}

type Comment interface {
	// FindPostTree returns the post's comments assembled into reply threads.
	FindPostTree(ctx context.Context, postID int64) (*dto.GetPostComments, error)
}

type User interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type Seed interface {
	// SeedPost replaces every comment and mention of postID with the fixtures
	// that belong to it. Running it twice leaves the same rows as running it once.
	SeedPost(ctx context.Context, postID int64, fixtures []dto.CommentFixture) (*dto.SeedReport, error)
	// SeedAll seeds every post referenced by fixtures, in ascending post id order.
	SeedAll(ctx context.Context, fixtures []dto.CommentFixture) ([]*dto.SeedReport, error)
	// Bootstrap inserts the fixture set's users, posts and friendships that are not stored yet.
	Bootstrap(ctx context.Context, set *dto.FixtureSet) (*dto.BootstrapReport, error)
}

type Service struct {
	Comment
	User
	Seed
}

func New(logger *zap.Logger, repo *repository.Repository) *Service {
	return &Service{
		Comment: newCommentService(logger, repo),
		User:    newUserService(logger, repo),
		Seed:    newSeedService(logger, repo),
	}
}
