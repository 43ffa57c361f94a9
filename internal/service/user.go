package service

import (
	"context"
	"errors"

	"github.com/BloggingApp/comment-service/internal/model"
	"github.com/BloggingApp/comment-service/internal/repository"
	"github.com/BloggingApp/comment-service/internal/repository/redisrepo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type userService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newUserService(logger *zap.Logger, repo *repository.Repository) User {
	return &userService{
		logger: logger,
		repo:   repo,
	}
}

func (s *userService) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.repo.Redis != nil {
		cachedUser, err := redisrepo.Get[model.User](s.repo.Redis.Default, ctx, redisrepo.UserKey(username))
		if err == nil && cachedUser != nil {
			return cachedUser, nil
		}
		if err != nil && err != redis.Nil {
			s.logger.Sugar().Errorf("failed to get user(%s) from redis: %s", username, err.Error())
		}
	}

	user, err := s.repo.Store.Repos().User.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		s.logger.Sugar().Errorf("failed to find user(%s) from store: %s", username, err.Error())
		return nil, ErrInternal
	}

	if s.repo.Redis != nil {
		if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.UserKey(username), user, cacheTTL()); err != nil {
			s.logger.Sugar().Errorf("failed to set user(%s) in redis: %s", username, err.Error())
		}
	}

	return user, nil
}
