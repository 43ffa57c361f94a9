package repository

import (
	"context"
	"errors"

	"github.com/BloggingApp/comment-service/internal/model"
	"github.com/BloggingApp/comment-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrNotFound = errors.New("record not found")

type User interface {
	// Create inserts the user unless one with the same id or username exists.
	Create(ctx context.Context, user model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindAll(ctx context.Context) ([]*model.User, error)
}

type Post interface {
	Create(ctx context.Context, post model.Post) error
	FindByID(ctx context.Context, id int64) (*model.Post, error)
}

type Comment interface {
	Create(ctx context.Context, comment model.Comment) (*model.Comment, error)
	FindPostComments(ctx context.Context, postID int64) ([]*model.FullComment, error)
	CountByPost(ctx context.Context, postID int64) (int64, error)
	DeleteByPost(ctx context.Context, postID int64) (int64, error)
}

type Mention interface {
	Create(ctx context.Context, mention model.Mention) (*model.Mention, error)
	FindPostMentions(ctx context.Context, postID int64) ([]*model.Mention, error)
	CountByPost(ctx context.Context, postID int64) (int64, error)
	DeleteByPost(ctx context.Context, postID int64) (int64, error)
}

type Friend interface {
	Create(ctx context.Context, friendship model.Friendship) error
	FindAll(ctx context.Context) ([]model.Friendship, error)
}

// Repos bundles the repositories bound to one connection or transaction.
type Repos struct {
	User
	Post
	Comment
	Mention
	Friend
}

// Store is the storage context handed to services. It is opened once per
// process or batch run and must be closed by whoever opened it.
type Store interface {
	Repos() *Repos
	// InTx runs fn inside a transaction, committing when fn returns nil.
	InTx(ctx context.Context, fn func(repos *Repos) error) error
	Ping(ctx context.Context) error
	Close() error
}

type Repository struct {
	Store Store
	Redis *redisrepo.RedisRepository
}

// New bundles the store with an optional redis client; rdb may be nil.
func New(store Store, rdb *redis.Client) *Repository {
	repo := &Repository{
		Store: store,
	}
	if rdb != nil {
		repo.Redis = redisrepo.New(rdb)
	}
	return repo
}
