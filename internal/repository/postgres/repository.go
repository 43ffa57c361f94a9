package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/BloggingApp/comment-service/internal/config"
	"github.com/BloggingApp/comment-service/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func DB(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.Username,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.SSLMode,
	)
	return pgxpool.New(ctx, dsn)
}

type Store struct {
	pool  *pgxpool.Pool
	repos *repository.Repos
}

// Open connects, pings and bootstraps the schema.
func Open(ctx context.Context, cfg config.DBConfig) (*Store, error) {
	pool, err := DB(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	s := New(pool)
	if err := s.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	if err := s.initSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{
		pool:  pool,
		repos: newRepos(pool),
	}
}

func newRepos(db DBTX) *repository.Repos {
	return &repository.Repos{
		User:    newUserRepo(db),
		Post:    newPostRepo(db),
		Comment: newCommentRepo(db),
		Mention: newMentionRepo(db),
		Friend:  newFriendRepo(db),
	}
}

func (s *Store) Repos() *repository.Repos {
	return s.repos
}

func (s *Store) InTx(ctx context.Context, fn func(repos *repository.Repos) error) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		return fn(newRepos(tx))
	})
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	return err
}
