package sqlite

import (
	"context"

	"github.com/BloggingApp/comment-service/internal/model"
	"github.com/BloggingApp/comment-service/internal/repository"
)

type postRepo struct {
	db DBTX
}

func newPostRepo(db DBTX) repository.Post {
	return &postRepo{
		db: db,
	}
}

func (r *postRepo) Create(ctx context.Context, post model.Post) error {
	_, err := r.db.ExecContext(
		ctx,
		"INSERT INTO posts(id, author_id, title, content, created_at) VALUES(?, ?, ?, ?, ?) ON CONFLICT DO NOTHING",
		post.ID,
		post.AuthorID.String(),
		post.Title,
		post.Content,
		unixNano(post.CreatedAt),
	)
	return err
}

func (r *postRepo) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	var (
		post      model.Post
		createdAt int64
	)
	if err := r.db.QueryRowContext(
		ctx,
		"SELECT p.id, p.author_id, p.title, p.content, p.created_at FROM posts p WHERE p.id = ?",
		id,
	).Scan(
		&post.ID,
		&post.AuthorID,
		&post.Title,
		&post.Content,
		&createdAt,
	); err != nil {
		return nil, notFound(err)
	}
	post.CreatedAt = fromUnixNano(createdAt)

	return &post, nil
}
