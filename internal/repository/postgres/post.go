package postgres

import (
	"context"
	"time"

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
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	_, err := r.db.Exec(
		ctx,
		"INSERT INTO posts(id, author_id, title, content, created_at) VALUES($1, $2, $3, $4, $5) ON CONFLICT DO NOTHING",
		post.ID,
		post.AuthorID,
		post.Title,
		post.Content,
		post.CreatedAt,
	)
	return err
}

func (r *postRepo) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	var post model.Post
	if err := r.db.QueryRow(
		ctx,
		"SELECT p.id, p.author_id, p.title, p.content, p.created_at FROM posts p WHERE p.id = $1",
		id,
	).Scan(
		&post.ID,
		&post.AuthorID,
		&post.Title,
		&post.Content,
		&post.CreatedAt,
	); err != nil {
		return nil, notFound(err)
	}

	return &post, nil
}
