package sqlite

import (
	"context"
	"time"

	"github.com/BloggingApp/comment-service/internal/model"
	"github.com/BloggingApp/comment-service/internal/repository"
)

type commentRepo struct {
	db DBTX
}

func newCommentRepo(db DBTX) repository.Comment {
	return &commentRepo{
		db: db,
	}
}

func (r *commentRepo) Create(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}
	if _, err := r.db.ExecContext(
		ctx,
		`INSERT INTO comments(id, post_id, author_id, content, root_comment_id, parent_comment_id, created_at)
		VALUES(?, ?, ?, ?, ?, ?, ?)`,
		comment.ID,
		comment.PostID,
		comment.AuthorID.String(),
		comment.Content,
		comment.RootCommentID,
		comment.ParentCommentID,
		comment.CreatedAt.UnixNano(),
	); err != nil {
		return nil, err
	}

	return &comment, nil
}

func (r *commentRepo) FindPostComments(ctx context.Context, postID int64) ([]*model.FullComment, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT
		c.id, c.post_id, c.author_id, c.content, c.root_comment_id, c.parent_comment_id, c.created_at, u.username, u.display_name, u.avatar_url
		FROM comments c
		JOIN users u ON c.author_id = u.id
		WHERE c.post_id = ?
		ORDER BY c.created_at, c.id`,
		postID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*model.FullComment
	for rows.Next() {
		var (
			comment   model.FullComment
			createdAt int64
		)
		if err := rows.Scan(
			&comment.Comment.ID,
			&comment.Comment.PostID,
			&comment.Comment.AuthorID,
			&comment.Comment.Content,
			&comment.Comment.RootCommentID,
			&comment.Comment.ParentCommentID,
			&createdAt,
			&comment.Author.Username,
			&comment.Author.DisplayName,
			&comment.Author.AvatarURL,
		); err != nil {
			return nil, err
		}
		comment.Comment.CreatedAt = fromUnixNano(createdAt)

		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *commentRepo) CountByPost(ctx context.Context, postID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comments WHERE post_id = ?", postID).Scan(&count)
	return count, err
}

func (r *commentRepo) DeleteByPost(ctx context.Context, postID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE post_id = ?", postID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
