package postgres

import (
	"context"
	"time"

	"github.com/BloggingApp/comment-service/internal/model"
	"github.com/BloggingApp/comment-service/internal/repository"
)

type mentionRepo struct {
	db DBTX
}

func newMentionRepo(db DBTX) repository.Mention {
	return &mentionRepo{
		db: db,
	}
}

func (r *mentionRepo) Create(ctx context.Context, mention model.Mention) (*model.Mention, error) {
	if mention.CreatedAt.IsZero() {
		mention.CreatedAt = time.Now()
	}
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO mentions(comment_id, mentioned_user_id, mentioned_username, position, created_at)
		VALUES($1, $2, $3, $4, $5) RETURNING id`,
		mention.CommentID,
		mention.MentionedUserID,
		mention.MentionedUsername,
		mention.Position,
		mention.CreatedAt,
	).Scan(&mention.ID); err != nil {
		return nil, err
	}

	return &mention, nil
}

func (r *mentionRepo) FindPostMentions(ctx context.Context, postID int64) ([]*model.Mention, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT
		m.id, m.comment_id, m.mentioned_user_id, m.mentioned_username, m.position, m.created_at
		FROM mentions m
		JOIN comments c ON m.comment_id = c.id
		WHERE c.post_id = $1
		ORDER BY m.comment_id, m.position`,
		postID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mentions []*model.Mention
	for rows.Next() {
		var mention model.Mention
		if err := rows.Scan(
			&mention.ID,
			&mention.CommentID,
			&mention.MentionedUserID,
			&mention.MentionedUsername,
			&mention.Position,
			&mention.CreatedAt,
		); err != nil {
			return nil, err
		}

		mentions = append(mentions, &mention)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return mentions, nil
}

func (r *mentionRepo) CountByPost(ctx context.Context, postID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(
		ctx,
		"SELECT COUNT(*) FROM mentions m JOIN comments c ON m.comment_id = c.id WHERE c.post_id = $1",
		postID,
	).Scan(&count)
	return count, err
}

func (r *mentionRepo) DeleteByPost(ctx context.Context, postID int64) (int64, error) {
	tag, err := r.db.Exec(
		ctx,
		"DELETE FROM mentions WHERE comment_id IN (SELECT id FROM comments WHERE post_id = $1)",
		postID,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
