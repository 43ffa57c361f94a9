package sqlite

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
		mention.CreatedAt = time.Now().UTC()
	}
	res, err := r.db.ExecContext(
		ctx,
		`INSERT INTO mentions(comment_id, mentioned_user_id, mentioned_username, position, created_at)
		VALUES(?, ?, ?, ?, ?)`,
		mention.CommentID,
		mention.MentionedUserID.String(),
		mention.MentionedUsername,
		mention.Position,
		mention.CreatedAt.UnixNano(),
	)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	mention.ID = id

	return &mention, nil
}

func (r *mentionRepo) FindPostMentions(ctx context.Context, postID int64) ([]*model.Mention, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT
		m.id, m.comment_id, m.mentioned_user_id, m.mentioned_username, m.position, m.created_at
		FROM mentions m
		JOIN comments c ON m.comment_id = c.id
		WHERE c.post_id = ?
		ORDER BY m.comment_id, m.position`,
		postID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mentions []*model.Mention
	for rows.Next() {
		var (
			mention   model.Mention
			createdAt int64
		)
		if err := rows.Scan(
			&mention.ID,
			&mention.CommentID,
			&mention.MentionedUserID,
			&mention.MentionedUsername,
			&mention.Position,
			&createdAt,
		); err != nil {
			return nil, err
		}
		mention.CreatedAt = fromUnixNano(createdAt)

		mentions = append(mentions, &mention)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return mentions, nil
}

func (r *mentionRepo) CountByPost(ctx context.Context, postID int64) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(
		ctx,
		"SELECT COUNT(*) FROM mentions m JOIN comments c ON m.comment_id = c.id WHERE c.post_id = ?",
		postID,
	).Scan(&count)
	return count, err
}

func (r *mentionRepo) DeleteByPost(ctx context.Context, postID int64) (int64, error) {
	res, err := r.db.ExecContext(
		ctx,
		"DELETE FROM mentions WHERE comment_id IN (SELECT id FROM comments WHERE post_id = ?)",
		postID,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
