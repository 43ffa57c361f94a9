package postgres

import (
	"context"

	"github.com/BloggingApp/comment-service/internal/model"
	"github.com/BloggingApp/comment-service/internal/repository"
)

type friendRepo struct {
	db DBTX
}

func newFriendRepo(db DBTX) repository.Friend {
	return &friendRepo{
		db: db,
	}
}

func (r *friendRepo) Create(ctx context.Context, friendship model.Friendship) error {
	_, err := r.db.Exec(
		ctx,
		"INSERT INTO friends(user_id, friend_id) VALUES($1, $2) ON CONFLICT DO NOTHING",
		friendship.UserID,
		friendship.FriendID,
	)
	return err
}

func (r *friendRepo) FindAll(ctx context.Context) ([]model.Friendship, error) {
	rows, err := r.db.Query(ctx, "SELECT f.user_id, f.friend_id FROM friends f")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var edges []model.Friendship
	for rows.Next() {
		var edge model.Friendship
		if err := rows.Scan(&edge.UserID, &edge.FriendID); err != nil {
			return nil, err
		}

		edges = append(edges, edge)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return edges, nil
}
