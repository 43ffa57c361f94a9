package sqlite

import (
	"context"

	"github.com/BloggingApp/comment-service/internal/model"
	"github.com/BloggingApp/comment-service/internal/repository"
	"github.com/google/uuid"
)

type userRepo struct {
	db DBTX
}

func newUserRepo(db DBTX) repository.User {
	return &userRepo{
		db: db,
	}
}

func (r *userRepo) Create(ctx context.Context, user model.User) error {
	_, err := r.db.ExecContext(
		ctx,
		"INSERT INTO users(id, username, display_name, avatar_url) VALUES(?, ?, ?, ?) ON CONFLICT DO NOTHING",
		user.ID.String(),
		user.Username,
		user.DisplayName,
		user.AvatarURL,
	)
	return err
}

func (r *userRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.QueryRowContext(
		ctx,
		"SELECT u.id, u.username, u.display_name, u.avatar_url FROM users u WHERE u.id = ?",
		id.String(),
	).Scan(
		&user.ID,
		&user.Username,
		&user.DisplayName,
		&user.AvatarURL,
	); err != nil {
		return nil, notFound(err)
	}

	return &user, nil
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.QueryRowContext(
		ctx,
		"SELECT u.id, u.username, u.display_name, u.avatar_url FROM users u WHERE u.username = ?",
		username,
	).Scan(
		&user.ID,
		&user.Username,
		&user.DisplayName,
		&user.AvatarURL,
	); err != nil {
		return nil, notFound(err)
	}

	return &user, nil
}

func (r *userRepo) FindAll(ctx context.Context) ([]*model.User, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT u.id, u.username, u.display_name, u.avatar_url FROM users u ORDER BY u.username")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		var user model.User
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.DisplayName,
			&user.AvatarURL,
		); err != nil {
			return nil, err
		}

		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
