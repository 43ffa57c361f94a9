package postgres

import "context"

// root_comment_id and parent_comment_id carry no foreign keys: ad-hoc
// deletes may leave dangling references, which tree assembly tolerates.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username VARCHAR(64) NOT NULL UNIQUE,
		display_name TEXT NOT NULL DEFAULT '',
		avatar_url TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS posts (
		id BIGSERIAL PRIMARY KEY,
		author_id UUID NOT NULL REFERENCES users(id),
		title TEXT NOT NULL,
		content TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS comments (
		id BIGSERIAL PRIMARY KEY,
		post_id BIGINT NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
		author_id UUID NOT NULL REFERENCES users(id),
		content TEXT NOT NULL,
		root_comment_id BIGINT,
		parent_comment_id BIGINT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS mentions (
		id BIGSERIAL PRIMARY KEY,
		comment_id BIGINT NOT NULL REFERENCES comments(id) ON DELETE CASCADE,
		mentioned_user_id UUID NOT NULL REFERENCES users(id),
		mentioned_username TEXT NOT NULL,
		position INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS friends (
		user_id UUID NOT NULL REFERENCES users(id),
		friend_id UUID NOT NULL REFERENCES users(id),
		PRIMARY KEY (user_id, friend_id)
	)`,
}

func (s *Store) initSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
