package sqlite

import "context"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		display_name TEXT NOT NULL DEFAULT '',
		avatar_url TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE TABLE IF NOT EXISTS posts (
		id INTEGER PRIMARY KEY,
		author_id TEXT NOT NULL REFERENCES users(id),
		title TEXT NOT NULL,
		content TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS comments (
		id INTEGER PRIMARY KEY,
		post_id INTEGER NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
		author_id TEXT NOT NULL REFERENCES users(id),
		content TEXT NOT NULL,
		root_comment_id INTEGER,
		parent_comment_id INTEGER,
		created_at INTEGER NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS mentions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		comment_id INTEGER NOT NULL REFERENCES comments(id) ON DELETE CASCADE,
		mentioned_user_id TEXT NOT NULL REFERENCES users(id),
		mentioned_username TEXT NOT NULL,
		position INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS friends (
		user_id TEXT NOT NULL REFERENCES users(id),
		friend_id TEXT NOT NULL REFERENCES users(id),
		PRIMARY KEY (user_id, friend_id)
	);`,
}

func (s *Store) initSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
