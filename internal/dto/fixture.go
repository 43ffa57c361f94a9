package dto

import "time"

// CommentFixture is one comment to be seeded. Author is a username handle,
// resolved against the users table at seed time.
type CommentFixture struct {
	ID              int64     `json:"id" yaml:"id"`
	PostID          int64     `json:"post_id" yaml:"post_id"`
	RootCommentID   *int64    `json:"root_comment_id,omitempty" yaml:"root_comment_id,omitempty"`
	ParentCommentID *int64    `json:"parent_comment_id,omitempty" yaml:"parent_comment_id,omitempty"`
	Author          string    `json:"author" yaml:"author"`
	Content         string    `json:"content" yaml:"content"`
	CreatedAt       time.Time `json:"created_at" yaml:"created_at"`
}

type UserFixture struct {
	Username    string `json:"username" yaml:"username"`
	DisplayName string `json:"display_name" yaml:"display_name"`
	AvatarURL   string `json:"avatar_url" yaml:"avatar_url"`
}

type PostFixture struct {
	ID      int64  `json:"id" yaml:"id"`
	Author  string `json:"author" yaml:"author"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// FriendFixture adds Friend to User's friend list, and the reverse edge too
// when Mutual is set.
type FriendFixture struct {
	User   string `json:"user" yaml:"user"`
	Friend string `json:"friend" yaml:"friend"`
	Mutual bool   `json:"mutual" yaml:"mutual"`
}

type FixtureSet struct {
	Users    []UserFixture    `json:"users" yaml:"users"`
	Posts    []PostFixture    `json:"posts" yaml:"posts"`
	Friends  []FriendFixture  `json:"friends" yaml:"friends"`
	Comments []CommentFixture `json:"comments" yaml:"comments"`
}
