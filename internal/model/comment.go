package model

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID              int64     `json:"id"`
	PostID          int64     `json:"post_id"`
	AuthorID        uuid.UUID `json:"author_id"`
	Content         string    `json:"content"`
	RootCommentID   *int64    `json:"root_comment_id"`
	ParentCommentID *int64    `json:"parent_comment_id"`
	CreatedAt       time.Time `json:"created_at"`
}

type FullComment struct {
	Comment Comment    `json:"comment"`
	Author  UserAuthor `json:"author"`
}

// CommentNode is a comment with its nested replies, ordered by (created_at, id).
type CommentNode struct {
	Comment  Comment        `json:"comment"`
	Author   *UserAuthor    `json:"author,omitempty"`
	Mentions []Mention      `json:"mentions,omitempty"`
	Orphan   bool           `json:"orphan,omitempty"`
	Replies  []*CommentNode `json:"replies"`
}
