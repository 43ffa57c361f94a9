package model

import (
	"time"

	"github.com/google/uuid"
)

type Mention struct {
	ID                int64     `json:"id"`
	CommentID         int64     `json:"comment_id"`
	MentionedUserID   uuid.UUID `json:"mentioned_user_id"`
	MentionedUsername string    `json:"mentioned_username"`
	Position          int       `json:"position"`
	CreatedAt         time.Time `json:"created_at"`
}
