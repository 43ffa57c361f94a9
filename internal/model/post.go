package model

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID        int64     `json:"id" yaml:"id"`
	AuthorID  uuid.UUID `json:"author_id" yaml:"author_id"`
	Title     string    `json:"title" yaml:"title"`
	Content   string    `json:"content" yaml:"content"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
