package model

import "github.com/google/uuid"

type User struct {
	ID          uuid.UUID `json:"id" yaml:"id"`
	Username    string    `json:"username" yaml:"username"`
	DisplayName string    `json:"display_name" yaml:"display_name"`
	AvatarURL   string    `json:"avatar_url" yaml:"avatar_url"`
}

type UserAuthor struct {
	Username    string  `json:"username"`
	DisplayName *string `json:"display_name"`
	AvatarURL   *string `json:"avatar_url"`
}

// Friendship is a directed edge: FriendID is in UserID's friend list.
type Friendship struct {
	UserID   uuid.UUID `json:"user_id" yaml:"user_id"`
	FriendID uuid.UUID `json:"friend_id" yaml:"friend_id"`
}
