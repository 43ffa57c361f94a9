package dto

import "github.com/BloggingApp/comment-service/internal/model"

type GetPostComments struct {
	PostID   int64                `json:"post_id"`
	Total    int                  `json:"total"`
	Comments []*model.CommentNode `json:"comments"`
}
