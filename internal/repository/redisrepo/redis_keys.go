package redisrepo

import "fmt"

const (
	COMMENT_TREE_KEY = "post:%d:comment-tree" // <postID>
	USER_KEY         = "user:%s"              // <username>
)

func CommentTreeKey(postID int64) string {
	return fmt.Sprintf(COMMENT_TREE_KEY, postID)
}

func UserKey(username string) string {
	return fmt.Sprintf(USER_KEY, username)
}
