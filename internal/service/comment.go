package service

import (
	"context"
	"errors"

	"github.com/BloggingApp/comment-service/internal/commenttree"
	"github.com/BloggingApp/comment-service/internal/dto"
	"github.com/BloggingApp/comment-service/internal/model"
	"github.com/BloggingApp/comment-service/internal/repository"
	"github.com/BloggingApp/comment-service/internal/repository/redisrepo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type commentService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newCommentService(logger *zap.Logger, repo *repository.Repository) Comment {
	return &commentService{
		logger: logger,
		repo:   repo,
	}
}

func (s *commentService) FindPostTree(ctx context.Context, postID int64) (*dto.GetPostComments, error) {
	if s.repo.Redis != nil {
		cachedTree, err := redisrepo.Get[dto.GetPostComments](s.repo.Redis.Default, ctx, redisrepo.CommentTreeKey(postID))
		if err == nil && cachedTree != nil {
			return cachedTree, nil
		}
		if err != nil && err != redis.Nil {
			s.logger.Sugar().Errorf("failed to get post(%d) comment tree from redis: %s", postID, err.Error())
		}
	}

	repos := s.repo.Store.Repos()

	if _, err := repos.Post.FindByID(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}

		s.logger.Sugar().Errorf("failed to find post(%d) from store: %s", postID, err.Error())
		return nil, ErrInternal
	}

	comments, err := repos.Comment.FindPostComments(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find post(%d) comments from store: %s", postID, err.Error())
		return nil, ErrInternal
	}

	mentions, err := repos.Mention.FindPostMentions(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find post(%d) mentions from store: %s", postID, err.Error())
		return nil, ErrInternal
	}

	tree := assembleTree(comments, mentions)
	result := &dto.GetPostComments{
		PostID:   postID,
		Total:    commenttree.Count(tree),
		Comments: tree,
	}

	if s.repo.Redis != nil {
		if err := s.repo.Redis.Default.SetJSON(ctx, redisrepo.CommentTreeKey(postID), result, cacheTTL()); err != nil {
			s.logger.Sugar().Errorf("failed to set post(%d) comment tree in redis: %s", postID, err.Error())
		}
	}

	return result, nil
}

// assembleTree builds the reply forest and decorates every node with its
// author and the mentions stored for it.
func assembleTree(comments []*model.FullComment, mentions []*model.Mention) []*model.CommentNode {
	rows := make([]model.Comment, 0, len(comments))
	authors := make(map[int64]model.UserAuthor, len(comments))
	for _, c := range comments {
		rows = append(rows, c.Comment)
		authors[c.Comment.ID] = c.Author
	}

	byComment := make(map[int64][]model.Mention)
	for _, m := range mentions {
		byComment[m.CommentID] = append(byComment[m.CommentID], *m)
	}

	tree := commenttree.Build(rows)
	commenttree.Walk(tree, func(n *model.CommentNode, _ int) bool {
		if author, ok := authors[n.Comment.ID]; ok {
			n.Author = &author
		}
		n.Mentions = byComment[n.Comment.ID]
		return true
	})

	return tree
}
