package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BloggingApp/comment-service/internal/dto"
	"github.com/BloggingApp/comment-service/internal/friendship"
	"github.com/BloggingApp/comment-service/internal/mention"
	"github.com/BloggingApp/comment-service/internal/model"
	"github.com/BloggingApp/comment-service/internal/repository"
	"github.com/BloggingApp/comment-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type seedService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newSeedService(logger *zap.Logger, repo *repository.Repository) Seed {
	return &seedService{
		logger: logger,
		repo:   repo,
	}
}

func (s *seedService) SeedAll(ctx context.Context, fixtures []dto.CommentFixture) ([]*dto.SeedReport, error) {
	byPost := make(map[int64][]dto.CommentFixture)
	for _, f := range fixtures {
		byPost[f.PostID] = append(byPost[f.PostID], f)
	}

	postIDs := make([]int64, 0, len(byPost))
	for id := range byPost {
		postIDs = append(postIDs, id)
	}
	sort.Slice(postIDs, func(i, j int) bool { return postIDs[i] < postIDs[j] })

	reports := make([]*dto.SeedReport, 0, len(postIDs))
	for _, postID := range postIDs {
		report, err := s.SeedPost(ctx, postID, byPost[postID])
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}

	return reports, nil
}

func (s *seedService) SeedPost(ctx context.Context, postID int64, fixtures []dto.CommentFixture) (*dto.SeedReport, error) {
	own := make([]dto.CommentFixture, 0, len(fixtures))
	for _, f := range fixtures {
		if f.PostID == postID {
			own = append(own, f)
		}
	}
	own = normalizeFixtures(own)

	report := &dto.SeedReport{PostID: postID}
	err := s.repo.Store.InTx(ctx, func(repos *repository.Repos) error {
		*report = dto.SeedReport{PostID: postID}
		return s.seedPost(ctx, repos, postID, own, report)
	})
	if err != nil {
		if !errors.Is(err, ErrPostNotFound) {
			s.logger.Sugar().Errorf("failed to seed post(%d): %s", postID, err.Error())
		}
		return nil, err
	}

	if s.repo.Redis != nil {
		if err := s.repo.Redis.Default.Del(ctx, redisrepo.CommentTreeKey(postID)).Err(); err != nil {
			s.logger.Sugar().Errorf("failed to delete post(%d) comment tree from redis: %s", postID, err.Error())
		}
	}

	s.logger.Sugar().Infof(
		"seeded post(%d): comments %d removed, %d inserted, %d skipped; mentions %d removed, %d inserted, %d skipped, %d filtered",
		postID,
		report.CommentsRemoved, report.CommentsInserted, report.SkippedFixtures,
		report.MentionsRemoved, report.MentionsInserted, report.SkippedMentions, report.FilteredMentions,
	)

	return report, nil
}

func (s *seedService) seedPost(ctx context.Context, repos *repository.Repos, postID int64, fixtures []dto.CommentFixture, report *dto.SeedReport) error {
	if _, err := repos.Post.FindByID(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: %d", ErrPostNotFound, postID)
		}
		return fmt.Errorf("failed to find post: %w", err)
	}

	users, err := repos.User.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	byUsername := make(map[string]*model.User, len(users))
	for _, u := range users {
		byUsername[u.Username] = u
	}

	edges, err := repos.Friend.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load friends: %w", err)
	}
	gate := friendship.NewGate(edges)

	// Mentions reference comments, so they go first.
	if report.MentionsRemoved, err = repos.Mention.DeleteByPost(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete mentions: %w", err)
	}
	if report.CommentsRemoved, err = repos.Comment.DeleteByPost(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete comments: %w", err)
	}

	for _, f := range fixtures {
		author, ok := byUsername[f.Author]
		if !ok {
			s.logger.Sugar().Warnf("skipping comment(%d) on post(%d): unknown author %q", f.ID, postID, f.Author)
			report.SkippedFixtures++
			continue
		}

		comment, err := repos.Comment.Create(ctx, model.Comment{
			ID:              f.ID,
			PostID:          postID,
			AuthorID:        author.ID,
			Content:         f.Content,
			RootCommentID:   f.RootCommentID,
			ParentCommentID: f.ParentCommentID,
			CreatedAt:       f.CreatedAt,
		})
		if err != nil {
			return fmt.Errorf("failed to create comment(%d): %w", f.ID, err)
		}
		report.CommentsInserted++

		for _, occ := range mention.Extract(comment.Content) {
			mentioned, ok := byUsername[occ.Username]
			if !ok {
				s.logger.Sugar().Debugf("skipping mention @%s in comment(%d): unknown user", occ.Username, comment.ID)
				report.SkippedMentions++
				continue
			}
			if !gate.IsAllowed(author.ID, mentioned.ID) {
				s.logger.Sugar().Debugf("dropping mention @%s in comment(%d): not among %s's %d friends", occ.Username, comment.ID, author.Username, gate.Friends(author.ID))
				report.FilteredMentions++
				continue
			}

			if _, err := repos.Mention.Create(ctx, model.Mention{
				CommentID:         comment.ID,
				MentionedUserID:   mentioned.ID,
				MentionedUsername: occ.Username,
				Position:          occ.Offset,
				CreatedAt:         comment.CreatedAt,
			}); err != nil {
				return fmt.Errorf("failed to create mention @%s in comment(%d): %w", occ.Username, comment.ID, err)
			}
			report.MentionsInserted++
		}
	}

	return nil
}

// normalizeFixtures fills in missing roots of replies and orders fixtures by
// (created_at, id). A reply without a root takes its parent's root when the
// parent is in the set, otherwise the parent id itself.
func normalizeFixtures(fixtures []dto.CommentFixture) []dto.CommentFixture {
	out := make([]dto.CommentFixture, len(fixtures))
	copy(out, fixtures)

	byID := make(map[int64]int, len(out))
	for i, f := range out {
		if _, ok := byID[f.ID]; !ok {
			byID[f.ID] = i
		}
	}

	resolved := make(map[int64]int64)
	rootOf := func(i int) int64 {
		seen := map[int]struct{}{}
		var chain []int64
		cur := i
		var root int64
		for {
			f := out[cur]
			if r, ok := resolved[f.ID]; ok {
				root = r
				break
			}
			chain = append(chain, f.ID)
			seen[cur] = struct{}{}

			if f.RootCommentID != nil {
				root = *f.RootCommentID
				break
			}
			if f.ParentCommentID == nil {
				root = f.ID
				break
			}
			parent, ok := byID[*f.ParentCommentID]
			if _, loop := seen[parent]; !ok || loop {
				root = *f.ParentCommentID
				break
			}
			cur = parent
		}
		for _, id := range chain {
			resolved[id] = root
		}
		return root
	}

	for i := range out {
		if out[i].ParentCommentID != nil && out[i].RootCommentID == nil {
			root := rootOf(i)
			out[i].RootCommentID = &root
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out
}

func (s *seedService) Bootstrap(ctx context.Context, set *dto.FixtureSet) (*dto.BootstrapReport, error) {
	report := &dto.BootstrapReport{}
	err := s.repo.Store.InTx(ctx, func(repos *repository.Repos) error {
		*report = dto.BootstrapReport{}

		for _, u := range set.Users {
			username := strings.TrimSpace(u.Username)
			if username == "" {
				report.SkippedEntries++
				continue
			}
			if err := repos.User.Create(ctx, model.User{
				ID:          UserID(username),
				Username:    username,
				DisplayName: u.DisplayName,
				AvatarURL:   u.AvatarURL,
			}); err != nil {
				return fmt.Errorf("failed to create user %q: %w", username, err)
			}
			report.Users++
		}

		users, err := repos.User.FindAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to load users: %w", err)
		}
		byUsername := make(map[string]uuid.UUID, len(users))
		for _, u := range users {
			byUsername[u.Username] = u.ID
		}

		for _, p := range set.Posts {
			authorID, ok := byUsername[p.Author]
			if !ok {
				s.logger.Sugar().Warnf("skipping post(%d): unknown author %q", p.ID, p.Author)
				report.SkippedEntries++
				continue
			}
			if err := repos.Post.Create(ctx, model.Post{
				ID:       p.ID,
				AuthorID: authorID,
				Title:    p.Title,
				Content:  p.Content,
			}); err != nil {
				return fmt.Errorf("failed to create post(%d): %w", p.ID, err)
			}
			report.Posts++
		}

		for _, f := range set.Friends {
			userID, ok0 := byUsername[f.User]
			friendID, ok1 := byUsername[f.Friend]
			if !ok0 || !ok1 || userID == friendID {
				s.logger.Sugar().Warnf("skipping friendship %q -> %q", f.User, f.Friend)
				report.SkippedEntries++
				continue
			}

			edges := []model.Friendship{{UserID: userID, FriendID: friendID}}
			if f.Mutual {
				edges = append(edges, model.Friendship{UserID: friendID, FriendID: userID})
			}
			for _, e := range edges {
				if err := repos.Friend.Create(ctx, e); err != nil {
					return fmt.Errorf("failed to create friendship %q -> %q: %w", f.User, f.Friend, err)
				}
				report.Friendships++
			}
		}

		return nil
	})
	if err != nil {
		s.logger.Sugar().Errorf("failed to bootstrap fixtures: %s", err.Error())
		return nil, err
	}

	return report, nil
}

var userNamespace = uuid.MustParse("6f1c1e3a-5d2b-4c8e-9a47-0b3e6d9f2a10")

// UserID derives a stable id from a username, so bootstrapping the same
// fixtures on two machines yields the same user ids.
func UserID(username string) uuid.UUID {
	return uuid.NewSHA1(userNamespace, []byte(username))
}
