package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/BloggingApp/comment-service/internal/model"
	"github.com/BloggingApp/comment-service/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "social.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func ptr(v int64) *int64 { return &v }

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(context.Background(), "  ")
	assert.Error(t, err)
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	repos := openTestStore(t).Repos()

	jane := model.User{ID: uuid.New(), Username: "jane.smith", DisplayName: "Jane Smith"}
	require.NoError(t, repos.User.Create(ctx, jane))
	// Insert-if-absent.
	require.NoError(t, repos.User.Create(ctx, jane))

	got, err := repos.User.FindByUsername(ctx, "jane.smith")
	require.NoError(t, err)
	assert.Equal(t, jane, *got)

	got, err = repos.User.FindByID(ctx, jane.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", got.DisplayName)

	_, err = repos.User.FindByUsername(ctx, "Jane.Smith")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	all, err := repos.User.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCommentsAndMentions(t *testing.T) {
	ctx := context.Background()
	repos := openTestStore(t).Repos()

	author := model.User{ID: uuid.New(), Username: "admin"}
	friend := model.User{ID: uuid.New(), Username: "mai.tien.dung"}
	require.NoError(t, repos.User.Create(ctx, author))
	require.NoError(t, repos.User.Create(ctx, friend))
	require.NoError(t, repos.Post.Create(ctx, model.Post{ID: 1, AuthorID: author.ID, Title: "hello"}))
	require.NoError(t, repos.Friend.Create(ctx, model.Friendship{UserID: author.ID, FriendID: friend.ID}))

	created := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	_, err := repos.Comment.Create(ctx, model.Comment{ID: 10, PostID: 1, AuthorID: author.ID, Content: "root", CreatedAt: created})
	require.NoError(t, err)
	_, err = repos.Comment.Create(ctx, model.Comment{
		ID:              11,
		PostID:          1,
		AuthorID:        friend.ID,
		Content:         "@admin ok",
		RootCommentID:   ptr(10),
		ParentCommentID: ptr(10),
		CreatedAt:       created.Add(time.Minute),
	})
	require.NoError(t, err)

	m, err := repos.Mention.Create(ctx, model.Mention{CommentID: 11, MentionedUserID: author.ID, MentionedUsername: "admin", Position: 0})
	require.NoError(t, err)
	assert.NotZero(t, m.ID)

	comments, err := repos.Comment.FindPostComments(ctx, 1)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Nil(t, comments[0].Comment.RootCommentID)
	assert.Equal(t, created, comments[0].Comment.CreatedAt)
	require.NotNil(t, comments[1].Comment.ParentCommentID)
	assert.Equal(t, int64(10), *comments[1].Comment.ParentCommentID)
	assert.Equal(t, "mai.tien.dung", comments[1].Author.Username)

	mentions, err := repos.Mention.FindPostMentions(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mentions, 1)
	assert.Equal(t, author.ID, mentions[0].MentionedUserID)

	edges, err := repos.Friend.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Friendship{{UserID: author.ID, FriendID: friend.ID}}, edges)

	n, err := repos.Mention.DeleteByPost(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, err = repos.Comment.DeleteByPost(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	count, err := repos.Comment.CountByPost(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestInTxRollsBack(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	boom := errors.New("boom")
	err := s.InTx(ctx, func(repos *repository.Repos) error {
		require.NoError(t, repos.User.Create(ctx, model.User{ID: uuid.New(), Username: "ghost"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = s.Repos().User.FindByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestForeignKeysAreEnforced(t *testing.T) {
	ctx := context.Background()
	repos := openTestStore(t).Repos()

	_, err := repos.Comment.Create(ctx, model.Comment{ID: 1, PostID: 404, AuthorID: uuid.New(), Content: "x"})
	assert.Error(t, err)
}
