package fixture

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	set, err := Default()
	require.NoError(t, err)

	assert.Len(t, set.Users, 5)
	assert.Len(t, set.Posts, 2)
	assert.NotEmpty(t, set.Friends)
	require.Len(t, set.Comments, 11)

	root := set.Comments[0]
	assert.Nil(t, root.RootCommentID)
	assert.Nil(t, root.ParentCommentID)
	assert.Equal(t, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), root.CreatedAt.UTC())

	reply := set.Comments[1]
	require.NotNil(t, reply.RootCommentID)
	require.NotNil(t, reply.ParentCommentID)
	assert.Equal(t, int64(1), *reply.RootCommentID)
	assert.Equal(t, "@mai.tien.dung cảm ơn bạn đã góp ý!", reply.Content)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
comments:
  - id: 7
    post_id: 3
    parent_comment_id: 6
    author: bob
    content: hi @alice
    created_at: 2024-01-01T00:00:00Z
`), 0o644))

	set, err := Load(path)
	require.NoError(t, err)
	require.Len(t, set.Comments, 1)
	assert.Nil(t, set.Comments[0].RootCommentID)
	assert.Equal(t, int64(6), *set.Comments[0].ParentCommentID)
	assert.Empty(t, set.Users)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("comments: [oops"), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "failed to parse fixtures")
}
