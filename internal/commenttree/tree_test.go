package commenttree

import (
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/BloggingApp/comment-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func id(v int64) *int64 { return &v }

func comment(cid int64, root, parent *int64, minute int) model.Comment {
	return model.Comment{
		ID:              cid,
		PostID:          1,
		Content:         "c",
		RootCommentID:   root,
		ParentCommentID: parent,
		CreatedAt:       base.Add(time.Duration(minute) * time.Minute),
	}
}

// shape renders the forest as "id(child,child)" for compact assertions.
func shape(roots []*model.CommentNode) []string {
	var out []string
	for _, r := range roots {
		out = append(out, render(r))
	}
	return out
}

func render(n *model.CommentNode) string {
	s := strconv.FormatInt(n.Comment.ID, 10)
	if len(n.Replies) == 0 {
		return s
	}
	s += "("
	for i, c := range n.Replies {
		if i > 0 {
			s += ","
		}
		s += render(c)
	}
	return s + ")"
}

func thread() []model.Comment {
	return []model.Comment{
		comment(1, nil, nil, 0),
		comment(2, id(1), id(1), 1),
		comment(3, id(1), id(2), 2),
		comment(4, nil, nil, 3),
		comment(5, id(1), id(1), 4),
		comment(6, id(4), id(4), 5),
		comment(7, id(1), id(3), 6),
		comment(8, id(1), id(2), 6),
	}
}

func TestBuild(t *testing.T) {
	roots := Build(thread())

	assert.Equal(t, []string{"1(2(3(7),8),5)", "4(6)"}, shape(roots))
	assert.Equal(t, 8, Count(roots))
	Walk(roots, func(n *model.CommentNode, _ int) bool {
		assert.False(t, n.Orphan, "comment %d", n.Comment.ID)
		return true
	})
}

func TestBuildOrdersByTimeThenID(t *testing.T) {
	comments := []model.Comment{
		comment(10, nil, nil, 5),
		comment(3, nil, nil, 5),
		comment(7, nil, nil, 1),
		comment(12, id(3), id(3), 9),
		comment(11, id(3), id(3), 9),
		comment(9, id(3), id(3), 2),
	}

	roots := Build(comments)
	assert.Equal(t, []string{"7", "3(9,11,12)", "10"}, shape(roots))
}

func TestBuildIsStableUnderShuffle(t *testing.T) {
	comments := thread()
	comments = append(comments,
		comment(9, id(4), id(404), 7),
		comment(10, id(500), id(500), 8),
		comment(11, nil, id(3), 9),
	)
	want := Build(comments)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		shuffled := append([]model.Comment(nil), comments...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		require.Equal(t, want, Build(shuffled))
	}
}

func TestBuildDanglingParentAttachesUnderRoot(t *testing.T) {
	comments := []model.Comment{
		comment(1, nil, nil, 0),
		comment(2, id(1), id(1), 1),
		comment(3, id(1), id(99), 2),
	}

	roots := Build(comments)
	require.Len(t, roots, 1)
	assert.Equal(t, []string{"1(2,3)"}, shape(roots))

	orphan := roots[0].Replies[1]
	assert.Equal(t, int64(3), orphan.Comment.ID)
	assert.True(t, orphan.Orphan)
	assert.False(t, roots[0].Replies[0].Orphan)
}

func TestBuildParentInAnotherThreadIsTreatedAsMissing(t *testing.T) {
	comments := []model.Comment{
		comment(1, nil, nil, 0),
		comment(2, nil, nil, 1),
		comment(3, id(2), id(2), 2),
		comment(4, id(1), id(3), 3),
	}

	roots := Build(comments)
	assert.Equal(t, []string{"1(4)", "2(3)"}, shape(roots))
	assert.True(t, roots[0].Replies[0].Orphan)
}

func TestBuildMissingRootIsPromoted(t *testing.T) {
	comments := []model.Comment{
		comment(1, nil, nil, 0),
		comment(5, id(42), id(42), 1),
	}

	roots := Build(comments)
	assert.Equal(t, []string{"1", "5"}, shape(roots))
	assert.True(t, roots[1].Orphan)
}

func TestBuildParentWithoutRootFollowsParent(t *testing.T) {
	comments := []model.Comment{
		comment(1, nil, nil, 0),
		comment(2, nil, id(1), 1),
		comment(3, nil, id(2), 2),
		comment(4, nil, id(77), 3),
	}

	roots := Build(comments)
	assert.Equal(t, []string{"1(2(3))", "4"}, shape(roots))
	assert.True(t, roots[1].Orphan)
}

func TestBuildBreaksParentCycles(t *testing.T) {
	comments := []model.Comment{
		comment(1, nil, nil, 0),
		comment(2, id(1), id(3), 1),
		comment(3, id(1), id(2), 2),
		comment(4, id(1), id(4), 3),
	}

	roots := Build(comments)
	assert.Equal(t, []string{"1(2(3),4)"}, shape(roots))
	assert.Equal(t, 4, Count(roots))
	assert.True(t, roots[0].Replies[0].Orphan)
	assert.True(t, roots[0].Replies[1].Orphan)
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	comments := thread()
	comments[0], comments[7] = comments[7], comments[0]
	before := append([]model.Comment(nil), comments...)

	roots := Build(comments)
	require.NotEmpty(t, roots)
	assert.Equal(t, before, comments)
}

func TestBuildEmpty(t *testing.T) {
	assert.Empty(t, Build(nil))
	assert.Equal(t, 0, Count(nil))
}

func TestBuildDeepThread(t *testing.T) {
	const depth = 50000
	comments := make([]model.Comment, 0, depth)
	comments = append(comments, comment(1, nil, nil, 0))
	for i := int64(2); i <= depth; i++ {
		comments = append(comments, comment(i, id(1), id(i-1), int(i)))
	}

	roots := Build(comments)
	require.Len(t, roots, 1)

	maxDepth := 0
	Walk(roots, func(_ *model.CommentNode, d int) bool {
		if d > maxDepth {
			maxDepth = d
		}
		return true
	})
	assert.Equal(t, depth-1, maxDepth)
	assert.Equal(t, depth, Count(roots))
}

func TestWalkCanPrune(t *testing.T) {
	roots := Build(thread())

	var visited []int64
	Walk(roots, func(n *model.CommentNode, depth int) bool {
		visited = append(visited, n.Comment.ID)
		return depth < 1
	})
	assert.Equal(t, []int64{1, 2, 5, 4, 6}, visited)
}
