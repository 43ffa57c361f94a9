// Package commenttree assembles flat comment rows into nested reply threads.
//
// Rows are grouped by their root comment and then linked to their parents
// inside the group. Everything is done over an arena indexed by comment id,
// so thread depth never grows the call stack.
package commenttree

import (
	"sort"

	"github.com/BloggingApp/comment-service/internal/model"
)

type node = model.CommentNode

// Build returns the top-level comments, each carrying its replies. Siblings
// are ordered by (created_at, id) regardless of input order. The input slice
// is not modified.
//
// A reply whose parent is missing, sits in another thread, or closes a parent
// cycle is attached directly under its root and flagged as an orphan. A reply
// whose root is missing is promoted to the top level, also flagged.
func Build(comments []model.Comment) []*model.CommentNode {
	nodes := make([]*node, len(comments))
	for i := range comments {
		nodes[i] = &node{
			Comment: comments[i],
			Replies: []*node{},
		}
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		return less(nodes[i].Comment, nodes[j].Comment)
	})

	byID := make(map[int64]*node, len(nodes))
	for _, n := range nodes {
		if _, ok := byID[n.Comment.ID]; !ok {
			byID[n.Comment.ID] = n
		}
	}

	roots := []*node{}
	groups := make(map[int64][]*node)
	anchors := newResolver(byID)
	for _, n := range nodes {
		if isAnchor(n.Comment) {
			roots = append(roots, n)
			continue
		}

		rootID, ok := anchors.groupOf(n)
		if !ok {
			n.Orphan = true
			roots = append(roots, n)
			continue
		}
		groups[rootID] = append(groups[rootID], n)
	}

	for rootID, members := range groups {
		link(byID[rootID], members)
	}

	return roots
}

// link attaches members (sorted) to their parents below root.
func link(root *node, members []*node) {
	inGroup := make(map[int64]*node, len(members)+1)
	inGroup[root.Comment.ID] = root
	for _, m := range members {
		if _, ok := inGroup[m.Comment.ID]; !ok {
			inGroup[m.Comment.ID] = m
		}
	}

	parentOf := make(map[*node]*node, len(members))
	for _, m := range members {
		parent := root
		if pid := m.Comment.ParentCommentID; pid != nil {
			if p, ok := inGroup[*pid]; ok && p != m {
				parent = p
			} else {
				m.Orphan = true
			}
		}
		parentOf[m] = parent
	}

	breakCycles(root, members, parentOf)

	for _, m := range members {
		p := parentOf[m]
		p.Replies = append(p.Replies, m)
	}
}

// breakCycles reattaches the earliest member of every parent cycle under root.
// Each member is walked once.
func breakCycles(root *node, members []*node, parentOf map[*node]*node) {
	const (
		unvisited = iota
		onPath
		done
	)

	order := make(map[*node]int, len(members))
	for i, m := range members {
		order[m] = i
	}

	state := make(map[*node]int, len(members))
	for _, m := range members {
		var path []*node
		cur := m
		for cur != root && state[cur] == unvisited {
			state[cur] = onPath
			path = append(path, cur)
			cur = parentOf[cur]
		}

		if cur != root && state[cur] == onPath {
			start := 0
			for path[start] != cur {
				start++
			}
			first := path[start]
			for _, c := range path[start+1:] {
				if order[c] < order[first] {
					first = c
				}
			}
			parentOf[first] = root
			first.Orphan = true
		}

		for _, p := range path {
			state[p] = done
		}
	}
}

type resolution struct {
	rootID int64
	ok     bool
}

// resolver finds the thread anchor of non-anchor comments, memoizing every
// comment it passes through.
type resolver struct {
	byID map[int64]*node
	memo map[*node]resolution
}

func newResolver(byID map[int64]*node) *resolver {
	return &resolver{
		byID: byID,
		memo: make(map[*node]resolution),
	}
}

func (r *resolver) groupOf(n *node) (int64, bool) {
	var (
		path []*node
		res  resolution
	)
	seen := make(map[*node]struct{})

	for cur := n; ; {
		if hit, ok := r.memo[cur]; ok {
			res = hit
			break
		}
		path = append(path, cur)
		seen[cur] = struct{}{}

		c := cur.Comment
		if c.RootCommentID != nil {
			if a, ok := r.byID[*c.RootCommentID]; ok && isAnchor(a.Comment) {
				res = resolution{a.Comment.ID, true}
			}
			break
		}

		// No root recorded: follow the parent chain until an anchor shows up.
		p, ok := r.byID[*c.ParentCommentID]
		if !ok {
			break
		}
		if isAnchor(p.Comment) {
			res = resolution{p.Comment.ID, true}
			break
		}
		if _, loop := seen[p]; loop {
			break
		}
		cur = p
	}

	for _, p := range path {
		r.memo[p] = res
	}
	return res.rootID, res.ok
}

func isAnchor(c model.Comment) bool {
	if c.RootCommentID != nil {
		return *c.RootCommentID == c.ID
	}
	return c.ParentCommentID == nil
}

func less(a, b model.Comment) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}

// Walk visits every node in pre-order. fn receives the node depth, 0 for roots.
// Returning false from fn skips that node's replies.
func Walk(roots []*model.CommentNode, fn func(n *model.CommentNode, depth int) bool) {
	type frame struct {
		n     *node
		depth int
	}

	stack := make([]frame, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{roots[i], 0})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(f.n, f.depth) {
			continue
		}
		for i := len(f.n.Replies) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.n.Replies[i], f.depth + 1})
		}
	}
}

// Count returns the number of nodes in the forest.
func Count(roots []*model.CommentNode) int {
	total := 0
	Walk(roots, func(*model.CommentNode, int) bool {
		total++
		return true
	})
	return total
}
