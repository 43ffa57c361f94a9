// Package friendship decides which mentions are allowed to be persisted.
package friendship

import (
	"github.com/BloggingApp/comment-service/internal/model"
	"github.com/google/uuid"
)

// Gate is a read-only adjacency set of directed friendship edges.
// Build it once per run and share it across every mention check.
type Gate struct {
	adjacency map[uuid.UUID]map[uuid.UUID]struct{}
}

func NewGate(edges []model.Friendship) *Gate {
	adjacency := make(map[uuid.UUID]map[uuid.UUID]struct{})
	for _, e := range edges {
		friends, ok := adjacency[e.UserID]
		if !ok {
			friends = make(map[uuid.UUID]struct{})
			adjacency[e.UserID] = friends
		}
		friends[e.FriendID] = struct{}{}
	}

	return &Gate{
		adjacency: adjacency,
	}
}

// IsAllowed reports whether mentionedUserID is in authorID's friend list.
func (g *Gate) IsAllowed(authorID, mentionedUserID uuid.UUID) bool {
	friends, ok := g.adjacency[authorID]
	if !ok {
		return false
	}
	_, ok = friends[mentionedUserID]
	return ok
}

func (g *Gate) Friends(userID uuid.UUID) int {
	return len(g.adjacency[userID])
}
