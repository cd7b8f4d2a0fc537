// Package policy holds the ownership predicates applied before any
// destructive mutation of an aggregate or sub-item. Every handler path
// goes through these instead of comparing ids inline.
package policy

import (
	"github.com/devlinkhq/devlink-backend/internal/domain/entity"
)

// OwnsPost reports whether the principal authored the post.
func OwnsPost(principalID string, p *entity.Post) bool {
	return p != nil && p.User.Hex() == principalID
}

// OwnsComment reports whether the principal authored the comment.
func OwnsComment(principalID string, c entity.Comment) bool {
	return c.User.Hex() == principalID
}
