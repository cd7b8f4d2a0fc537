package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrAlreadyLiked    = errors.New("post already liked")
	ErrNotLiked        = errors.New("post not liked yet")
	ErrCommentNotFound = errors.New("comment not found")
)

// Like marks one user's like on a post. At most one entry per user.
type Like struct {
	User primitive.ObjectID `bson:"user" json:"user"`
}

// Comment is immutable once created; the only edits a post supports are
// whole-comment insertion and removal by id.
type Comment struct {
	ID        string             `bson:"id" json:"id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Text      string             `bson:"text" json:"text"`
	Name      string             `bson:"name" json:"name"`
	Avatar    string             `bson:"avatar" json:"avatar"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// Post is an aggregate root. Name and Avatar are snapshots of the author
// taken at creation time. Likes and Comments are prepend-ordered.
type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Text      string             `bson:"text" json:"text"`
	Name      string             `bson:"name" json:"name"`
	Avatar    string             `bson:"avatar" json:"avatar"`
	Likes     []Like             `bson:"likes" json:"likes"`
	Comments  []Comment          `bson:"comments" json:"comments"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

func NewPost(author *User, text string) *Post {
	return &Post{
		User:      author.ID,
		Text:      text,
		Name:      author.Name,
		Avatar:    author.Avatar,
		Likes:     []Like{},
		Comments:  []Comment{},
		CreatedAt: time.Now().UTC(),
	}
}

// LikedBy reports whether the given user already has a like entry.
func (p *Post) LikedBy(userID primitive.ObjectID) bool {
	_, ok := FindWhere(p.Likes, func(l Like) bool { return l.User == userID })
	return ok
}

// AddLike prepends a like for the user; a second like by the same user is
// rejected, keeping the operation idempotency-guarded.
func (p *Post) AddLike(userID primitive.ObjectID) error {
	if p.LikedBy(userID) {
		return ErrAlreadyLiked
	}
	p.Likes = InsertFront(p.Likes, Like{User: userID})
	return nil
}

// RemoveLike removes the user's like entry, failing if none exists.
func (p *Post) RemoveLike(userID primitive.ObjectID) error {
	likes, removed := RemoveWhere(p.Likes, func(l Like) bool { return l.User == userID })
	if !removed {
		return ErrNotLiked
	}
	p.Likes = likes
	return nil
}

// NewComment builds a comment with a fresh id and an author snapshot.
func NewComment(author *User, text string) Comment {
	return Comment{
		ID:        uuid.NewString(),
		User:      author.ID,
		Text:      text,
		Name:      author.Name,
		Avatar:    author.Avatar,
		CreatedAt: time.Now().UTC(),
	}
}

// AddComment prepends the comment so the list stays most-recent-first.
func (p *Post) AddComment(c Comment) {
	p.Comments = InsertFront(p.Comments, c)
}

// FindComment returns the comment with the given id.
func (p *Post) FindComment(commentID string) (Comment, bool) {
	return FindWhere(p.Comments, func(c Comment) bool { return c.ID == commentID })
}

// RemoveComment removes the comment with the given id.
func (p *Post) RemoveComment(commentID string) error {
	comments, removed := RemoveWhere(p.Comments, func(c Comment) bool { return c.ID == commentID })
	if !removed {
		return ErrCommentNotFound
	}
	p.Comments = comments
	return nil
}
