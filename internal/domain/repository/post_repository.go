package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devlinkhq/devlink-backend/internal/domain/entity"
)

// PostRepository defines the persistence port for the Post aggregate.
//
// Like and comment edits are atomic single-document updates at the store,
// not whole-aggregate writes: AddLike is guarded so a user who already
// liked the post gets entity.ErrAlreadyLiked, and RemoveLike reports
// entity.ErrNotLiked when there is nothing to remove. Two concurrent
// likes by different users therefore both land.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Post, error)
	List(ctx context.Context) ([]entity.Post, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByAuthor(ctx context.Context, userID primitive.ObjectID) error

	AddLike(ctx context.Context, postID primitive.ObjectID, like entity.Like) error
	RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) error
	AddComment(ctx context.Context, postID primitive.ObjectID, c entity.Comment) error
	RemoveComment(ctx context.Context, postID primitive.ObjectID, commentID string) error
}
