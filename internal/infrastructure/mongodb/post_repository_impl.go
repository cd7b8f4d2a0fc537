package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devlinkhq/devlink-backend/internal/domain/entity"
	"github.com/devlinkhq/devlink-backend/internal/domain/repository"
)

const collectionPosts = "posts"

type PostRepository struct {
	collection *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{collection: db.Collection(collectionPosts)}
}

func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	return err
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	res, err := r.collection.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Post, error) {
	p := &entity.Post{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostRepository) List(ctx context.Context) ([]entity.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	posts := []entity.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) DeleteByAuthor(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"user": userID})
	return err
}

// AddLike prepends the like atomically. The filter excludes posts the
// user already liked, so a duplicate like modifies nothing and maps to
// ErrAlreadyLiked without a read-modify-write cycle.
func (r *PostRepository) AddLike(ctx context.Context, postID primitive.ObjectID, like entity.Like) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": postID, "likes.user": bson.M{"$ne": like.User}},
		bson.M{"$push": bson.M{"likes": bson.M{"$each": bson.A{like}, "$position": 0}}},
	)
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		if exists, eErr := r.exists(ctx, postID); eErr != nil {
			return eErr
		} else if exists {
			return entity.ErrAlreadyLiked
		}
		return repository.ErrNotFound
	}
	return nil
}

// RemoveLike pulls the user's like atomically; nothing pulled means the
// user had not liked the post.
func (r *PostRepository) RemoveLike(ctx context.Context, postID, userID primitive.ObjectID) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$pull": bson.M{"likes": bson.M{"user": userID}}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	if res.ModifiedCount == 0 {
		return entity.ErrNotLiked
	}
	return nil
}

func (r *PostRepository) AddComment(ctx context.Context, postID primitive.ObjectID, c entity.Comment) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$push": bson.M{"comments": bson.M{"$each": bson.A{c}, "$position": 0}}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PostRepository) RemoveComment(ctx context.Context, postID primitive.ObjectID, commentID string) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": postID},
		bson.M{"$pull": bson.M{"comments": bson.M{"id": commentID}}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	if res.ModifiedCount == 0 {
		return entity.ErrCommentNotFound
	}
	return nil
}

func (r *PostRepository) exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	return n > 0, err
}

var _ repository.PostRepository = (*PostRepository)(nil)
