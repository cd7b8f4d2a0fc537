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

const collectionProfiles = "profiles"

type ProfileRepository struct {
	collection *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{collection: db.Collection(collectionProfiles)}
}

func (r *ProfileRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

func (r *ProfileRepository) GetByUser(ctx context.Context, userID primitive.ObjectID) (*entity.Profile, error) {
	p := &entity.Profile{}
	err := r.collection.FindOne(ctx, bson.M{"user": userID}).Decode(p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProfileRepository) List(ctx context.Context) ([]entity.Profile, error) {
	cur, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	profiles := []entity.Profile{}
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// Upsert merges only the provided fields into the profile with one atomic
// $set, creating the document when the user has none. The unique index on
// user makes a concurrent double-create impossible.
func (r *ProfileRepository) Upsert(ctx context.Context, userID primitive.ObjectID, fields entity.ProfileFields) (*entity.Profile, error) {
	set := bson.M{"user": userID, "social": fields.Social}
	if fields.Company != "" {
		set["company"] = fields.Company
	}
	if fields.Website != "" {
		set["website"] = fields.Website
	}
	if fields.Location != "" {
		set["location"] = fields.Location
	}
	if fields.Bio != "" {
		set["bio"] = fields.Bio
	}
	if fields.Status != "" {
		set["status"] = fields.Status
	}
	if fields.GithubUsername != "" {
		set["githubusername"] = fields.GithubUsername
	}
	if len(fields.Skills) > 0 {
		set["skills"] = fields.Skills
	}

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"experience": []entity.Experience{},
			"education":  []entity.Education{},
			"created_at": time.Now().UTC(),
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	p := &entity.Profile{}
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"user": userID}, update, opts).Decode(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProfileRepository) Replace(ctx context.Context, p *entity.Profile) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *ProfileRepository) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"user": userID})
	return err
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)
