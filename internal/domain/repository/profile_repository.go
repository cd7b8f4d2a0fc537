package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devlinkhq/devlink-backend/internal/domain/entity"
)

// ProfileRepository defines the persistence port for the Profile
// aggregate. Upsert merges only the provided fields into the existing
// profile with an atomic single-document update, creating the profile
// when none exists; the store enforces one profile per user.
type ProfileRepository interface {
	GetByUser(ctx context.Context, userID primitive.ObjectID) (*entity.Profile, error)
	List(ctx context.Context) ([]entity.Profile, error)
	Upsert(ctx context.Context, userID primitive.ObjectID, fields entity.ProfileFields) (*entity.Profile, error)
	Replace(ctx context.Context, p *entity.Profile) error
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
}
