package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devlinkhq/devlink-backend/internal/domain/entity"
)

// ErrNotFound is returned by every repository when the requested document
// does not exist.
var ErrNotFound = errors.New("not found")

// UserRepository defines the persistence port for account records.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
