package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devlinkhq/devlink-backend/internal/domain/entity"
)

func TestOwnsPost(t *testing.T) {
	owner := primitive.NewObjectID()
	p := &entity.Post{User: owner}

	assert.True(t, OwnsPost(owner.Hex(), p))
	assert.False(t, OwnsPost(primitive.NewObjectID().Hex(), p))
	assert.False(t, OwnsPost(owner.Hex(), nil))
}

func TestOwnsComment(t *testing.T) {
	owner := primitive.NewObjectID()
	c := entity.Comment{ID: "c1", User: owner}

	assert.True(t, OwnsComment(owner.Hex(), c))
	assert.False(t, OwnsComment(primitive.NewObjectID().Hex(), c))
	assert.False(t, OwnsComment("", c))
}
