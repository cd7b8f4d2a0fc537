package application

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devlinkhq/devlink-backend/pkg/apperrors"
)

// principalOID converts the principal id carried by the auth middleware
// back into an ObjectID. The id came out of a token this service signed,
// so a malformed value means the token subject is bogus.
func principalOID(principalID string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(principalID)
	if err != nil {
		return primitive.NilObjectID, apperrors.Unauthorized("token is not valid")
	}
	return oid, nil
}

// aggregateOID parses an aggregate id from a URL path. Malformed ids are
// reported as not-found rather than a validation failure so storage-layer
// id formats never leak into responses.
func aggregateOID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, apperrors.NotFound("not found")
	}
	return oid, nil
}
