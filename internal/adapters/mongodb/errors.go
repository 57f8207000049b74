package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/memorias-pessoais/memorias-api/internal/domain"
)

// mapError translates driver errors into domain errors so the application
// layer never depends on driver error types.
//
// Mapping:
//   - mongo.ErrNoDocuments        -> domain.ErrNotFound
//   - duplicate key write errors  -> domain.ErrConflict
//   - context deadline/cancel     -> domain.ErrUnavailable
//   - anything else               -> passed through wrapped
func mapError(err error, entity, id string) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return domain.NewNotFoundError(entity, id)
	case mongo.IsDuplicateKeyError(err):
		return domain.NewConflictError(entity, "already exists")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled),
		mongo.IsTimeout(err), mongo.IsNetworkError(err):
		return domain.NewUnavailableError("mongodb", err.Error())
	default:
		return err
	}
}

// parseObjectID converts a hex string into an ObjectID, surfacing malformed
// input as a validation error.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.NewValidationErrorWithValue("id", "must be a valid object id", id)
	}

	return oid, nil
}
