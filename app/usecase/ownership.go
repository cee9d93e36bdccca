package usecase

import (
	"github.com/google/uuid"

	apperrors "linkspace/app/utils/errors"
)

// owned is satisfied by any resource with a single owner and an
// optional public read flag. Links and collections both qualify.
type owned interface {
	OwnedBy(userID uuid.UUID) bool
	ReadableBy(userID uuid.UUID) bool
}

// authorizeRead decides whether the actor may see the resource.
// Callers that fail the check get notFound, never forbidden: a private
// resource must be indistinguishable from a missing one.
func authorizeRead(actorID uuid.UUID, resource owned, notFound *apperrors.AppError) error {
	if resource.ReadableBy(actorID) {
		return nil
	}
	return notFound
}

// authorizeWrite decides whether the actor may mutate the resource.
// The order is fixed: unauthenticated callers are rejected first, then
// any authenticated non-owner gets forbidden. The row's visibility
// plays no part here; only reads hide private rows behind notFound.
func authorizeWrite(actorID uuid.UUID, resource owned) error {
	if actorID == uuid.Nil {
		return apperrors.ErrUnauthorized
	}
	if !resource.OwnedBy(actorID) {
		return apperrors.ErrForbidden
	}
	return nil
}
