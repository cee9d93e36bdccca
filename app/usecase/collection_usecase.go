package usecase

import (
	"context"
	"errors"
	"log/slog"

	"linkspace/app/domain"
	"linkspace/app/port"
	apperrors "linkspace/app/utils/errors"

	"github.com/google/uuid"
)

// CollectionUsecase implements port.CollectionUsecase
type CollectionUsecase struct {
	collectionRepo port.CollectionRepositoryPort
	linkRepo       port.LinkRepositoryPort
	logger         *slog.Logger
}

// NewCollectionUsecase creates a new CollectionUsecase
func NewCollectionUsecase(
	collectionRepo port.CollectionRepositoryPort,
	linkRepo port.LinkRepositoryPort,
	logger *slog.Logger,
) port.CollectionUsecase {
	return &CollectionUsecase{
		collectionRepo: collectionRepo,
		linkRepo:       linkRepo,
		logger:         logger.With("component", "collection_usecase"),
	}
}

// CreateCollection creates a collection for the owner
func (u *CollectionUsecase) CreateCollection(ctx context.Context, ownerID uuid.UUID, req *domain.CreateCollectionRequest) (*domain.Collection, error) {
	if ownerID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}

	collection, err := domain.NewCollection(ownerID, req.Name)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeValidationFailed, "invalid collection", err)
	}

	collection.Description = req.Description
	if req.IsPublic != nil {
		collection.IsPublic = *req.IsPublic
	}

	if err := u.collectionRepo.Create(ctx, collection); err != nil {
		u.logger.Error("collection creation failed", "user_id", ownerID, "error", err)
		return nil, apperrors.NewDatabaseError(err)
	}

	u.logger.Info("collection created", "collection_id", collection.ID, "user_id", ownerID)
	return collection, nil
}

// GetCollection returns a collection the actor may see
func (u *CollectionUsecase) GetCollection(ctx context.Context, actorID, collectionID uuid.UUID) (*domain.Collection, error) {
	collection, err := u.loadCollection(ctx, collectionID)
	if err != nil {
		return nil, err
	}

	if err := authorizeRead(actorID, collection, apperrors.ErrCollectionNotFound); err != nil {
		return nil, err
	}

	return collection, nil
}

// ListCollections returns the owner's own collections
func (u *CollectionUsecase) ListCollections(ctx context.Context, ownerID uuid.UUID, opts domain.ListOptions) ([]*domain.Collection, error) {
	if ownerID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}

	opts = opts.Normalize()
	collections, err := u.collectionRepo.ListByOwner(ctx, ownerID, opts.Limit, opts.Offset)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	return collections, nil
}

// ListPublicCollections returns publicly shared collections
func (u *CollectionUsecase) ListPublicCollections(ctx context.Context, opts domain.ListOptions) ([]*domain.Collection, error) {
	opts = opts.Normalize()

	collections, err := u.collectionRepo.ListPublic(ctx, opts.Limit, opts.Offset)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	return collections, nil
}

// UpdateCollection applies a partial update to an owned collection
func (u *CollectionUsecase) UpdateCollection(ctx context.Context, actorID, collectionID uuid.UUID, req *domain.UpdateCollectionRequest) (*domain.Collection, error) {
	collection, err := u.loadCollection(ctx, collectionID)
	if err != nil {
		return nil, err
	}

	if err := authorizeWrite(actorID, collection); err != nil {
		return nil, err
	}

	collection.Apply(req.Update())

	if err := u.collectionRepo.Update(ctx, collection); err != nil {
		u.logger.Error("collection update failed", "collection_id", collectionID, "error", err)
		return nil, apperrors.NewDatabaseError(err)
	}

	return collection, nil
}

// DeleteCollection removes an owned collection
func (u *CollectionUsecase) DeleteCollection(ctx context.Context, actorID, collectionID uuid.UUID) error {
	collection, err := u.loadCollection(ctx, collectionID)
	if err != nil {
		return err
	}

	if err := authorizeWrite(actorID, collection); err != nil {
		return err
	}

	if err := u.collectionRepo.Delete(ctx, collectionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperrors.ErrCollectionNotFound
		}
		return apperrors.NewDatabaseError(err)
	}

	u.logger.Info("collection deleted", "collection_id", collectionID, "user_id", actorID)
	return nil
}

// AddLink adds a link to an owned collection. The link itself must be
// visible to the actor: their own, or someone's public one.
func (u *CollectionUsecase) AddLink(ctx context.Context, actorID, collectionID, linkID uuid.UUID) error {
	collection, err := u.loadCollection(ctx, collectionID)
	if err != nil {
		return err
	}

	if err := authorizeWrite(actorID, collection); err != nil {
		return err
	}

	link, err := u.linkRepo.GetByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperrors.ErrLinkNotFound
		}
		return apperrors.NewDatabaseError(err)
	}

	if err := authorizeRead(actorID, link, apperrors.ErrLinkNotFound); err != nil {
		return err
	}

	if err := u.collectionRepo.AddLink(ctx, collectionID, linkID); err != nil {
		return apperrors.NewDatabaseError(err)
	}

	return nil
}

// RemoveLink removes a link from an owned collection
func (u *CollectionUsecase) RemoveLink(ctx context.Context, actorID, collectionID, linkID uuid.UUID) error {
	collection, err := u.loadCollection(ctx, collectionID)
	if err != nil {
		return err
	}

	if err := authorizeWrite(actorID, collection); err != nil {
		return err
	}

	if err := u.collectionRepo.RemoveLink(ctx, collectionID, linkID); err != nil {
		return apperrors.NewDatabaseError(err)
	}

	return nil
}

// ListCollectionLinks returns the links in a collection the actor may see
func (u *CollectionUsecase) ListCollectionLinks(ctx context.Context, actorID, collectionID uuid.UUID, opts domain.ListOptions) ([]*domain.Link, error) {
	collection, err := u.loadCollection(ctx, collectionID)
	if err != nil {
		return nil, err
	}

	if err := authorizeRead(actorID, collection, apperrors.ErrCollectionNotFound); err != nil {
		return nil, err
	}

	opts = opts.Normalize()
	links, err := u.collectionRepo.ListLinks(ctx, collectionID, opts.Limit, opts.Offset)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	return links, nil
}

// loadCollection fetches a collection, mapping missing rows to the API error
func (u *CollectionUsecase) loadCollection(ctx context.Context, collectionID uuid.UUID) (*domain.Collection, error) {
	collection, err := u.collectionRepo.GetByID(ctx, collectionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperrors.ErrCollectionNotFound
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return collection, nil
}
