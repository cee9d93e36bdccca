package port

//go:generate mockgen -source=collection_port.go -destination=../mocks/mock_collection_port.go

import (
	"context"

	"linkspace/app/domain"

	"github.com/google/uuid"
)

// CollectionUsecase defines collection management business logic interface
type CollectionUsecase interface {
	CreateCollection(ctx context.Context, ownerID uuid.UUID, req *domain.CreateCollectionRequest) (*domain.Collection, error)
	GetCollection(ctx context.Context, actorID, collectionID uuid.UUID) (*domain.Collection, error)
	ListCollections(ctx context.Context, ownerID uuid.UUID, opts domain.ListOptions) ([]*domain.Collection, error)
	ListPublicCollections(ctx context.Context, opts domain.ListOptions) ([]*domain.Collection, error)
	UpdateCollection(ctx context.Context, actorID, collectionID uuid.UUID, req *domain.UpdateCollectionRequest) (*domain.Collection, error)
	DeleteCollection(ctx context.Context, actorID, collectionID uuid.UUID) error

	// Membership
	AddLink(ctx context.Context, actorID, collectionID, linkID uuid.UUID) error
	RemoveLink(ctx context.Context, actorID, collectionID, linkID uuid.UUID) error
	ListCollectionLinks(ctx context.Context, actorID, collectionID uuid.UUID, opts domain.ListOptions) ([]*domain.Link, error)
}

// CollectionRepositoryPort defines collection data access interface
type CollectionRepositoryPort interface {
	Create(ctx context.Context, collection *domain.Collection) error
	GetByID(ctx context.Context, collectionID uuid.UUID) (*domain.Collection, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*domain.Collection, error)
	ListPublic(ctx context.Context, limit, offset int) ([]*domain.Collection, error)
	Update(ctx context.Context, collection *domain.Collection) error
	Delete(ctx context.Context, collectionID uuid.UUID) error
	AddLink(ctx context.Context, collectionID, linkID uuid.UUID) error
	RemoveLink(ctx context.Context, collectionID, linkID uuid.UUID) error
	ListLinks(ctx context.Context, collectionID uuid.UUID, limit, offset int) ([]*domain.Link, error)
}
