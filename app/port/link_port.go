package port

//go:generate mockgen -source=link_port.go -destination=../mocks/mock_link_port.go

import (
	"context"

	"linkspace/app/domain"

	"github.com/google/uuid"
)

// LinkUsecase defines link management business logic interface.
// actorID is uuid.Nil for anonymous callers.
type LinkUsecase interface {
	CreateLink(ctx context.Context, ownerID uuid.UUID, req *domain.CreateLinkRequest) (*domain.Link, error)
	GetLink(ctx context.Context, actorID, linkID uuid.UUID) (*domain.Link, error)
	ListLinks(ctx context.Context, ownerID uuid.UUID, opts domain.ListOptions) ([]*domain.Link, error)
	ListPublicLinks(ctx context.Context, opts domain.ListOptions) ([]*domain.Link, error)
	UpdateLink(ctx context.Context, actorID, linkID uuid.UUID, req *domain.UpdateLinkRequest) (*domain.Link, error)
	DeleteLink(ctx context.Context, actorID, linkID uuid.UUID) error
	RecordClick(ctx context.Context, actorID, linkID uuid.UUID) (int, error)
}

// LinkRepositoryPort defines link data access interface
type LinkRepositoryPort interface {
	Create(ctx context.Context, link *domain.Link) error
	GetByID(ctx context.Context, linkID uuid.UUID) (*domain.Link, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*domain.Link, error)
	ListPublic(ctx context.Context, limit, offset int) ([]*domain.Link, error)
	Update(ctx context.Context, link *domain.Link) error
	Delete(ctx context.Context, linkID uuid.UUID) error
	IncrementClicks(ctx context.Context, linkID uuid.UUID) (int, error)
	SetTags(ctx context.Context, linkID uuid.UUID, tagIDs []uuid.UUID) error
}
