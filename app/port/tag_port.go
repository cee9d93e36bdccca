package port

//go:generate mockgen -source=tag_port.go -destination=../mocks/mock_tag_port.go

import (
	"context"

	"linkspace/app/domain"

	"github.com/google/uuid"
)

// TagUsecase defines tag browsing business logic interface
type TagUsecase interface {
	ListTags(ctx context.Context, opts domain.ListOptions) ([]*domain.Tag, error)
	ListLinksByTag(ctx context.Context, actorID uuid.UUID, tagName string, opts domain.ListOptions) ([]*domain.Link, error)
}

// TagRepositoryPort defines tag data access interface. Tags are global
// and append-only, so there are no update or delete operations.
type TagRepositoryPort interface {
	ConnectOrCreate(ctx context.Context, names []string) ([]domain.Tag, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Tag, error)
	GetByName(ctx context.Context, name string) (*domain.Tag, error)
	ListLinksByTag(ctx context.Context, tagID, viewerID uuid.UUID, limit, offset int) ([]*domain.Link, error)
}
