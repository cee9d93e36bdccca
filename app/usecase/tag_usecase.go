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

// TagUsecase implements port.TagUsecase
type TagUsecase struct {
	tagRepo port.TagRepositoryPort
	logger  *slog.Logger
}

// NewTagUsecase creates a new TagUsecase
func NewTagUsecase(tagRepo port.TagRepositoryPort, logger *slog.Logger) port.TagUsecase {
	return &TagUsecase{
		tagRepo: tagRepo,
		logger:  logger.With("component", "tag_usecase"),
	}
}

// ListTags returns the global tag list
func (u *TagUsecase) ListTags(ctx context.Context, opts domain.ListOptions) ([]*domain.Tag, error) {
	opts = opts.Normalize()

	tags, err := u.tagRepo.List(ctx, opts.Limit, opts.Offset)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	return tags, nil
}

// ListLinksByTag returns visible links carrying the tag. An unknown
// tag yields an empty list, the same as a tag nobody uses.
func (u *TagUsecase) ListLinksByTag(ctx context.Context, actorID uuid.UUID, tagName string, opts domain.ListOptions) ([]*domain.Link, error) {
	normalized, err := domain.NormalizeTagName(tagName)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeValidationFailed, "invalid tag name", err)
	}

	tag, err := u.tagRepo.GetByName(ctx, normalized)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return []*domain.Link{}, nil
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	opts = opts.Normalize()
	links, err := u.tagRepo.ListLinksByTag(ctx, tag.ID, actorID, opts.Limit, opts.Offset)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	return links, nil
}
