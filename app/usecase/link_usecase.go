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

// LinkUsecase implements port.LinkUsecase
type LinkUsecase struct {
	linkRepo port.LinkRepositoryPort
	tagRepo  port.TagRepositoryPort
	logger   *slog.Logger
}

// NewLinkUsecase creates a new LinkUsecase
func NewLinkUsecase(
	linkRepo port.LinkRepositoryPort,
	tagRepo port.TagRepositoryPort,
	logger *slog.Logger,
) port.LinkUsecase {
	return &LinkUsecase{
		linkRepo: linkRepo,
		tagRepo:  tagRepo,
		logger:   logger.With("component", "link_usecase"),
	}
}

// CreateLink saves a new link for the owner, resolving its tags
func (u *LinkUsecase) CreateLink(ctx context.Context, ownerID uuid.UUID, req *domain.CreateLinkRequest) (*domain.Link, error) {
	if ownerID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}

	link, err := domain.NewLink(ownerID, req.URL, req.Title)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeValidationFailed, "invalid link", err)
	}

	link.Description = req.Description
	link.Image = req.Image
	if req.IsPublic != nil {
		link.IsPublic = *req.IsPublic
	}

	tags, err := u.resolveTags(ctx, req.Tags)
	if err != nil {
		return nil, err
	}

	if err := u.linkRepo.Create(ctx, link); err != nil {
		u.logger.Error("link creation failed", "user_id", ownerID, "error", err)
		return nil, apperrors.NewDatabaseError(err)
	}

	if len(tags) > 0 {
		if err := u.attachTags(ctx, link, tags); err != nil {
			return nil, err
		}
	}

	u.logger.Info("link created", "link_id", link.ID, "user_id", ownerID)
	return link, nil
}

// GetLink returns a link the actor may see
func (u *LinkUsecase) GetLink(ctx context.Context, actorID, linkID uuid.UUID) (*domain.Link, error) {
	link, err := u.loadLink(ctx, linkID)
	if err != nil {
		return nil, err
	}

	if err := authorizeRead(actorID, link, apperrors.ErrLinkNotFound); err != nil {
		return nil, err
	}

	return link, nil
}

// ListLinks returns the owner's own links, private ones included
func (u *LinkUsecase) ListLinks(ctx context.Context, ownerID uuid.UUID, opts domain.ListOptions) ([]*domain.Link, error) {
	if ownerID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}

	opts = opts.Normalize()
	links, err := u.linkRepo.ListByOwner(ctx, ownerID, opts.Limit, opts.Offset)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	return links, nil
}

// ListPublicLinks returns the public feed
func (u *LinkUsecase) ListPublicLinks(ctx context.Context, opts domain.ListOptions) ([]*domain.Link, error) {
	opts = opts.Normalize()

	links, err := u.linkRepo.ListPublic(ctx, opts.Limit, opts.Offset)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	return links, nil
}

// UpdateLink applies a partial update to a link the actor owns
func (u *LinkUsecase) UpdateLink(ctx context.Context, actorID, linkID uuid.UUID, req *domain.UpdateLinkRequest) (*domain.Link, error) {
	link, err := u.loadLink(ctx, linkID)
	if err != nil {
		return nil, err
	}

	if err := authorizeWrite(actorID, link); err != nil {
		return nil, err
	}

	link.Apply(req.Update())

	// Row first, tags second: if the field update fails the tag set is
	// left untouched.
	if err := u.linkRepo.Update(ctx, link); err != nil {
		u.logger.Error("link update failed", "link_id", linkID, "error", err)
		return nil, apperrors.NewDatabaseError(err)
	}

	if req.Tags != nil {
		tags, err := u.resolveTags(ctx, req.Tags)
		if err != nil {
			return nil, err
		}
		if err := u.attachTags(ctx, link, tags); err != nil {
			return nil, err
		}
	}

	return link, nil
}

// DeleteLink removes a link the actor owns
func (u *LinkUsecase) DeleteLink(ctx context.Context, actorID, linkID uuid.UUID) error {
	link, err := u.loadLink(ctx, linkID)
	if err != nil {
		return err
	}

	if err := authorizeWrite(actorID, link); err != nil {
		return err
	}

	if err := u.linkRepo.Delete(ctx, linkID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperrors.ErrLinkNotFound
		}
		return apperrors.NewDatabaseError(err)
	}

	u.logger.Info("link deleted", "link_id", linkID, "user_id", actorID)
	return nil
}

// RecordClick bumps the click counter of a link the actor may see and
// returns the new count. Anonymous clicks on public links count too.
func (u *LinkUsecase) RecordClick(ctx context.Context, actorID, linkID uuid.UUID) (int, error) {
	link, err := u.loadLink(ctx, linkID)
	if err != nil {
		return 0, err
	}

	if err := authorizeRead(actorID, link, apperrors.ErrLinkNotFound); err != nil {
		return 0, err
	}

	clicks, err := u.linkRepo.IncrementClicks(ctx, linkID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, apperrors.ErrLinkNotFound
		}
		return 0, apperrors.NewDatabaseError(err)
	}

	return clicks, nil
}

// loadLink fetches a link, mapping missing rows to the API error
func (u *LinkUsecase) loadLink(ctx context.Context, linkID uuid.UUID) (*domain.Link, error) {
	link, err := u.linkRepo.GetByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperrors.ErrLinkNotFound
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return link, nil
}

// resolveTags normalizes names and resolves them to tag rows
func (u *LinkUsecase) resolveTags(ctx context.Context, names []string) ([]domain.Tag, error) {
	if len(names) == 0 {
		return nil, nil
	}

	normalized, err := domain.NormalizeTagNames(names)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeValidationFailed, "invalid tags", err)
	}

	tags, err := u.tagRepo.ConnectOrCreate(ctx, normalized)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	return tags, nil
}

// attachTags replaces the link's tag set in storage and on the model
func (u *LinkUsecase) attachTags(ctx context.Context, link *domain.Link, tags []domain.Tag) error {
	tagIDs := make([]uuid.UUID, len(tags))
	for i, tag := range tags {
		tagIDs[i] = tag.ID
	}

	if err := u.linkRepo.SetTags(ctx, link.ID, tagIDs); err != nil {
		return apperrors.NewDatabaseError(err)
	}

	link.Tags = tags
	return nil
}
