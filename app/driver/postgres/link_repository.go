package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"linkspace/app/domain"
	"linkspace/app/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// LinkRepository implements port.LinkRepositoryPort for PostgreSQL
type LinkRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewLinkRepository creates a new PostgreSQL link repository
func NewLinkRepository(db DatabaseIface, logger *slog.Logger) port.LinkRepositoryPort {
	return &LinkRepository{
		db:     db,
		logger: logger.With("component", "link_repository"),
	}
}

// Create inserts a new link
func (r *LinkRepository) Create(ctx context.Context, link *domain.Link) error {
	query := `
		INSERT INTO links (id, url, title, description, image, clicks, is_public, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, query,
		link.ID,
		link.URL,
		link.Title,
		link.Description,
		link.Image,
		link.Clicks,
		link.IsPublic,
		link.UserID,
		link.CreatedAt,
		link.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create link", "link_id", link.ID, "error", err)
		return fmt.Errorf("failed to create link: %w", err)
	}

	return nil
}

// GetByID retrieves a link with its tags
func (r *LinkRepository) GetByID(ctx context.Context, linkID uuid.UUID) (*domain.Link, error) {
	query := `
		SELECT id, url, title, description, image, clicks, is_public, user_id, created_at, updated_at
		FROM links
		WHERE id = $1`

	link := &domain.Link{}
	err := r.db.QueryRow(ctx, query, linkID).Scan(
		&link.ID,
		&link.URL,
		&link.Title,
		&link.Description,
		&link.Image,
		&link.Clicks,
		&link.IsPublic,
		&link.UserID,
		&link.CreatedAt,
		&link.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("Failed to get link", "link_id", linkID, "error", err)
		return nil, fmt.Errorf("failed to get link: %w", err)
	}

	tags, err := r.loadTags(ctx, linkID)
	if err != nil {
		return nil, err
	}
	link.Tags = tags

	return link, nil
}

// ListByOwner returns a user's links, newest first
func (r *LinkRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*domain.Link, error) {
	query := `
		SELECT id, url, title, description, image, clicks, is_public, user_id, created_at, updated_at
		FROM links
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	return r.queryLinks(ctx, query, ownerID, limit, offset)
}

// ListPublic returns public links, newest first
func (r *LinkRepository) ListPublic(ctx context.Context, limit, offset int) ([]*domain.Link, error) {
	query := `
		SELECT id, url, title, description, image, clicks, is_public, user_id, created_at, updated_at
		FROM links
		WHERE is_public = true
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	return r.queryLinks(ctx, query, limit, offset)
}

// Update persists the link's mutable fields
func (r *LinkRepository) Update(ctx context.Context, link *domain.Link) error {
	query := `
		UPDATE links
		SET url = $2, title = $3, description = $4, image = $5, is_public = $6, updated_at = $7
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		link.ID,
		link.URL,
		link.Title,
		link.Description,
		link.Image,
		link.IsPublic,
		link.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to update link", "link_id", link.ID, "error", err)
		return fmt.Errorf("failed to update link: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Delete removes a link. Join-table rows cascade away with it.
func (r *LinkRepository) Delete(ctx context.Context, linkID uuid.UUID) error {
	query := `DELETE FROM links WHERE id = $1`

	result, err := r.db.Exec(ctx, query, linkID)
	if err != nil {
		r.logger.Error("Failed to delete link", "link_id", linkID, "error", err)
		return fmt.Errorf("failed to delete link: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// IncrementClicks bumps the click counter in a single statement so
// concurrent clicks never lose updates, and returns the new count.
func (r *LinkRepository) IncrementClicks(ctx context.Context, linkID uuid.UUID) (int, error) {
	query := `
		UPDATE links
		SET clicks = clicks + 1
		WHERE id = $1
		RETURNING clicks`

	var clicks int
	err := r.db.QueryRow(ctx, query, linkID).Scan(&clicks)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, domain.ErrNotFound
		}
		r.logger.Error("Failed to increment clicks", "link_id", linkID, "error", err)
		return 0, fmt.Errorf("failed to increment clicks: %w", err)
	}

	return clicks, nil
}

// SetTags replaces the link's tag set
func (r *LinkRepository) SetTags(ctx context.Context, linkID uuid.UUID, tagIDs []uuid.UUID) error {
	deleteQuery := `DELETE FROM link_tags WHERE link_id = $1`
	if _, err := r.db.Exec(ctx, deleteQuery, linkID); err != nil {
		r.logger.Error("Failed to clear link tags", "link_id", linkID, "error", err)
		return fmt.Errorf("failed to clear link tags: %w", err)
	}

	insertQuery := `
		INSERT INTO link_tags (link_id, tag_id)
		VALUES ($1, $2)
		ON CONFLICT (link_id, tag_id) DO NOTHING`

	for _, tagID := range tagIDs {
		if _, err := r.db.Exec(ctx, insertQuery, linkID, tagID); err != nil {
			r.logger.Error("Failed to attach tag",
				"link_id", linkID, "tag_id", tagID, "error", err)
			return fmt.Errorf("failed to attach tag: %w", err)
		}
	}

	return nil
}

// loadTags fetches the tags attached to a link
func (r *LinkRepository) loadTags(ctx context.Context, linkID uuid.UUID) ([]domain.Tag, error) {
	query := `
		SELECT t.id, t.name, t.created_at
		FROM tags t
		JOIN link_tags lt ON lt.tag_id = t.id
		WHERE lt.link_id = $1
		ORDER BY t.name`

	rows, err := r.db.Query(ctx, query, linkID)
	if err != nil {
		return nil, fmt.Errorf("failed to load link tags: %w", err)
	}
	defer rows.Close()

	tags := make([]domain.Tag, 0)
	for rows.Next() {
		var tag domain.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tag row: %w", err)
		}
		tags = append(tags, tag)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tag rows: %w", err)
	}

	return tags, nil
}

func (r *LinkRepository) queryLinks(ctx context.Context, query string, args ...interface{}) ([]*domain.Link, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query links", "error", err)
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	defer rows.Close()

	return scanLinks(rows)
}

// scanLinks collects link rows. Shared with the collection and tag
// repositories, which select the same column list.
func scanLinks(rows pgx.Rows) ([]*domain.Link, error) {
	links := make([]*domain.Link, 0)
	for rows.Next() {
		link := &domain.Link{}
		if err := rows.Scan(
			&link.ID,
			&link.URL,
			&link.Title,
			&link.Description,
			&link.Image,
			&link.Clicks,
			&link.IsPublic,
			&link.UserID,
			&link.CreatedAt,
			&link.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan link row: %w", err)
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating link rows: %w", err)
	}

	return links, nil
}
