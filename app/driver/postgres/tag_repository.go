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

// TagRepository implements port.TagRepositoryPort for PostgreSQL
type TagRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewTagRepository creates a new PostgreSQL tag repository
func NewTagRepository(db DatabaseIface, logger *slog.Logger) port.TagRepositoryPort {
	return &TagRepository{
		db:     db,
		logger: logger.With("component", "tag_repository"),
	}
}

// ConnectOrCreate resolves each name to an existing tag row or creates
// one. The no-op DO UPDATE makes RETURNING yield the row on conflict
// too, so concurrent creates of the same name converge on one tag.
// Names must already be normalized.
func (r *TagRepository) ConnectOrCreate(ctx context.Context, names []string) ([]domain.Tag, error) {
	query := `
		INSERT INTO tags (id, name, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, created_at`

	tags := make([]domain.Tag, 0, len(names))
	for _, name := range names {
		var tag domain.Tag
		err := r.db.QueryRow(ctx, query, uuid.New(), name).Scan(
			&tag.ID,
			&tag.Name,
			&tag.CreatedAt,
		)
		if err != nil {
			r.logger.Error("Failed to connect or create tag", "name", name, "error", err)
			return nil, fmt.Errorf("failed to connect or create tag %q: %w", name, err)
		}
		tags = append(tags, tag)
	}

	return tags, nil
}

// List returns tags ordered by name
func (r *TagRepository) List(ctx context.Context, limit, offset int) ([]*domain.Tag, error) {
	query := `
		SELECT id, name, created_at
		FROM tags
		ORDER BY name
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error("Failed to query tags", "error", err)
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	tags := make([]*domain.Tag, 0)
	for rows.Next() {
		tag := &domain.Tag{}
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

// GetByName retrieves a tag by its normalized name
func (r *TagRepository) GetByName(ctx context.Context, name string) (*domain.Tag, error) {
	query := `SELECT id, name, created_at FROM tags WHERE name = $1`

	tag := &domain.Tag{}
	err := r.db.QueryRow(ctx, query, name).Scan(&tag.ID, &tag.Name, &tag.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("Failed to get tag", "name", name, "error", err)
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}

	return tag, nil
}

// ListLinksByTag returns links carrying the tag that the viewer may
// see: public links plus the viewer's own.
func (r *TagRepository) ListLinksByTag(ctx context.Context, tagID, viewerID uuid.UUID, limit, offset int) ([]*domain.Link, error) {
	query := `
		SELECT l.id, l.url, l.title, l.description, l.image, l.clicks, l.is_public, l.user_id, l.created_at, l.updated_at
		FROM links l
		JOIN link_tags lt ON lt.link_id = l.id
		WHERE lt.tag_id = $1 AND (l.is_public = true OR l.user_id = $2)
		ORDER BY l.created_at DESC
		LIMIT $3 OFFSET $4`

	rows, err := r.db.Query(ctx, query, tagID, viewerID, limit, offset)
	if err != nil {
		r.logger.Error("Failed to query links by tag", "tag_id", tagID, "error", err)
		return nil, fmt.Errorf("failed to query links by tag: %w", err)
	}
	defer rows.Close()

	return scanLinks(rows)
}
