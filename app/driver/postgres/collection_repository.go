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

// CollectionRepository implements port.CollectionRepositoryPort for PostgreSQL
type CollectionRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewCollectionRepository creates a new PostgreSQL collection repository
func NewCollectionRepository(db DatabaseIface, logger *slog.Logger) port.CollectionRepositoryPort {
	return &CollectionRepository{
		db:     db,
		logger: logger.With("component", "collection_repository"),
	}
}

const collectionColumns = `
	c.id, c.name, c.description, c.is_public, c.user_id,
	(SELECT COUNT(*) FROM collection_links cl WHERE cl.collection_id = c.id) AS link_count,
	c.created_at, c.updated_at`

// Create inserts a new collection
func (r *CollectionRepository) Create(ctx context.Context, collection *domain.Collection) error {
	query := `
		INSERT INTO collections (id, name, description, is_public, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		collection.ID,
		collection.Name,
		collection.Description,
		collection.IsPublic,
		collection.UserID,
		collection.CreatedAt,
		collection.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to create collection", "collection_id", collection.ID, "error", err)
		return fmt.Errorf("failed to create collection: %w", err)
	}

	return nil
}

// GetByID retrieves a collection with its link count
func (r *CollectionRepository) GetByID(ctx context.Context, collectionID uuid.UUID) (*domain.Collection, error) {
	query := `SELECT` + collectionColumns + `
		FROM collections c
		WHERE c.id = $1`

	collection := &domain.Collection{}
	err := r.db.QueryRow(ctx, query, collectionID).Scan(
		&collection.ID,
		&collection.Name,
		&collection.Description,
		&collection.IsPublic,
		&collection.UserID,
		&collection.LinkCount,
		&collection.CreatedAt,
		&collection.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("Failed to get collection", "collection_id", collectionID, "error", err)
		return nil, fmt.Errorf("failed to get collection: %w", err)
	}

	return collection, nil
}

// ListByOwner returns a user's collections, newest first
func (r *CollectionRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*domain.Collection, error) {
	query := `SELECT` + collectionColumns + `
		FROM collections c
		WHERE c.user_id = $1
		ORDER BY c.created_at DESC
		LIMIT $2 OFFSET $3`

	return r.queryCollections(ctx, query, ownerID, limit, offset)
}

// ListPublic returns public collections, newest first
func (r *CollectionRepository) ListPublic(ctx context.Context, limit, offset int) ([]*domain.Collection, error) {
	query := `SELECT` + collectionColumns + `
		FROM collections c
		WHERE c.is_public = true
		ORDER BY c.created_at DESC
		LIMIT $1 OFFSET $2`

	return r.queryCollections(ctx, query, limit, offset)
}

// Update persists the collection's mutable fields
func (r *CollectionRepository) Update(ctx context.Context, collection *domain.Collection) error {
	query := `
		UPDATE collections
		SET name = $2, description = $3, is_public = $4, updated_at = $5
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		collection.ID,
		collection.Name,
		collection.Description,
		collection.IsPublic,
		collection.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to update collection", "collection_id", collection.ID, "error", err)
		return fmt.Errorf("failed to update collection: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// Delete removes a collection. Its membership rows cascade away; the
// linked links themselves are untouched.
func (r *CollectionRepository) Delete(ctx context.Context, collectionID uuid.UUID) error {
	query := `DELETE FROM collections WHERE id = $1`

	result, err := r.db.Exec(ctx, query, collectionID)
	if err != nil {
		r.logger.Error("Failed to delete collection", "collection_id", collectionID, "error", err)
		return fmt.Errorf("failed to delete collection: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// AddLink adds a link to a collection. Re-adding is a no-op.
func (r *CollectionRepository) AddLink(ctx context.Context, collectionID, linkID uuid.UUID) error {
	query := `
		INSERT INTO collection_links (collection_id, link_id, added_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (collection_id, link_id) DO NOTHING`

	if _, err := r.db.Exec(ctx, query, collectionID, linkID); err != nil {
		r.logger.Error("Failed to add link to collection",
			"collection_id", collectionID, "link_id", linkID, "error", err)
		return fmt.Errorf("failed to add link to collection: %w", err)
	}

	return nil
}

// RemoveLink removes a link from a collection
func (r *CollectionRepository) RemoveLink(ctx context.Context, collectionID, linkID uuid.UUID) error {
	query := `DELETE FROM collection_links WHERE collection_id = $1 AND link_id = $2`

	if _, err := r.db.Exec(ctx, query, collectionID, linkID); err != nil {
		r.logger.Error("Failed to remove link from collection",
			"collection_id", collectionID, "link_id", linkID, "error", err)
		return fmt.Errorf("failed to remove link from collection: %w", err)
	}

	return nil
}

// ListLinks returns the collection's links in the order they were added
func (r *CollectionRepository) ListLinks(ctx context.Context, collectionID uuid.UUID, limit, offset int) ([]*domain.Link, error) {
	query := `
		SELECT l.id, l.url, l.title, l.description, l.image, l.clicks, l.is_public, l.user_id, l.created_at, l.updated_at
		FROM links l
		JOIN collection_links cl ON cl.link_id = l.id
		WHERE cl.collection_id = $1
		ORDER BY cl.added_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, collectionID, limit, offset)
	if err != nil {
		r.logger.Error("Failed to query collection links",
			"collection_id", collectionID, "error", err)
		return nil, fmt.Errorf("failed to query collection links: %w", err)
	}
	defer rows.Close()

	return scanLinks(rows)
}

func (r *CollectionRepository) queryCollections(ctx context.Context, query string, args ...interface{}) ([]*domain.Collection, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query collections", "error", err)
		return nil, fmt.Errorf("failed to query collections: %w", err)
	}
	defer rows.Close()

	collections := make([]*domain.Collection, 0)
	for rows.Next() {
		collection := &domain.Collection{}
		if err := rows.Scan(
			&collection.ID,
			&collection.Name,
			&collection.Description,
			&collection.IsPublic,
			&collection.UserID,
			&collection.LinkCount,
			&collection.CreatedAt,
			&collection.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan collection row: %w", err)
		}
		collections = append(collections, collection)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating collection rows: %w", err)
	}

	return collections, nil
}
