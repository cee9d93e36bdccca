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

// UserRepository implements port.UserRepositoryPort for PostgreSQL
type UserRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db DatabaseIface, logger *slog.Logger) port.UserRepositoryPort {
	return &UserRepository{
		db:     db,
		logger: logger.With("component", "user_repository"),
	}
}

// Upsert inserts the user or refreshes an existing row in place.
// email, name and image always reflect the identity provider's current
// values; created_at and bio are local state and survive the refresh.
func (r *UserRepository) Upsert(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (id, email, name, image, bio, created_at, updated_at)
		VALUES ($1, $2, $3, $4, '', $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			image = EXCLUDED.image,
			updated_at = EXCLUDED.updated_at
		RETURNING id, email, name, image, bio, created_at, updated_at`

	synced := &domain.User{}
	err := r.db.QueryRow(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		user.Image,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(
		&synced.ID,
		&synced.Email,
		&synced.Name,
		&synced.Image,
		&synced.Bio,
		&synced.CreatedAt,
		&synced.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to upsert user", "user_id", user.ID, "error", err)
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return synced, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	query := `
		SELECT id, email, name, image, bio, created_at, updated_at
		FROM users
		WHERE id = $1`

	user := &domain.User{}
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.Image,
		&user.Bio,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("Failed to get user", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// Update persists the user's mutable profile fields
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET name = $2, bio = $3, image = $4, updated_at = $5
		WHERE id = $1`

	result, err := r.db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Bio,
		user.Image,
		user.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to update user", "user_id", user.ID, "error", err)
		return fmt.Errorf("failed to update user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// CountFollows returns the user's follower and following counts
func (r *UserRepository) CountFollows(ctx context.Context, userID uuid.UUID) (int, int, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM user_follows WHERE followee_id = $1),
			(SELECT COUNT(*) FROM user_follows WHERE follower_id = $1)`

	var followers, following int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&followers, &following); err != nil {
		r.logger.Error("Failed to count follows", "user_id", userID, "error", err)
		return 0, 0, fmt.Errorf("failed to count follows: %w", err)
	}

	return followers, following, nil
}

// Follow records a follow edge. Re-following is a no-op.
func (r *UserRepository) Follow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	query := `
		INSERT INTO user_follows (follower_id, followee_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (follower_id, followee_id) DO NOTHING`

	if _, err := r.db.Exec(ctx, query, followerID, followeeID); err != nil {
		r.logger.Error("Failed to follow user",
			"follower_id", followerID, "followee_id", followeeID, "error", err)
		return fmt.Errorf("failed to follow user: %w", err)
	}

	return nil
}

// Unfollow removes a follow edge. Unfollowing a non-followed user is a no-op.
func (r *UserRepository) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	query := `DELETE FROM user_follows WHERE follower_id = $1 AND followee_id = $2`

	if _, err := r.db.Exec(ctx, query, followerID, followeeID); err != nil {
		r.logger.Error("Failed to unfollow user",
			"follower_id", followerID, "followee_id", followeeID, "error", err)
		return fmt.Errorf("failed to unfollow user: %w", err)
	}

	return nil
}

// ListFollowing returns the users the given user follows
func (r *UserRepository) ListFollowing(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.User, error) {
	query := `
		SELECT u.id, u.email, u.name, u.image, u.bio, u.created_at, u.updated_at
		FROM users u
		JOIN user_follows f ON f.followee_id = u.id
		WHERE f.follower_id = $1
		ORDER BY f.created_at DESC
		LIMIT $2 OFFSET $3`

	return r.queryUsers(ctx, query, userID, limit, offset)
}

// ListFollowers returns the users following the given user
func (r *UserRepository) ListFollowers(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.User, error) {
	query := `
		SELECT u.id, u.email, u.name, u.image, u.bio, u.created_at, u.updated_at
		FROM users u
		JOIN user_follows f ON f.follower_id = u.id
		WHERE f.followee_id = $1
		ORDER BY f.created_at DESC
		LIMIT $2 OFFSET $3`

	return r.queryUsers(ctx, query, userID, limit, offset)
}

func (r *UserRepository) queryUsers(ctx context.Context, query string, args ...interface{}) ([]*domain.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query users", "error", err)
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user := &domain.User{}
		if err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.Name,
			&user.Image,
			&user.Bio,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}
