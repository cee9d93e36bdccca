package port

//go:generate mockgen -source=user_port.go -destination=../mocks/mock_user_port.go

import (
	"context"

	"linkspace/app/domain"

	"github.com/google/uuid"
)

// UserUsecase defines user management business logic interface
type UserUsecase interface {
	// Identity reconciliation
	SyncUser(ctx context.Context, identity *domain.Identity) (*domain.User, error)

	// Profile management
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *domain.UpdateProfileRequest) (*domain.User, error)

	// Social graph
	FollowUser(ctx context.Context, followerID, followeeID uuid.UUID) error
	UnfollowUser(ctx context.Context, followerID, followeeID uuid.UUID) error
	ListFollowing(ctx context.Context, userID uuid.UUID, opts domain.ListOptions) ([]*domain.User, error)
	ListFollowers(ctx context.Context, userID uuid.UUID, opts domain.ListOptions) ([]*domain.User, error)
}

// UserRepositoryPort defines user data access interface
type UserRepositoryPort interface {
	Upsert(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	CountFollows(ctx context.Context, userID uuid.UUID) (followers, following int, err error)
	Follow(ctx context.Context, followerID, followeeID uuid.UUID) error
	Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error
	ListFollowing(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.User, error)
	ListFollowers(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.User, error)
}
