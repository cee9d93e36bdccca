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

// UserUsecase implements port.UserUsecase
type UserUsecase struct {
	userRepo port.UserRepositoryPort
	logger   *slog.Logger
}

// NewUserUsecase creates a new UserUsecase
func NewUserUsecase(userRepo port.UserRepositoryPort, logger *slog.Logger) port.UserUsecase {
	return &UserUsecase{
		userRepo: userRepo,
		logger:   logger.With("component", "user_usecase"),
	}
}

// SyncUser reconciles the identity provider's view of a user into the
// local users table. It runs on every authenticated request, so the
// common path is a cheap upsert that changes nothing.
func (u *UserUsecase) SyncUser(ctx context.Context, identity *domain.Identity) (*domain.User, error) {
	user, err := domain.NewUserFromIdentity(identity)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, "identity cannot be synced", err)
	}

	synced, err := u.userRepo.Upsert(ctx, user)
	if err != nil {
		u.logger.Error("user sync failed", "user_id", user.ID, "error", err)
		return nil, apperrors.NewDatabaseError(err)
	}

	return synced, nil
}

// GetProfile returns a user's profile with follow counts
func (u *UserUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	followers, following, err := u.userRepo.CountFollows(ctx, userID)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	return &domain.UserProfile{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Image:     user.Image,
		Bio:       user.Bio,
		Followers: followers,
		Following: following,
	}, nil
}

// UpdateProfile edits the caller's own profile
func (u *UserUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *domain.UpdateProfileRequest) (*domain.User, error) {
	if userID == uuid.Nil {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.NewDatabaseError(err)
	}

	user.UpdateProfile(req.Name, req.Bio, req.Image)

	if err := u.userRepo.Update(ctx, user); err != nil {
		u.logger.Error("profile update failed", "user_id", userID, "error", err)
		return nil, apperrors.NewDatabaseError(err)
	}

	return user, nil
}

// FollowUser records that follower follows followee
func (u *UserUsecase) FollowUser(ctx context.Context, followerID, followeeID uuid.UUID) error {
	if followerID == uuid.Nil {
		return apperrors.ErrUnauthorized
	}
	if followerID == followeeID {
		return apperrors.New(apperrors.ErrCodeValidationFailed, "cannot follow yourself")
	}

	if _, err := u.userRepo.GetByID(ctx, followeeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.NewDatabaseError(err)
	}

	if err := u.userRepo.Follow(ctx, followerID, followeeID); err != nil {
		return apperrors.NewDatabaseError(err)
	}

	u.logger.Info("user followed", "follower_id", followerID, "followee_id", followeeID)
	return nil
}

// UnfollowUser removes a follow edge
func (u *UserUsecase) UnfollowUser(ctx context.Context, followerID, followeeID uuid.UUID) error {
	if followerID == uuid.Nil {
		return apperrors.ErrUnauthorized
	}

	if err := u.userRepo.Unfollow(ctx, followerID, followeeID); err != nil {
		return apperrors.NewDatabaseError(err)
	}

	return nil
}

// ListFollowing returns the users the given user follows
func (u *UserUsecase) ListFollowing(ctx context.Context, userID uuid.UUID, opts domain.ListOptions) ([]*domain.User, error) {
	opts = opts.Normalize()

	users, err := u.userRepo.ListFollowing(ctx, userID, opts.Limit, opts.Offset)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	return users, nil
}

// ListFollowers returns the users following the given user
func (u *UserUsecase) ListFollowers(ctx context.Context, userID uuid.UUID, opts domain.ListOptions) ([]*domain.User, error) {
	opts = opts.Normalize()

	users, err := u.userRepo.ListFollowers(ctx, userID, opts.Limit, opts.Offset)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	return users, nil
}
