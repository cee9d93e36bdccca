package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"linkspace/app/domain"
	"linkspace/app/port"
	custommw "linkspace/app/rest/middleware"
	apperrors "linkspace/app/utils/errors"
	"linkspace/app/utils/validator"
)

// UserHandler handles user and profile HTTP requests
type UserHandler struct {
	userUsecase port.UserUsecase
	validator   *validator.Validator
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUsecase port.UserUsecase, v *validator.Validator, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   v,
		logger:      logger,
	}
}

// Me returns the authenticated caller's own record. When the sync
// reconciler failed during auth the request is degraded and carries no
// local user row, which surfaces here as a 503.
// @Router /api/users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	rc := custommw.RequestContextFrom(c)
	if rc == nil {
		return respondError(c, h.logger, apperrors.ErrUnauthorized)
	}
	if rc.User == nil {
		return respondError(c, h.logger,
			apperrors.New(apperrors.ErrCodeIdentityError, "profile temporarily unavailable"))
	}

	return c.JSON(http.StatusOK, rc.User)
}

// UpdateProfile edits the caller's own profile
// @Router /api/users/me [patch]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.UpdateProfileRequest
	if err := bindAndValidate(c, h.validator, &req); err != nil {
		return respondError(c, h.logger, err)
	}

	user, err := h.userUsecase.UpdateProfile(ctx, custommw.ActorID(c), &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, user)
}

// GetProfile returns a user's public profile with follow counts
// @Router /api/users/{userId} [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := parseUUIDParam(c, "userId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	profile, err := h.userUsecase.GetProfile(ctx, userID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, profile)
}

// FollowUser makes the caller follow the given user
// @Router /api/users/{userId}/follow [post]
func (h *UserHandler) FollowUser(c echo.Context) error {
	ctx := c.Request().Context()

	followeeID, err := parseUUIDParam(c, "userId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	if err := h.userUsecase.FollowUser(ctx, custommw.ActorID(c), followeeID); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "following"})
}

// UnfollowUser removes the caller's follow of the given user
// @Router /api/users/{userId}/follow [delete]
func (h *UserHandler) UnfollowUser(c echo.Context) error {
	ctx := c.Request().Context()

	followeeID, err := parseUUIDParam(c, "userId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	if err := h.userUsecase.UnfollowUser(ctx, custommw.ActorID(c), followeeID); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "unfollowed"})
}

// ListFollowing returns the users the given user follows
// @Router /api/users/{userId}/following [get]
func (h *UserHandler) ListFollowing(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := parseUUIDParam(c, "userId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	users, err := h.userUsecase.ListFollowing(ctx, userID, parseListOptions(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, users)
}

// ListFollowers returns the users following the given user
// @Router /api/users/{userId}/followers [get]
func (h *UserHandler) ListFollowers(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := parseUUIDParam(c, "userId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	users, err := h.userUsecase.ListFollowers(ctx, userID, parseListOptions(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, users)
}
