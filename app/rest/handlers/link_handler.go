package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"linkspace/app/domain"
	"linkspace/app/port"
	custommw "linkspace/app/rest/middleware"
	"linkspace/app/utils/validator"
)

// LinkHandler handles link HTTP requests
type LinkHandler struct {
	linkUsecase port.LinkUsecase
	validator   *validator.Validator
	logger      *slog.Logger
}

// NewLinkHandler creates a new link handler
func NewLinkHandler(linkUsecase port.LinkUsecase, v *validator.Validator, logger *slog.Logger) *LinkHandler {
	return &LinkHandler{
		linkUsecase: linkUsecase,
		validator:   v,
		logger:      logger,
	}
}

// CreateLink saves a new link for the authenticated user
// @Router /api/links [post]
func (h *LinkHandler) CreateLink(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.CreateLinkRequest
	if err := bindAndValidate(c, h.validator, &req); err != nil {
		return respondError(c, h.logger, err)
	}

	link, err := h.linkUsecase.CreateLink(ctx, custommw.ActorID(c), &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, link)
}

// GetLink returns a single link the caller may see
// @Router /api/links/{linkId} [get]
func (h *LinkHandler) GetLink(c echo.Context) error {
	ctx := c.Request().Context()

	linkID, err := parseUUIDParam(c, "linkId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	link, err := h.linkUsecase.GetLink(ctx, custommw.ActorID(c), linkID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, link)
}

// ListLinks returns the caller's own links, private ones included
// @Router /api/links [get]
func (h *LinkHandler) ListLinks(c echo.Context) error {
	ctx := c.Request().Context()

	links, err := h.linkUsecase.ListLinks(ctx, custommw.ActorID(c), parseListOptions(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, links)
}

// ListPublicLinks returns the public link feed
// @Router /api/links/public [get]
func (h *LinkHandler) ListPublicLinks(c echo.Context) error {
	ctx := c.Request().Context()

	links, err := h.linkUsecase.ListPublicLinks(ctx, parseListOptions(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, links)
}

// UpdateLink applies a partial update to an owned link
// @Router /api/links/{linkId} [patch]
func (h *LinkHandler) UpdateLink(c echo.Context) error {
	ctx := c.Request().Context()

	linkID, err := parseUUIDParam(c, "linkId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	var req domain.UpdateLinkRequest
	if err := bindAndValidate(c, h.validator, &req); err != nil {
		return respondError(c, h.logger, err)
	}

	link, err := h.linkUsecase.UpdateLink(ctx, custommw.ActorID(c), linkID, &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, link)
}

// DeleteLink removes an owned link
// @Router /api/links/{linkId} [delete]
func (h *LinkHandler) DeleteLink(c echo.Context) error {
	ctx := c.Request().Context()

	linkID, err := parseUUIDParam(c, "linkId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	if err := h.linkUsecase.DeleteLink(ctx, custommw.ActorID(c), linkID); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "link deleted"})
}

// RecordClick bumps a link's click counter and returns the new count
// @Router /api/links/{linkId}/click [post]
func (h *LinkHandler) RecordClick(c echo.Context) error {
	ctx := c.Request().Context()

	linkID, err := parseUUIDParam(c, "linkId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	clicks, err := h.linkUsecase.RecordClick(ctx, custommw.ActorID(c), linkID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"clicks": clicks})
}
