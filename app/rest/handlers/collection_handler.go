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

// CollectionHandler handles collection HTTP requests
type CollectionHandler struct {
	collectionUsecase port.CollectionUsecase
	validator         *validator.Validator
	logger            *slog.Logger
}

// NewCollectionHandler creates a new collection handler
func NewCollectionHandler(collectionUsecase port.CollectionUsecase, v *validator.Validator, logger *slog.Logger) *CollectionHandler {
	return &CollectionHandler{
		collectionUsecase: collectionUsecase,
		validator:         v,
		logger:            logger,
	}
}

// CreateCollection creates a collection for the authenticated user
// @Router /api/collections [post]
func (h *CollectionHandler) CreateCollection(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.CreateCollectionRequest
	if err := bindAndValidate(c, h.validator, &req); err != nil {
		return respondError(c, h.logger, err)
	}

	collection, err := h.collectionUsecase.CreateCollection(ctx, custommw.ActorID(c), &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, collection)
}

// GetCollection returns a collection the caller may see
// @Router /api/collections/{collectionId} [get]
func (h *CollectionHandler) GetCollection(c echo.Context) error {
	ctx := c.Request().Context()

	collectionID, err := parseUUIDParam(c, "collectionId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	collection, err := h.collectionUsecase.GetCollection(ctx, custommw.ActorID(c), collectionID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, collection)
}

// ListCollections returns the caller's own collections
// @Router /api/collections [get]
func (h *CollectionHandler) ListCollections(c echo.Context) error {
	ctx := c.Request().Context()

	collections, err := h.collectionUsecase.ListCollections(ctx, custommw.ActorID(c), parseListOptions(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, collections)
}

// ListPublicCollections returns publicly shared collections
// @Router /api/collections/public [get]
func (h *CollectionHandler) ListPublicCollections(c echo.Context) error {
	ctx := c.Request().Context()

	collections, err := h.collectionUsecase.ListPublicCollections(ctx, parseListOptions(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, collections)
}

// UpdateCollection applies a partial update to an owned collection
// @Router /api/collections/{collectionId} [patch]
func (h *CollectionHandler) UpdateCollection(c echo.Context) error {
	ctx := c.Request().Context()

	collectionID, err := parseUUIDParam(c, "collectionId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	var req domain.UpdateCollectionRequest
	if err := bindAndValidate(c, h.validator, &req); err != nil {
		return respondError(c, h.logger, err)
	}

	collection, err := h.collectionUsecase.UpdateCollection(ctx, custommw.ActorID(c), collectionID, &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, collection)
}

// DeleteCollection removes an owned collection
// @Router /api/collections/{collectionId} [delete]
func (h *CollectionHandler) DeleteCollection(c echo.Context) error {
	ctx := c.Request().Context()

	collectionID, err := parseUUIDParam(c, "collectionId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	if err := h.collectionUsecase.DeleteCollection(ctx, custommw.ActorID(c), collectionID); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "collection deleted"})
}

// AddLink adds a link to an owned collection
// @Router /api/collections/{collectionId}/links [post]
func (h *CollectionHandler) AddLink(c echo.Context) error {
	ctx := c.Request().Context()

	collectionID, err := parseUUIDParam(c, "collectionId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	var req domain.CollectionLinkRequest
	if err := bindAndValidate(c, h.validator, &req); err != nil {
		return respondError(c, h.logger, err)
	}

	if err := h.collectionUsecase.AddLink(ctx, custommw.ActorID(c), collectionID, req.LinkID); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "link added to collection"})
}

// RemoveLink removes a link from an owned collection
// @Router /api/collections/{collectionId}/links/{linkId} [delete]
func (h *CollectionHandler) RemoveLink(c echo.Context) error {
	ctx := c.Request().Context()

	collectionID, err := parseUUIDParam(c, "collectionId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	linkID, err := parseUUIDParam(c, "linkId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	if err := h.collectionUsecase.RemoveLink(ctx, custommw.ActorID(c), collectionID, linkID); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "link removed from collection"})
}

// ListCollectionLinks returns the links in a collection the caller may see
// @Router /api/collections/{collectionId}/links [get]
func (h *CollectionHandler) ListCollectionLinks(c echo.Context) error {
	ctx := c.Request().Context()

	collectionID, err := parseUUIDParam(c, "collectionId")
	if err != nil {
		return respondError(c, h.logger, err)
	}

	links, err := h.collectionUsecase.ListCollectionLinks(ctx, custommw.ActorID(c), collectionID, parseListOptions(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, links)
}
