package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"linkspace/app/port"
	custommw "linkspace/app/rest/middleware"
)

// TagHandler handles tag HTTP requests
type TagHandler struct {
	tagUsecase port.TagUsecase
	logger     *slog.Logger
}

// NewTagHandler creates a new tag handler
func NewTagHandler(tagUsecase port.TagUsecase, logger *slog.Logger) *TagHandler {
	return &TagHandler{
		tagUsecase: tagUsecase,
		logger:     logger,
	}
}

// ListTags returns the global tag list
// @Router /api/tags [get]
func (h *TagHandler) ListTags(c echo.Context) error {
	ctx := c.Request().Context()

	tags, err := h.tagUsecase.ListTags(ctx, parseListOptions(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, tags)
}

// ListLinksByTag returns visible links carrying the named tag
// @Router /api/tags/{name}/links [get]
func (h *TagHandler) ListLinksByTag(c echo.Context) error {
	ctx := c.Request().Context()

	links, err := h.tagUsecase.ListLinksByTag(ctx, custommw.ActorID(c), c.Param("name"), parseListOptions(c))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, links)
}
