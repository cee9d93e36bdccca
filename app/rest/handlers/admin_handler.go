package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"linkspace/app/port"
)

// AdminHandler handles administrative HTTP requests
type AdminHandler struct {
	policyUsecase port.PolicyUsecase
	logger        *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(policyUsecase port.PolicyUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		policyUsecase: policyUsecase,
		logger:        logger,
	}
}

// ApplyRLS regenerates and applies the row level security policies.
// Idempotent, so safe to call after every migration.
// @Router /api/admin/apply-rls [post]
func (h *AdminHandler) ApplyRLS(c echo.Context) error {
	ctx := c.Request().Context()

	tables, err := h.policyUsecase.ApplyPolicies(ctx)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	h.logger.Info("row level security applied via admin API",
		"tables", len(tables), "ip", c.RealIP())

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "row level security policies applied",
		"tables":  tables,
	})
}
