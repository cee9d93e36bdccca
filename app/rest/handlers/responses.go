package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"linkspace/app/domain"
	apperrors "linkspace/app/utils/errors"
	"linkspace/app/utils/validator"
)

// ErrorResponse is the error envelope for every non-2xx response.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details string            `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// respondError maps an error to the API envelope. Unexpected errors
// are logged and hidden behind a generic 500.
func respondError(c echo.Context, logger *slog.Logger, err error) error {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.NewInternalError(err)
	}

	if appErr.StatusCode >= http.StatusInternalServerError {
		logger.Error("request failed",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"error", err)
	}

	return c.JSON(appErr.StatusCode, ErrorResponse{
		Code:    string(appErr.Code),
		Message: appErr.Message,
		Details: appErr.Details,
		Fields:  appErr.Fields,
	})
}

// bindAndValidate decodes the JSON body and runs struct validation,
// returning field-level errors the client can render.
func bindAndValidate(c echo.Context, v *validator.Validator, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperrors.New(apperrors.ErrCodeBadRequest, "request body could not be parsed")
	}

	if err := v.Validate(req); err != nil {
		var valErr *validator.ValidationError
		if errors.As(err, &valErr) {
			return apperrors.NewValidationError(valErr.Errors)
		}
		return apperrors.Wrap(apperrors.ErrCodeValidationFailed, "validation failed", err)
	}

	return nil
}

// parseUUIDParam parses a path parameter as a UUID.
func parseUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperrors.Newf(apperrors.ErrCodeBadRequest, "invalid %s", name)
	}
	return id, nil
}

// parseListOptions reads limit/offset query parameters. Out-of-range
// values are normalized by the usecase layer.
func parseListOptions(c echo.Context) domain.ListOptions {
	opts := domain.ListOptions{}

	if raw := c.QueryParam("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			opts.Limit = limit
		}
	}
	if raw := c.QueryParam("offset"); raw != "" {
		if offset, err := strconv.Atoi(raw); err == nil {
			opts.Offset = offset
		}
	}

	return opts
}
