package middleware

import (
	"bytes"
	"crypto/subtle"
	"encoding/json"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"linkspace/app/config"
	"linkspace/app/domain"
	"linkspace/app/port"
	apperrors "linkspace/app/utils/errors"
)

const requestContextKey = "request_context"

// AuthMiddleware resolves the caller's identity against the identity
// provider and reconciles it into the local users table.
type AuthMiddleware struct {
	gateway     port.IdentityGateway
	userUsecase port.UserUsecase
	cfg         *config.Config
	logger      *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(
	gateway port.IdentityGateway,
	userUsecase port.UserUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) *AuthMiddleware {
	return &AuthMiddleware{
		gateway:     gateway,
		userUsecase: userUsecase,
		cfg:         cfg,
		logger:      logger.With("component", "auth_middleware"),
	}
}

// RequireAuth rejects requests without a valid session.
func (m *AuthMiddleware) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rc, err := m.resolve(c)
			if err != nil {
				return writeError(c, err)
			}
			if rc == nil {
				return writeError(c, apperrors.ErrUnauthorized)
			}

			c.Set(requestContextKey, rc)
			return next(c)
		}
	}
}

// OptionalAuth resolves the session when one is present and lets
// anonymous requests through untouched. An invalid session is still
// rejected: silently downgrading a bad credential to anonymous would
// mask client bugs.
func (m *AuthMiddleware) OptionalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rc, err := m.resolve(c)
			if err != nil {
				return writeError(c, err)
			}
			if rc != nil {
				c.Set(requestContextKey, rc)
			}
			return next(c)
		}
	}
}

// RequireAdmin admits requests carrying the admin API key (JSON body
// field adminKey, or an X-Admin-Key header), or an authenticated
// session belonging to a configured admin user.
func (m *AuthMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if key := m.extractAdminKey(c); key != "" {
				if m.cfg.AdminAPIKey != "" &&
					subtle.ConstantTimeCompare([]byte(key), []byte(m.cfg.AdminAPIKey)) == 1 {
					return next(c)
				}
				m.logger.Warn("admin key rejected", "ip", c.RealIP())
				return writeError(c, apperrors.ErrInvalidAdminKey)
			}

			rc, err := m.resolve(c)
			if err != nil {
				return writeError(c, err)
			}
			if rc == nil {
				return writeError(c, apperrors.ErrUnauthorized)
			}
			if !rc.Admin {
				m.logger.Warn("admin access denied", "user_id", rc.UserID, "ip", c.RealIP())
				return writeError(c, apperrors.ErrForbidden)
			}

			c.Set(requestContextKey, rc)
			return next(c)
		}
	}
}

// extractAdminKey returns the admin key presented with the request.
// The JSON body form is the primary contract; the header is accepted
// for clients that keep their bodies clean. The body is restored so a
// later bind still sees it.
func (m *AuthMiddleware) extractAdminKey(c echo.Context) string {
	if key := c.Request().Header.Get("X-Admin-Key"); key != "" {
		return key
	}

	req := c.Request()
	if req.Body == nil {
		return ""
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return ""
	}
	req.Body = io.NopCloser(bytes.NewReader(body))

	var payload struct {
		AdminKey string `json:"adminKey"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	return payload.AdminKey
}

// resolve validates the request's credentials and syncs the user. A
// nil context with nil error means no credentials were presented.
func (m *AuthMiddleware) resolve(c echo.Context) (*domain.RequestContext, error) {
	ctx := c.Request().Context()

	var session *domain.Session
	var err error

	switch cookieHeader, token := m.extractCredentials(c); {
	case cookieHeader != "":
		session, err = m.gateway.WhoAmI(ctx, cookieHeader)
	case token != "":
		session, err = m.gateway.GetSession(ctx, token)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rc := &domain.RequestContext{
		UserID: session.Identity.ID,
		Admin:  m.cfg.IsAdmin(session.Identity.ID),
	}

	// Reconcile the identity into the local users table. A sync
	// failure degrades the request instead of failing it: the caller
	// is authenticated either way.
	user, err := m.userUsecase.SyncUser(ctx, session.Identity)
	if err != nil {
		m.logger.Warn("user sync failed, continuing degraded",
			"user_id", session.Identity.ID, "error", err)
		return rc, nil
	}

	rc.User = user
	rc.Email = user.Email
	rc.Name = user.Name
	return rc, nil
}

// extractCredentials returns the raw cookie header for browser
// sessions, or a session token for API clients.
func (m *AuthMiddleware) extractCredentials(c echo.Context) (cookieHeader, token string) {
	if header := c.Request().Header.Get("Cookie"); header != "" && strings.Contains(header, "ory_kratos_session") {
		return header, ""
	}

	if auth := c.Request().Header.Get("Authorization"); auth != "" {
		if strings.HasPrefix(auth, "Bearer ") {
			return "", strings.TrimPrefix(auth, "Bearer ")
		}
		return "", auth
	}

	return "", c.Request().Header.Get("X-Session-Token")
}

// RequestContextFrom returns the resolved caller context, or nil for
// anonymous requests.
func RequestContextFrom(c echo.Context) *domain.RequestContext {
	rc, _ := c.Get(requestContextKey).(*domain.RequestContext)
	return rc
}

// ActorID returns the caller's user ID, or uuid.Nil for anonymous
// requests.
func ActorID(c echo.Context) uuid.UUID {
	if rc := RequestContextFrom(c); rc != nil {
		return rc.UserID
	}
	return uuid.Nil
}

// writeError renders an error in the API's error envelope.
func writeError(c echo.Context, err error) error {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.NewInternalError(err)
	}
	return c.JSON(appErr.StatusCode, map[string]interface{}{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}
