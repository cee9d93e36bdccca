package middleware

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"linkspace/app/config"
	"linkspace/app/domain"
	mock_port "linkspace/app/mocks"
	apperrors "linkspace/app/utils/errors"
)

func newAuthMiddlewareTest(t *testing.T, cfg *config.Config) (*AuthMiddleware, *mock_port.MockIdentityGateway, *mock_port.MockUserUsecase) {
	t.Helper()

	ctrl := gomock.NewController(t)
	gateway := mock_port.NewMockIdentityGateway(ctrl)
	userUsecase := mock_port.NewMockUserUsecase(ctrl)

	if cfg == nil {
		cfg = &config.Config{}
	}

	mw := NewAuthMiddleware(gateway, userUsecase, cfg, slog.Default())
	return mw, gateway, userUsecase
}

func invoke(mw echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, *domain.RequestContext) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured *domain.RequestContext
	handler := mw(func(c echo.Context) error {
		captured = RequestContextFrom(c)
		return c.NoContent(http.StatusOK)
	})
	_ = handler(c)
	return rec, captured
}

func activeSession(userID uuid.UUID) *domain.Session {
	return &domain.Session{
		ID:     "sess-1",
		Active: true,
		Identity: &domain.Identity{
			ID: userID,
			Emails: []domain.IdentityEmail{
				{Address: "alice@example.com", Verified: true, Primary: true},
			},
		},
	}
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	t.Run("cookie session resolves and syncs", func(t *testing.T) {
		mw, gateway, userUsecase := newAuthMiddlewareTest(t, nil)

		userID := uuid.New()
		session := activeSession(userID)
		gateway.EXPECT().WhoAmI(gomock.Any(), gomock.Any()).Return(session, nil)
		userUsecase.EXPECT().SyncUser(gomock.Any(), session.Identity).
			Return(&domain.User{ID: userID, Email: "alice@example.com"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/links", nil)
		req.Header.Set("Cookie", "ory_kratos_session=token123")

		rec, rc := invoke(mw.RequireAuth(), req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, rc)
		assert.Equal(t, userID, rc.UserID)
		require.NotNil(t, rc.User)
		assert.Equal(t, "alice@example.com", rc.Email)
	})

	t.Run("bearer token uses session lookup", func(t *testing.T) {
		mw, gateway, userUsecase := newAuthMiddlewareTest(t, nil)

		userID := uuid.New()
		session := activeSession(userID)
		gateway.EXPECT().GetSession(gomock.Any(), "apitoken").Return(session, nil)
		userUsecase.EXPECT().SyncUser(gomock.Any(), session.Identity).
			Return(&domain.User{ID: userID}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/links", nil)
		req.Header.Set("Authorization", "Bearer apitoken")

		rec, rc := invoke(mw.RequireAuth(), req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, rc)
		assert.Equal(t, userID, rc.UserID)
	})

	t.Run("no credentials rejected", func(t *testing.T) {
		mw, _, _ := newAuthMiddlewareTest(t, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/links", nil)
		rec, rc := invoke(mw.RequireAuth(), req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, rc)
	})

	t.Run("invalid session rejected", func(t *testing.T) {
		mw, gateway, _ := newAuthMiddlewareTest(t, nil)

		gateway.EXPECT().GetSession(gomock.Any(), "badtoken").
			Return(nil, apperrors.ErrInvalidSession)

		req := httptest.NewRequest(http.MethodGet, "/api/links", nil)
		req.Header.Set("X-Session-Token", "badtoken")

		rec, _ := invoke(mw.RequireAuth(), req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("sync failure degrades instead of failing", func(t *testing.T) {
		mw, gateway, userUsecase := newAuthMiddlewareTest(t, nil)

		userID := uuid.New()
		session := activeSession(userID)
		gateway.EXPECT().WhoAmI(gomock.Any(), gomock.Any()).Return(session, nil)
		userUsecase.EXPECT().SyncUser(gomock.Any(), session.Identity).
			Return(nil, apperrors.NewDatabaseError(fmt.Errorf("connection refused")))

		req := httptest.NewRequest(http.MethodGet, "/api/links", nil)
		req.Header.Set("Cookie", "ory_kratos_session=token123")

		rec, rc := invoke(mw.RequireAuth(), req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, rc)
		assert.Equal(t, userID, rc.UserID)
		assert.Nil(t, rc.User)
	})
}

func TestAuthMiddleware_OptionalAuth(t *testing.T) {
	t.Run("anonymous request passes through", func(t *testing.T) {
		mw, _, _ := newAuthMiddlewareTest(t, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/links/public", nil)
		rec, rc := invoke(mw.OptionalAuth(), req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, rc)
	})

	t.Run("bad credential still rejected", func(t *testing.T) {
		mw, gateway, _ := newAuthMiddlewareTest(t, nil)

		gateway.EXPECT().GetSession(gomock.Any(), "expired").
			Return(nil, apperrors.ErrInvalidSession)

		req := httptest.NewRequest(http.MethodGet, "/api/links/public", nil)
		req.Header.Set("X-Session-Token", "expired")

		rec, _ := invoke(mw.OptionalAuth(), req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	t.Run("matching admin key admitted", func(t *testing.T) {
		mw, _, _ := newAuthMiddlewareTest(t, &config.Config{AdminAPIKey: "super-secret"})

		req := httptest.NewRequest(http.MethodPost, "/api/admin/apply-rls", nil)
		req.Header.Set("X-Admin-Key", "super-secret")

		rec, _ := invoke(mw.RequireAdmin(), req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong admin key rejected", func(t *testing.T) {
		mw, _, _ := newAuthMiddlewareTest(t, &config.Config{AdminAPIKey: "super-secret"})

		req := httptest.NewRequest(http.MethodPost, "/api/admin/apply-rls", nil)
		req.Header.Set("X-Admin-Key", "guess")

		rec, _ := invoke(mw.RequireAdmin(), req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("admin key in request body admitted", func(t *testing.T) {
		mw, _, _ := newAuthMiddlewareTest(t, &config.Config{AdminAPIKey: "super-secret"})

		req := httptest.NewRequest(http.MethodPost, "/api/admin/apply-rls",
			strings.NewReader(`{"adminKey":"super-secret"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		rec, _ := invoke(mw.RequireAdmin(), req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong admin key in body rejected", func(t *testing.T) {
		mw, _, _ := newAuthMiddlewareTest(t, &config.Config{AdminAPIKey: "super-secret"})

		req := httptest.NewRequest(http.MethodPost, "/api/admin/apply-rls",
			strings.NewReader(`{"adminKey":"guess"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		rec, _ := invoke(mw.RequireAdmin(), req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("body survives the admin key check", func(t *testing.T) {
		mw, _, _ := newAuthMiddlewareTest(t, &config.Config{AdminAPIKey: "super-secret"})

		req := httptest.NewRequest(http.MethodPost, "/api/admin/apply-rls",
			strings.NewReader(`{"adminKey":"super-secret"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		var seen string
		handler := mw.RequireAdmin()(func(c echo.Context) error {
			body, err := io.ReadAll(c.Request().Body)
			require.NoError(t, err)
			seen = string(body)
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"adminKey":"super-secret"}`, seen)
	})

	t.Run("configured admin user admitted", func(t *testing.T) {
		adminID := uuid.New()
		cfg := &config.Config{AdminUserIDs: []string{adminID.String()}}
		mw, gateway, userUsecase := newAuthMiddlewareTest(t, cfg)

		session := activeSession(adminID)
		gateway.EXPECT().GetSession(gomock.Any(), "admintoken").Return(session, nil)
		userUsecase.EXPECT().SyncUser(gomock.Any(), session.Identity).
			Return(&domain.User{ID: adminID}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/apply-rls", nil)
		req.Header.Set("X-Session-Token", "admintoken")

		rec, rc := invoke(mw.RequireAdmin(), req)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, rc)
		assert.True(t, rc.Admin)
	})

	t.Run("ordinary user forbidden", func(t *testing.T) {
		mw, gateway, userUsecase := newAuthMiddlewareTest(t, &config.Config{})

		userID := uuid.New()
		session := activeSession(userID)
		gateway.EXPECT().GetSession(gomock.Any(), "usertoken").Return(session, nil)
		userUsecase.EXPECT().SyncUser(gomock.Any(), session.Identity).
			Return(&domain.User{ID: userID}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/admin/apply-rls", nil)
		req.Header.Set("X-Session-Token", "usertoken")

		rec, _ := invoke(mw.RequireAdmin(), req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("anonymous rejected", func(t *testing.T) {
		mw, _, _ := newAuthMiddlewareTest(t, &config.Config{})

		req := httptest.NewRequest(http.MethodPost, "/api/admin/apply-rls", nil)
		rec, _ := invoke(mw.RequireAdmin(), req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
