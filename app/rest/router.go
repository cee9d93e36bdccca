package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"linkspace/app/config"
	"linkspace/app/port"
	"linkspace/app/rest/handlers"
	custommw "linkspace/app/rest/middleware"
	"linkspace/app/utils/validator"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger            *slog.Logger
	Config            *config.Config
	Validator         *validator.Validator
	IdentityGateway   port.IdentityGateway
	UserUsecase       port.UserUsecase
	LinkUsecase       port.LinkUsecase
	CollectionUsecase port.CollectionUsecase
	TagUsecase        port.TagUsecase
	PolicyUsecase     port.PolicyUsecase
	DBHealth          handlers.Pinger
	IdentityHealth    handlers.Pinger
	EnableDebug       bool
}

// NewRouter creates and configures the Echo router
func NewRouter(rc RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = rc.EnableDebug

	// Create handlers
	linkHandler := handlers.NewLinkHandler(rc.LinkUsecase, rc.Validator, rc.Logger)
	collectionHandler := handlers.NewCollectionHandler(rc.CollectionUsecase, rc.Validator, rc.Logger)
	tagHandler := handlers.NewTagHandler(rc.TagUsecase, rc.Logger)
	userHandler := handlers.NewUserHandler(rc.UserUsecase, rc.Validator, rc.Logger)
	adminHandler := handlers.NewAdminHandler(rc.PolicyUsecase, rc.Logger)
	healthHandler := handlers.NewHealthHandler(rc.DBHealth, rc.IdentityHealth, rc.Logger)

	// Create middleware
	authMiddleware := custommw.NewAuthMiddleware(rc.IdentityGateway, rc.UserUsecase, rc.Config, rc.Logger)
	rateLimiter := custommw.NewRateLimiter(rc.Config.RateLimitPerSecond, rc.Config.RateLimitBurst)

	// Global middleware
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	api := e.Group("/api")

	// Health endpoints (no auth required)
	api.GET("/health", healthHandler.HealthCheck)
	api.GET("/health/ready", healthHandler.ReadinessCheck)
	api.GET("/health/live", healthHandler.LivenessCheck)

	// Public surface. Optional auth so owners see their private
	// resources through the same endpoints.
	public := api.Group("")
	public.Use(authMiddleware.OptionalAuth())
	public.GET("/links/public", linkHandler.ListPublicLinks)
	public.GET("/links/:linkId", linkHandler.GetLink)
	public.POST("/links/:linkId/click", linkHandler.RecordClick)
	public.GET("/collections/public", collectionHandler.ListPublicCollections)
	public.GET("/collections/:collectionId", collectionHandler.GetCollection)
	public.GET("/collections/:collectionId/links", collectionHandler.ListCollectionLinks)
	public.GET("/tags", tagHandler.ListTags)
	public.GET("/tags/:name/links", tagHandler.ListLinksByTag)
	public.GET("/users/:userId", userHandler.GetProfile)
	public.GET("/users/:userId/following", userHandler.ListFollowing)
	public.GET("/users/:userId/followers", userHandler.ListFollowers)

	// Authenticated surface
	authed := api.Group("")
	authed.Use(authMiddleware.RequireAuth())
	authed.POST("/links", linkHandler.CreateLink)
	authed.GET("/links", linkHandler.ListLinks)
	authed.PATCH("/links/:linkId", linkHandler.UpdateLink)
	authed.DELETE("/links/:linkId", linkHandler.DeleteLink)
	authed.POST("/collections", collectionHandler.CreateCollection)
	authed.GET("/collections", collectionHandler.ListCollections)
	authed.PATCH("/collections/:collectionId", collectionHandler.UpdateCollection)
	authed.DELETE("/collections/:collectionId", collectionHandler.DeleteCollection)
	authed.POST("/collections/:collectionId/links", collectionHandler.AddLink)
	authed.DELETE("/collections/:collectionId/links/:linkId", collectionHandler.RemoveLink)
	authed.GET("/users/me", userHandler.Me)
	authed.PATCH("/users/me", userHandler.UpdateProfile)
	authed.POST("/users/:userId/follow", userHandler.FollowUser)
	authed.DELETE("/users/:userId/follow", userHandler.UnfollowUser)

	// Admin surface
	admin := api.Group("/admin")
	admin.Use(authMiddleware.RequireAdmin())
	admin.POST("/apply-rls", adminHandler.ApplyRLS)

	return e
}
