package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"linkspace/app/config"
	"linkspace/app/driver/kratos"
	"linkspace/app/driver/postgres"
	"linkspace/app/gateway"
	"linkspace/app/port"
	"linkspace/app/rest"
	"linkspace/app/rls"
	"linkspace/app/usecase"
	"linkspace/app/utils/validator"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	ServiceDB    *postgres.DB
	KratosClient *kratos.Client

	// Gateways
	IdentityGateway port.IdentityGateway

	// Usecases
	UserUsecase       port.UserUsecase
	LinkUsecase       port.LinkUsecase
	CollectionUsecase port.CollectionUsecase
	TagUsecase        port.TagUsecase
	PolicyUsecase     port.PolicyUsecase

	Validator *validator.Validator
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	// Application connection, subject to row level security
	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Service-role connection for policy application
	container.ServiceDB, err = postgres.NewServiceConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize service database: %w", err)
	}

	container.KratosClient, err = kratos.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kratos client: %w", err)
	}

	// Repositories
	userRepository := postgres.NewUserRepository(container.DB.Pool(), logger)
	linkRepository := postgres.NewLinkRepository(container.DB.Pool(), logger)
	collectionRepository := postgres.NewCollectionRepository(container.DB.Pool(), logger)
	tagRepository := postgres.NewTagRepository(container.DB.Pool(), logger)
	policyExecutor := postgres.NewPolicyExecutor(container.ServiceDB.Pool(), logger)

	// Gateways
	identityClient := kratos.NewClientAdapter(container.KratosClient, logger)
	container.IdentityGateway = gateway.NewIdentityGateway(identityClient, logger)

	// Usecases
	container.UserUsecase = usecase.NewUserUsecase(userRepository, logger)
	container.LinkUsecase = usecase.NewLinkUsecase(linkRepository, tagRepository, logger)
	container.CollectionUsecase = usecase.NewCollectionUsecase(collectionRepository, linkRepository, logger)
	container.TagUsecase = usecase.NewTagUsecase(tagRepository, logger)
	container.PolicyUsecase = usecase.NewPolicyUsecase(rls.New(), policyExecutor, logger)

	container.Validator = validator.New()

	logger.Info("container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:            c.Logger,
		Config:            c.Config,
		Validator:         c.Validator,
		IdentityGateway:   c.IdentityGateway,
		UserUsecase:       c.UserUsecase,
		LinkUsecase:       c.LinkUsecase,
		CollectionUsecase: c.CollectionUsecase,
		TagUsecase:        c.TagUsecase,
		PolicyUsecase:     c.PolicyUsecase,
		DBHealth:          c.DB,
		IdentityHealth:    c.KratosClient,
		EnableDebug:       c.Config.LogLevel == "debug",
	}

	return rest.NewRouter(routerConfig)
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}
	if c.ServiceDB != nil {
		c.ServiceDB.Close()
	}

	// The Kratos client needs no explicit cleanup.

	c.Logger.Info("container closed")
	return nil
}
