package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"linkspace/app/config"
	"linkspace/app/driver/postgres"
	"linkspace/app/rls"
	"linkspace/app/usecase"
	"linkspace/app/utils/database"
	"linkspace/app/utils/logger"
	"linkspace/app/utils/migration"
)

//go:embed migrations
var migrationsFS embed.FS

func main() {
	var (
		command = flag.String("command", "up", "Migration command (up, down, status, apply-rls)")
		steps   = flag.String("steps", "0", "Number of steps for down migration")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	// Load environment variables
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Could not load .env file", "error", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logLevel := cfg.LogLevel
	if *verbose {
		logLevel = "debug"
	}

	appLogger, err := logger.New(logLevel)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	// Migrations run on the service-role connection, which owns the
	// schema and is not subject to row level security.
	dbConn, err := database.NewConnectionFromDSN(cfg.ServiceDatabaseDSN(), appLogger)
	if err != nil {
		appLogger.Error("Failed to create database connection", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create migrator
	migrator := migration.NewMigrator(dbConn.DB(), appLogger, migrationsFS)

	// Execute command
	switch *command {
	case "up":
		if err := migrator.Up(); err != nil {
			appLogger.Error("Migration up failed", "error", err)
			os.Exit(1)
		}
		appLogger.Info("All migrations applied successfully")

	case "down":
		stepCount, err := strconv.Atoi(*steps)
		if err != nil {
			appLogger.Error("Invalid steps value", "steps", *steps, "error", err)
			os.Exit(1)
		}

		if stepCount <= 0 {
			stepCount = 1
		}

		for i := 0; i < stepCount; i++ {
			if err := migrator.Down(); err != nil {
				appLogger.Error("Migration down failed", "error", err, "step", i+1)
				os.Exit(1)
			}
		}
		appLogger.Info("Migrations rolled back successfully", "steps", stepCount)

	case "status":
		if err := migrator.Status(); err != nil {
			appLogger.Error("Migration status failed", "error", err)
			os.Exit(1)
		}

	case "apply-rls":
		if err := applyPolicies(cfg, appLogger); err != nil {
			appLogger.Error("Applying row level security failed", "error", err)
			os.Exit(1)
		}
		appLogger.Info("Row level security policies applied")

	default:
		appLogger.Error("Unknown command", "command", *command)
		fmt.Println("Available commands: up, down, status, apply-rls")
		os.Exit(1)
	}
}

// applyPolicies regenerates and applies the RLS policy script, the
// same operation the admin API exposes.
func applyPolicies(cfg *config.Config, appLogger *slog.Logger) error {
	serviceDB, err := postgres.NewServiceConnection(cfg, appLogger)
	if err != nil {
		return err
	}
	defer serviceDB.Close()

	executor := postgres.NewPolicyExecutor(serviceDB.Pool(), appLogger)
	policyUsecase := usecase.NewPolicyUsecase(rls.New(), executor, appLogger)

	_, err = policyUsecase.ApplyPolicies(context.Background())
	return err
}
