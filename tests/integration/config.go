package integration

import (
	"context"
	"fmt"
	"time"

	"linkspace/app/config"
	"linkspace/app/driver/kratos"
	"linkspace/app/driver/postgres"
	"linkspace/app/utils/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	// Test environment configuration
	TestPostgresHost     = "localhost"
	TestPostgresPort     = "5433"
	TestPostgresDB       = "linkspace_test_db"
	TestPostgresUser     = "linkspace_test_user"
	TestPostgresPassword = "test_password"
	TestPostgresSSLMode  = "disable"

	TestKratosPublicURL = "http://localhost:4433"
	TestKratosAdminURL  = "http://localhost:4434"

	TestServiceURL = "http://localhost:9600"
)

// TestConfig creates a configuration for integration tests.
func TestConfig() *config.Config {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		TestPostgresUser, TestPostgresPassword, TestPostgresHost, TestPostgresPort, TestPostgresDB, TestPostgresSSLMode)

	return &config.Config{
		Port:     "9600",
		Host:     "0.0.0.0",
		LogLevel: "debug",
		GoEnv:    "test",

		DatabaseURL:      dsn,
		DatabaseHost:     TestPostgresHost,
		DatabasePort:     TestPostgresPort,
		DatabaseName:     TestPostgresDB,
		DatabaseUser:     TestPostgresUser,
		DatabasePassword: TestPostgresPassword,
		DatabaseSSLMode:  TestPostgresSSLMode,

		// The test database user owns the schema, so the same DSN serves
		// both the application role and the service role.
		ServiceDatabaseURL: dsn,

		KratosPublicURL: TestKratosPublicURL,
		KratosAdminURL:  TestKratosAdminURL,

		AdminAPIKey: "integration-test-admin-key",

		RateLimitPerSecond: 100,
		RateLimitBurst:     200,
	}
}

// TestDatabaseConnection creates a database connection for integration tests.
func TestDatabaseConnection() (*pgxpool.Pool, error) {
	cfg := TestConfig()

	testLogger, err := logger.New("debug")
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := postgres.NewConnection(cfg, testLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	return db.Pool(), nil
}

// TestServiceDatabaseConnection creates a service-role connection, used for
// schema-level operations such as applying row level security policies.
func TestServiceDatabaseConnection() (*pgxpool.Pool, error) {
	cfg := TestConfig()

	testLogger, err := logger.New("debug")
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := postgres.NewServiceConnection(cfg, testLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create service database connection: %w", err)
	}

	return db.Pool(), nil
}

// TestKratosClient creates a Kratos client for integration tests.
func TestKratosClient() (*kratos.Client, error) {
	cfg := TestConfig()

	testLogger, err := logger.New("debug")
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return kratos.NewClient(cfg, testLogger)
}

// WaitForService waits for a service to become healthy.
func WaitForService(ctx context.Context, healthCheckFunc func(context.Context) error, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		if err := healthCheckFunc(ctx); err == nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(1 * time.Second):
			// Continue waiting
		}
	}

	return fmt.Errorf("service did not become healthy within %v", timeout)
}

// WaitForDatabase waits for the database to be ready.
func WaitForDatabase(ctx context.Context) error {
	return WaitForService(ctx, func(ctx context.Context) error {
		pool, err := TestDatabaseConnection()
		if err != nil {
			return err
		}
		defer pool.Close()

		return pool.Ping(ctx)
	}, 30*time.Second)
}

// WaitForKratos waits for Kratos to be ready.
func WaitForKratos(ctx context.Context) error {
	return WaitForService(ctx, func(ctx context.Context) error {
		client, err := TestKratosClient()
		if err != nil {
			return err
		}

		return client.HealthCheck(ctx)
	}, 60*time.Second)
}

// CleanupTestData removes rows created by integration tests. Junction rows
// and owned resources cascade from their parents, so deleting users covers
// most of it; global tags created by tests are matched by prefix.
func CleanupTestData(ctx context.Context) error {
	pool, err := TestDatabaseConnection()
	if err != nil {
		return err
	}
	defer pool.Close()

	cleanupQueries := []string{
		"DELETE FROM users WHERE email LIKE '%@integration.example.com'",
		"DELETE FROM tags WHERE name LIKE 'itest-%'",
	}

	for _, query := range cleanupQueries {
		if _, err := pool.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to execute cleanup query: %w", err)
		}
	}

	return nil
}
