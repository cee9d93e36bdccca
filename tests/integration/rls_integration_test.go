package integration

import (
	"context"
	"testing"

	"linkspace/app/driver/postgres"
	"linkspace/app/rls"
	"linkspace/app/usecase"
	"linkspace/app/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowLevelSecurityIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	require.NoError(t, WaitForDatabase(ctx), "Database should be ready")

	pool, err := TestServiceDatabaseConnection()
	require.NoError(t, err, "Should connect with service role")
	defer pool.Close()

	testLogger, err := logger.New("debug")
	require.NoError(t, err, "Should create logger")

	executor := postgres.NewPolicyExecutor(pool, testLogger)
	policyUsecase := usecase.NewPolicyUsecase(rls.New(), executor, testLogger)

	tables, err := policyUsecase.ApplyPolicies(ctx)
	require.NoError(t, err, "Should apply policies")
	assert.Contains(t, tables, "links")
	assert.Contains(t, tables, "collections")

	// Applying twice must be a no-op, not an error.
	_, err = policyUsecase.ApplyPolicies(ctx)
	require.NoError(t, err, "Reapplying policies should be idempotent")

	t.Run("Session resolver function is installed", func(t *testing.T) {
		var exists bool
		err := pool.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM pg_proc WHERE proname = 'requesting_user_id')",
		).Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("Policies exist for every covered table", func(t *testing.T) {
		for _, table := range tables {
			var count int
			err := pool.QueryRow(ctx,
				"SELECT COUNT(*) FROM pg_policies WHERE tablename = $1", table,
			).Scan(&count)
			require.NoError(t, err)
			assert.Positive(t, count, "table %s should carry at least one policy", table)
		}
	})

	t.Run("Row level security is enabled", func(t *testing.T) {
		for _, table := range tables {
			var enabled bool
			err := pool.QueryRow(ctx,
				"SELECT relrowsecurity FROM pg_class WHERE relname = $1", table,
			).Scan(&enabled)
			require.NoError(t, err)
			assert.True(t, enabled, "table %s should have row level security enabled", table)
		}
	})
}
