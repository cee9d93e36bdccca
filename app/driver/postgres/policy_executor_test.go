package postgres

import (
	"context"
	"testing"

	"linkspace/app/rls"
	"linkspace/app/utils/logger"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPolicyExecutor(t *testing.T) (*PolicyExecutor, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	executor := NewPolicyExecutor(mockDB, testLogger).(*PolicyExecutor)

	return executor, mockDB
}

func TestPolicyExecutor_Apply(t *testing.T) {
	executor, mockDB := createTestPolicyExecutor(t)
	defer mockDB.Close()

	script := rls.New().Script()

	mockDB.ExpectExec("CREATE OR REPLACE FUNCTION requesting_user_id").
		WillReturnResult(pgxmock.NewResult("DO", 0))

	err := executor.Apply(context.Background(), script)

	assert.NoError(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestPolicyExecutor_Apply_DatabaseError(t *testing.T) {
	executor, mockDB := createTestPolicyExecutor(t)
	defer mockDB.Close()

	mockDB.ExpectExec("CREATE OR REPLACE FUNCTION requesting_user_id").
		WillReturnError(pgx.ErrTxClosed)

	err := executor.Apply(context.Background(), rls.New().Script())

	assert.Error(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
