package postgres

import (
	"context"
	"testing"
	"time"

	"linkspace/app/domain"
	"linkspace/app/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTagRepository(t *testing.T) (*TagRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewTagRepository(mockDB, testLogger).(*TagRepository)

	return repo, mockDB
}

func TestTagRepository_ConnectOrCreate_ReturnsExistingRow(t *testing.T) {
	repo, mockDB := createTestTagRepository(t)
	defer mockDB.Close()

	existingID := uuid.New()
	createdAt := time.Now().Add(-72 * time.Hour)

	// The conflict path hands back the original row: the freshly
	// generated candidate ID is discarded.
	mockDB.ExpectQuery("INSERT INTO tags").
		WithArgs(pgxmock.AnyArg(), "golang").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow(existingID, "golang", createdAt))

	tags, err := repo.ConnectOrCreate(context.Background(), []string{"golang"})

	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, existingID, tags[0].ID)
	assert.Equal(t, "golang", tags[0].Name)
	assert.Equal(t, createdAt, tags[0].CreatedAt)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestTagRepository_ConnectOrCreate_MixedNewAndExisting(t *testing.T) {
	repo, mockDB := createTestTagRepository(t)
	defer mockDB.Close()

	existingID := uuid.New()
	newID := uuid.New()
	now := time.Now()

	mockDB.ExpectQuery("INSERT INTO tags").
		WithArgs(pgxmock.AnyArg(), "golang").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow(existingID, "golang", now.Add(-time.Hour)))
	mockDB.ExpectQuery("INSERT INTO tags").
		WithArgs(pgxmock.AnyArg(), "postgres").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow(newID, "postgres", now))

	tags, err := repo.ConnectOrCreate(context.Background(), []string{"golang", "postgres"})

	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, existingID, tags[0].ID)
	assert.Equal(t, newID, tags[1].ID)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestTagRepository_ConnectOrCreate_DatabaseError(t *testing.T) {
	repo, mockDB := createTestTagRepository(t)
	defer mockDB.Close()

	mockDB.ExpectQuery("INSERT INTO tags").
		WithArgs(pgxmock.AnyArg(), "golang").
		WillReturnError(pgx.ErrTxClosed)

	tags, err := repo.ConnectOrCreate(context.Background(), []string{"golang"})

	assert.Nil(t, tags)
	assert.Error(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestTagRepository_GetByName_NotFound(t *testing.T) {
	repo, mockDB := createTestTagRepository(t)
	defer mockDB.Close()

	mockDB.ExpectQuery("SELECT (.+) FROM tags").
		WithArgs("nope").
		WillReturnError(pgx.ErrNoRows)

	tag, err := repo.GetByName(context.Background(), "nope")

	assert.Nil(t, tag)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestTagRepository_ListLinksByTag_FiltersVisibility(t *testing.T) {
	repo, mockDB := createTestTagRepository(t)
	defer mockDB.Close()

	tagID := uuid.New()
	viewerID := uuid.New()
	linkID := uuid.New()
	now := time.Now()

	mockDB.ExpectQuery("SELECT (.+) FROM links l").
		WithArgs(tagID, viewerID, 20, 0).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "url", "title", "description", "image", "clicks", "is_public", "user_id", "created_at", "updated_at",
		}).AddRow(linkID, "https://go.dev", "Go", "", "", 0, true, uuid.New(), now, now))

	links, err := repo.ListLinksByTag(context.Background(), tagID, viewerID, 20, 0)

	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, linkID, links[0].ID)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
