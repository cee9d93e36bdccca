package integration

import (
	"context"
	"testing"
	"time"

	"linkspace/app/domain"
	"linkspace/app/driver/postgres"
	"linkspace/app/utils/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	require.NoError(t, WaitForDatabase(ctx), "Database should be ready")

	pool, err := TestDatabaseConnection()
	require.NoError(t, err, "Should connect to test database")
	defer pool.Close()

	require.NoError(t, pool.Ping(ctx), "Should ping database successfully")

	var result int
	err = pool.QueryRow(ctx, "SELECT 1").Scan(&result)
	require.NoError(t, err, "Should execute simple query")
	assert.Equal(t, 1, result, "Query result should be 1")
}

func newTestUser(t *testing.T) *domain.User {
	t.Helper()

	id := uuid.New()
	now := time.Now()

	return &domain.User{
		ID:        id,
		Email:     id.String() + "@integration.example.com",
		Name:      "Integration Tester",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUserRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	require.NoError(t, WaitForDatabase(ctx), "Database should be ready")

	pool, err := TestDatabaseConnection()
	require.NoError(t, err, "Should connect to test database")
	defer pool.Close()

	testLogger, err := logger.New("debug")
	require.NoError(t, err, "Should create logger")

	userRepo := postgres.NewUserRepository(pool, testLogger)

	t.Cleanup(func() { _ = CleanupTestData(context.Background()) })

	t.Run("Upsert refreshes identity fields and keeps local bio", func(t *testing.T) {
		user := newTestUser(t)

		stored, err := userRepo.Upsert(ctx, user)
		require.NoError(t, err, "Should insert user")
		assert.Equal(t, user.ID, stored.ID)
		assert.Equal(t, user.Email, stored.Email)

		stored.Bio = "locally edited"
		require.NoError(t, userRepo.Update(ctx, stored))

		// The second sync carries a changed provider name; the row must
		// track it while the locally owned bio survives.
		user.Name = "Renamed Tester"
		again, err := userRepo.Upsert(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, "Renamed Tester", again.Name, "Upsert should track the identity provider")
		assert.Equal(t, "locally edited", again.Bio, "Upsert should preserve local bio")
	})

	t.Run("Follow edges and counts", func(t *testing.T) {
		alice := newTestUser(t)
		bob := newTestUser(t)

		_, err := userRepo.Upsert(ctx, alice)
		require.NoError(t, err)
		_, err = userRepo.Upsert(ctx, bob)
		require.NoError(t, err)

		require.NoError(t, userRepo.Follow(ctx, alice.ID, bob.ID))
		// Duplicate follows are idempotent.
		require.NoError(t, userRepo.Follow(ctx, alice.ID, bob.ID))

		followers, following, err := userRepo.CountFollows(ctx, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, followers)
		assert.Equal(t, 0, following)

		require.NoError(t, userRepo.Unfollow(ctx, alice.ID, bob.ID))

		followers, _, err = userRepo.CountFollows(ctx, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, followers)
	})
}

func TestLinkRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	require.NoError(t, WaitForDatabase(ctx), "Database should be ready")

	pool, err := TestDatabaseConnection()
	require.NoError(t, err, "Should connect to test database")
	defer pool.Close()

	testLogger, err := logger.New("debug")
	require.NoError(t, err, "Should create logger")

	userRepo := postgres.NewUserRepository(pool, testLogger)
	linkRepo := postgres.NewLinkRepository(pool, testLogger)
	tagRepo := postgres.NewTagRepository(pool, testLogger)

	t.Cleanup(func() { _ = CleanupTestData(context.Background()) })

	owner := newTestUser(t)
	_, err = userRepo.Upsert(ctx, owner)
	require.NoError(t, err)

	t.Run("Link CRUD with tags", func(t *testing.T) {
		link, err := domain.NewLink(owner.ID, "https://go.dev/blog/pgo", "Profile-guided optimization")
		require.NoError(t, err)

		require.NoError(t, linkRepo.Create(ctx, link))

		tags, err := tagRepo.ConnectOrCreate(ctx, []string{"itest-go", "itest-performance"})
		require.NoError(t, err)
		require.Len(t, tags, 2)

		// Connect-or-create must return the same rows on a second call.
		again, err := tagRepo.ConnectOrCreate(ctx, []string{"itest-go"})
		require.NoError(t, err)
		require.Len(t, again, 1)
		assert.Equal(t, tags[0].ID, again[0].ID, "Existing tag should be reused, not duplicated")

		tagIDs := []uuid.UUID{tags[0].ID, tags[1].ID}
		require.NoError(t, linkRepo.SetTags(ctx, link.ID, tagIDs))

		stored, err := linkRepo.GetByID(ctx, link.ID)
		require.NoError(t, err)
		assert.Equal(t, link.URL, stored.URL)
		assert.True(t, stored.IsPublic, "Links default to public")
		assert.Len(t, stored.Tags, 2)

		clicks, err := linkRepo.IncrementClicks(ctx, link.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, clicks)

		require.NoError(t, linkRepo.Delete(ctx, link.ID))

		_, err = linkRepo.GetByID(ctx, link.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Tag lookup respects viewer visibility", func(t *testing.T) {
		private, err := domain.NewLink(owner.ID, "https://example.com/secret", "Secret link")
		require.NoError(t, err)
		private.IsPublic = false

		require.NoError(t, linkRepo.Create(ctx, private))

		tags, err := tagRepo.ConnectOrCreate(ctx, []string{"itest-hidden"})
		require.NoError(t, err)
		require.NoError(t, linkRepo.SetTags(ctx, private.ID, []uuid.UUID{tags[0].ID}))

		visible, err := tagRepo.ListLinksByTag(ctx, tags[0].ID, uuid.Nil, 20, 0)
		require.NoError(t, err)
		assert.Empty(t, visible, "Anonymous viewers should not see private links")

		visible, err = tagRepo.ListLinksByTag(ctx, tags[0].ID, owner.ID, 20, 0)
		require.NoError(t, err)
		assert.Len(t, visible, 1, "Owner should see their private link")
	})
}

func TestCollectionRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	require.NoError(t, WaitForDatabase(ctx), "Database should be ready")

	pool, err := TestDatabaseConnection()
	require.NoError(t, err, "Should connect to test database")
	defer pool.Close()

	testLogger, err := logger.New("debug")
	require.NoError(t, err, "Should create logger")

	userRepo := postgres.NewUserRepository(pool, testLogger)
	linkRepo := postgres.NewLinkRepository(pool, testLogger)
	collectionRepo := postgres.NewCollectionRepository(pool, testLogger)

	t.Cleanup(func() { _ = CleanupTestData(context.Background()) })

	owner := newTestUser(t)
	_, err = userRepo.Upsert(ctx, owner)
	require.NoError(t, err)

	collection, err := domain.NewCollection(owner.ID, "Reading list")
	require.NoError(t, err)
	require.NoError(t, collectionRepo.Create(ctx, collection))
	assert.False(t, collection.IsPublic, "Collections default to private")

	link, err := domain.NewLink(owner.ID, "https://go.dev/doc/effective_go", "Effective Go")
	require.NoError(t, err)
	require.NoError(t, linkRepo.Create(ctx, link))

	require.NoError(t, collectionRepo.AddLink(ctx, collection.ID, link.ID))
	// Re-adding the same link is idempotent.
	require.NoError(t, collectionRepo.AddLink(ctx, collection.ID, link.ID))

	links, err := collectionRepo.ListLinks(ctx, collection.ID, 20, 0)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, link.ID, links[0].ID)

	require.NoError(t, collectionRepo.RemoveLink(ctx, collection.ID, link.ID))

	links, err = collectionRepo.ListLinks(ctx, collection.ID, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, links)
}
