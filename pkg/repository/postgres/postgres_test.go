package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/artem13815/aicomparator/pkg/auth"
	"github.com/artem13815/aicomparator/pkg/history"
	storage "github.com/artem13815/aicomparator/pkg/storage/postgres"
)

// setupPool starts a throwaway PostgreSQL and applies the migrations.
func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres container tests skipped in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("test_db"),
		tcpostgres.WithUsername("test_user"),
		tcpostgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() {
		require.NoError(t, container.Terminate(context.Background()))
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := storage.Connect(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, storage.Migrate(ctx, pool))
	// a second run is a no-op
	require.NoError(t, storage.Migrate(ctx, pool))
	return pool
}

func newUser(email string) auth.User {
	return auth.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     "user",
		PasswordHash: "hash",
		IsActive:     true,
		DateJoined:   time.Now().UTC(),
	}
}

func TestPostgresRepositories(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	users := NewUserRepository(pool)
	hist := NewHistoryRepository(pool)

	t.Run("users", func(t *testing.T) {
		u := newUser("Mixed@Example.com")
		require.NoError(t, users.Create(ctx, u))
		assert.ErrorIs(t, users.Create(ctx, newUser("mixed@example.com")), auth.ErrUserAlreadyExists)

		got, err := users.GetByEmail(ctx, "MIXED@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
		assert.Equal(t, "", got.Bio)

		_, err = users.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, auth.ErrNotFound)

		bio := "hello"
		updated, err := users.UpdateProfile(ctx, u.ID, auth.ProfileChanges{Bio: &bio})
		require.NoError(t, err)
		assert.Equal(t, "hello", updated.Bio)
		assert.Equal(t, "", updated.Phone)

		_, err = users.UpdateProfile(ctx, uuid.New(), auth.ProfileChanges{Bio: &bio})
		assert.ErrorIs(t, err, auth.ErrNotFound)
	})

	t.Run("history", func(t *testing.T) {
		owner := newUser("owner@example.com")
		require.NoError(t, users.Create(ctx, owner))

		base := time.Now().UTC().Add(-time.Hour)
		for i := 0; i < history.RecentLimit+2; i++ {
			text := fmt.Sprintf("answer %d", i)
			_, err := hist.Append(ctx, history.Record{
				UserID:       owner.ID,
				Prompt:       fmt.Sprintf("prompt %d", i),
				ResponseGroq: &text,
				Mode:         history.ModeGroq,
				CreatedAt:    base.Add(time.Duration(i) * time.Minute),
			})
			require.NoError(t, err)
		}

		items, err := hist.ListRecent(ctx, owner.ID, history.RecentLimit)
		require.NoError(t, err)
		require.Len(t, items, history.RecentLimit)
		assert.Equal(t, fmt.Sprintf("prompt %d", history.RecentLimit+1), items[0].Prompt)
		assert.Nil(t, items[0].ResponseGemini)
		assert.Equal(t, history.ModeGroq, items[0].Mode)

		other, err := hist.ListRecent(ctx, uuid.New(), history.RecentLimit)
		require.NoError(t, err)
		assert.Empty(t, other)

		_, err = hist.Append(ctx, history.Record{UserID: uuid.New(), Prompt: "orphan", Mode: history.ModeBoth})
		assert.Error(t, err)
	})
}
