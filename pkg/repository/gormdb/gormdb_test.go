package gormdb

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/artem13815/aicomparator/pkg/auth"
	"github.com/artem13815/aicomparator/pkg/history"
	"github.com/artem13815/aicomparator/pkg/storage/sqlite"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := sqlite.Open("file::memory:")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func createUser(t *testing.T, repo *UserRepository, email string) auth.User {
	t.Helper()
	u := auth.User{
		ID:           uuid.New(),
		Email:        email,
		Username:     "user",
		PasswordHash: "hash",
		IsActive:     true,
		DateJoined:   time.Now().UTC(),
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestUserCreateAndLookup(t *testing.T) {
	repo := NewUserRepository(setupDB(t))
	u := createUser(t, repo, "Ann@Example.com")

	byEmail, err := repo.GetByEmail(context.Background(), "ann@example.COM")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)
	assert.Equal(t, "ann@example.com", byEmail.Email)
	assert.Equal(t, "user", byEmail.Username)
	assert.Equal(t, "", byEmail.Bio)
	assert.True(t, byEmail.IsActive)

	byID, err := repo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, byEmail.Email, byID.Email)

	_, err = repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, auth.ErrNotFound)
	_, err = repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, auth.ErrNotFound)
}

func TestUserDuplicateEmail(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)
	createUser(t, repo, "a@b.c")

	err := repo.Create(context.Background(), auth.User{ID: uuid.New(), Email: "A@B.C", PasswordHash: "x", DateJoined: time.Now()})
	assert.ErrorIs(t, err, auth.ErrUserAlreadyExists)

	var count int64
	require.NoError(t, db.Model(&User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateProfilePartial(t *testing.T) {
	repo := NewUserRepository(setupDB(t))
	u := createUser(t, repo, "a@b.c")

	first, bio := "Ann", "likes Go"
	got, err := repo.UpdateProfile(context.Background(), u.ID, auth.ProfileChanges{FirstName: &first, Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.FirstName)
	assert.Equal(t, "likes Go", got.Bio)
	assert.Equal(t, "", got.LastName)

	last := "Lee"
	got, err = repo.UpdateProfile(context.Background(), u.ID, auth.ProfileChanges{LastName: &last})
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.FirstName, "untouched fields keep their value")
	assert.Equal(t, "Lee", got.LastName)

	got, err = repo.UpdateProfile(context.Background(), u.ID, auth.ProfileChanges{})
	require.NoError(t, err)
	assert.Equal(t, "Lee", got.LastName)

	empty := ""
	_, err = repo.UpdateProfile(context.Background(), u.ID, auth.ProfileChanges{Bio: &empty})
	require.NoError(t, err)
	stored, err := repo.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "", stored.Bio, "a field can be cleared")
	assert.Equal(t, "Ann", stored.FirstName)
	assert.Equal(t, "Lee", stored.LastName)

	_, err = repo.UpdateProfile(context.Background(), uuid.New(), auth.ProfileChanges{LastName: &last})
	assert.ErrorIs(t, err, auth.ErrNotFound)
}

func TestHistoryListRecentNewestFirstCapped(t *testing.T) {
	db := setupDB(t)
	users := NewUserRepository(db)
	repo := NewHistoryRepository(db)
	owner := createUser(t, users, "a@b.c")
	other := createUser(t, users, "x@y.z")

	base := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		text := fmt.Sprintf("answer %d", i)
		_, err := repo.Append(context.Background(), history.Record{
			UserID:       owner.ID,
			Prompt:       fmt.Sprintf("prompt %d", i),
			ResponseGroq: &text,
			Mode:         history.ModeGroq,
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
	_, err := repo.Append(context.Background(), history.Record{UserID: other.ID, Prompt: "other", Mode: history.ModeBoth})
	require.NoError(t, err)

	items, err := history.NewService(repo).Recent(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Len(t, items, 5)
	for i, rec := range items {
		assert.Equal(t, fmt.Sprintf("prompt %d", 6-i), rec.Prompt)
		assert.Equal(t, owner.ID, rec.UserID)
		assert.Nil(t, rec.ResponseGemini)
		require.NotNil(t, rec.ResponseGroq)
	}
	for i := 1; i < len(items); i++ {
		assert.True(t, items[i-1].CreatedAt.After(items[i].CreatedAt))
	}
}

func TestHistoryAppendAssignsIDAndTimestamp(t *testing.T) {
	db := setupDB(t)
	owner := createUser(t, NewUserRepository(db), "a@b.c")
	repo := NewHistoryRepository(db)

	rec, err := repo.Append(context.Background(), history.Record{UserID: owner.ID, Prompt: "p", Mode: history.ModeBoth})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestHistoryCascadesOnUserDelete(t *testing.T) {
	db := setupDB(t)
	owner := createUser(t, NewUserRepository(db), "a@b.c")
	repo := NewHistoryRepository(db)
	_, err := repo.Append(context.Background(), history.Record{UserID: owner.ID, Prompt: "p", Mode: history.ModeGemini})
	require.NoError(t, err)

	require.NoError(t, db.Delete(&User{}, "id = ?", owner.ID).Error)

	var count int64
	require.NoError(t, db.Model(&QueryHistory{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestHistoryRequiresExistingUser(t *testing.T) {
	repo := NewHistoryRepository(setupDB(t))
	_, err := repo.Append(context.Background(), history.Record{UserID: uuid.New(), Prompt: "p", Mode: history.ModeBoth})
	assert.Error(t, err)
}
