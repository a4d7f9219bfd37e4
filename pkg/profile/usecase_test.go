package profile

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/aicomparator/pkg/auth"
	"github.com/artem13815/aicomparator/pkg/auth/mocks"
)

func ptr(s string) *string { return &s }

func TestGetProfile(t *testing.T) {
	ctx := context.Background()
	users := mocks.NewUserRepositoryMock(t)
	svc := NewService(users)
	user := auth.User{ID: uuid.New(), Email: "a@b.c", Username: "ann", Phone: "123", PasswordHash: "hash"}
	missing := uuid.New()
	users.GetByIDMock.When(ctx, user.ID).Then(user, nil)
	users.GetByIDMock.When(ctx, missing).Then(auth.User{}, auth.ErrNotFound)

	p, err := svc.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, Profile{Email: "a@b.c", Username: "ann", Phone: "123"}, p)

	_, err = svc.Get(ctx, missing)
	assert.ErrorIs(t, err, auth.ErrNotFound)
}

func TestUpdatePassesOnlySuppliedFields(t *testing.T) {
	ctx := context.Background()
	users := mocks.NewUserRepositoryMock(t)
	svc := NewService(users)
	id := uuid.New()
	changes := auth.ProfileChanges{FirstName: ptr("New"), Location: ptr("Oslo")}
	users.UpdateProfileMock.Expect(ctx, id, changes).
		Return(auth.User{ID: id, FirstName: "New", Location: "Oslo", Bio: "keep"}, nil)

	p, err := svc.Update(ctx, id, changes)

	require.NoError(t, err)
	assert.Equal(t, "New", p.FirstName)
	assert.Equal(t, "Oslo", p.Location)
	assert.Equal(t, "keep", p.Bio)
}

func TestUpdateRejectsTooLongFields(t *testing.T) {
	ctx := context.Background()
	users := mocks.NewUserRepositoryMock(t)
	svc := NewService(users)
	id := uuid.New()

	_, err := svc.Update(ctx, id, auth.ProfileChanges{Phone: ptr(strings.Repeat("1", 16))})
	assert.ErrorIs(t, err, ErrFieldTooLong)
	assert.Contains(t, err.Error(), "phone")
	assert.Zero(t, users.UpdateProfileBeforeCounter())

	ok := auth.ProfileChanges{FirstName: ptr(strings.Repeat("é", 30))}
	users.UpdateProfileMock.Expect(ctx, id, ok).Return(auth.User{ID: id}, nil)
	_, err = svc.Update(ctx, id, ok)
	assert.NoError(t, err)
}
