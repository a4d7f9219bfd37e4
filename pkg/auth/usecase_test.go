package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/artem13815/aicomparator/pkg/auth"
	"github.com/artem13815/aicomparator/pkg/auth/mocks"
)

type deps struct {
	users  *mocks.UserRepositoryMock
	tokens *mocks.TokenIssuerMock
	svc    auth.AuthUseCase
}

func newDeps(t *testing.T) deps {
	users := mocks.NewUserRepositoryMock(t)
	tokens := mocks.NewTokenIssuerMock(t)
	return deps{users: users, tokens: tokens, svc: auth.NewAuthServiceWithCost(users, tokens, bcrypt.MinCost)}
}

func storedUser(t *testing.T, password string) auth.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return auth.User{ID: uuid.New(), Email: "a@b.c", Username: "a", PasswordHash: string(hash), IsActive: true}
}

func TestRegisterCreatesUserAndTokens(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)

	var created auth.User
	d.users.GetByEmailMock.Expect(ctx, "Ann@Example.com").Return(auth.User{}, auth.ErrNotFound)
	d.users.CreateMock.Inspect(func(_ context.Context, u auth.User) { created = u }).Return(nil)
	d.tokens.IssueMock.Set(func(_ context.Context, u auth.User) (auth.TokenPair, error) {
		return auth.TokenPair{Access: "access-" + u.ID.String(), Refresh: "refresh-" + u.ID.String()}, nil
	})

	res, err := d.svc.Register(ctx, auth.RegisterInput{Email: " Ann@Example.com ", Password: "pw", Username: "ann"})

	require.NoError(t, err)
	assert.Equal(t, created, res.User)
	assert.Equal(t, "ann@example.com", res.User.Email)
	assert.Equal(t, "ann", res.User.Username)
	assert.True(t, res.User.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(res.User.PasswordHash), []byte("pw")))
	assert.Equal(t, "access-"+res.User.ID.String(), res.Tokens.Access)
	assert.Equal(t, uint64(1), d.users.CreateAfterCounter())
}

func TestRegisterValidationTouchesNothing(t *testing.T) {
	d := newDeps(t)
	ctx := context.Background()

	_, err := d.svc.Register(ctx, auth.RegisterInput{Email: "", Password: "pw", Username: "x"})
	assert.ErrorIs(t, err, auth.ErrMissingFields)
	_, err = d.svc.Register(ctx, auth.RegisterInput{Email: "a@b.c", Password: "", Username: "x"})
	assert.ErrorIs(t, err, auth.ErrMissingFields)
	_, err = d.svc.Register(ctx, auth.RegisterInput{Email: "a@b.c", Password: "pw", Username: "  "})
	assert.ErrorIs(t, err, auth.ErrUsernameRequired)
}

func TestRegisterDuplicateEmailCreatesNoRow(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	d.users.GetByEmailMock.Expect(ctx, "A@B.C").Return(storedUser(t, "pw"), nil)

	_, err := d.svc.Register(ctx, auth.RegisterInput{Email: "A@B.C", Password: "other", Username: "b"})

	assert.ErrorIs(t, err, auth.ErrUserAlreadyExists)
	assert.Zero(t, d.users.CreateBeforeCounter())
	assert.Zero(t, d.tokens.IssueBeforeCounter())
}

func TestRegisterPropagatesStorageErrors(t *testing.T) {
	d := newDeps(t)
	boom := errors.New("db down")
	d.users.GetByEmailMock.Return(auth.User{}, boom)

	_, err := d.svc.Register(context.Background(), auth.RegisterInput{Email: "a@b.c", Password: "pw", Username: "a"})
	assert.ErrorIs(t, err, boom)
}

func TestLoginSuccess(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	user := storedUser(t, "secret")
	pair := auth.TokenPair{Access: "a", Refresh: "r"}
	d.users.GetByEmailMock.Expect(ctx, "a@b.c").Return(user, nil)
	d.tokens.IssueMock.Expect(ctx, user).Return(pair, nil)

	res, err := d.svc.Login(ctx, "a@b.c", "secret")

	require.NoError(t, err)
	assert.Equal(t, user.ID, res.User.ID)
	assert.Equal(t, pair, res.Tokens)
}

func TestLoginFailuresIssueNoToken(t *testing.T) {
	ctx := context.Background()
	active := storedUser(t, "secret")
	inactive := storedUser(t, "secret")
	inactive.IsActive = false

	cases := []struct {
		name     string
		email    string
		password string
		found    auth.User
		findErr  error
		want     error
	}{
		{name: "wrong password", email: "a@b.c", password: "wrong", found: active, want: auth.ErrInvalidCredentials},
		{name: "unknown email", email: "nobody@b.c", password: "secret", findErr: auth.ErrNotFound, want: auth.ErrInvalidCredentials},
		{name: "inactive", email: "a@b.c", password: "secret", found: inactive, want: auth.ErrInvalidCredentials},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := newDeps(t)
			d.users.GetByEmailMock.Expect(ctx, tc.email).Return(tc.found, tc.findErr)

			_, err := d.svc.Login(ctx, tc.email, tc.password)

			assert.ErrorIs(t, err, tc.want)
			assert.Zero(t, d.tokens.IssueBeforeCounter())
		})
	}

	t.Run("missing password", func(t *testing.T) {
		d := newDeps(t)
		_, err := d.svc.Login(ctx, "a@b.c", "")
		assert.ErrorIs(t, err, auth.ErrMissingFields)
		assert.Zero(t, d.users.GetByEmailBeforeCounter())
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	user := storedUser(t, "secret")
	pair := auth.TokenPair{Access: "a2", Refresh: "r2"}

	t.Run("valid", func(t *testing.T) {
		d := newDeps(t)
		d.tokens.ParseRefreshMock.Expect(ctx, "r1").Return(user.ID, nil)
		d.users.GetByIDMock.Expect(ctx, user.ID).Return(user, nil)
		d.tokens.IssueMock.Expect(ctx, user).Return(pair, nil)

		res, err := d.svc.Refresh(ctx, "r1")
		require.NoError(t, err)
		assert.Equal(t, pair, res.Tokens)
	})

	t.Run("bad token", func(t *testing.T) {
		d := newDeps(t)
		d.tokens.ParseRefreshMock.Return(uuid.Nil, errors.New("bad token"))

		_, err := d.svc.Refresh(ctx, "garbage")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("user vanished", func(t *testing.T) {
		d := newDeps(t)
		d.tokens.ParseRefreshMock.Return(user.ID, nil)
		d.users.GetByIDMock.Return(auth.User{}, auth.ErrNotFound)

		_, err := d.svc.Refresh(ctx, "r1")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.Zero(t, d.tokens.IssueBeforeCounter())
	})
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()
	d := newDeps(t)
	user := storedUser(t, "secret")
	d.users.GetByIDMock.Expect(ctx, user.ID).Return(user, nil)

	got, err := d.svc.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestProfileChangesApply(t *testing.T) {
	first, bio := "Ann", ""
	u := auth.User{FirstName: "Old", LastName: "Keep", Bio: "gone"}

	auth.ProfileChanges{FirstName: &first, Bio: &bio}.Apply(&u)

	assert.Equal(t, "Ann", u.FirstName)
	assert.Equal(t, "Keep", u.LastName)
	assert.Equal(t, "", u.Bio)
}
