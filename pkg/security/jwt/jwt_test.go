package jwt

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/aicomparator/pkg/auth"
)

func newManager() *Manager {
	return NewManager("test-secret", "ai-comparator", time.Hour, 24*time.Hour)
}

func TestIssueAndParse(t *testing.T) {
	m := newManager()
	user := auth.User{ID: uuid.New()}

	pair, err := m.Issue(context.Background(), user)
	require.NoError(t, err)
	assert.NotEqual(t, pair.Access, pair.Refresh)

	claims, err := m.Parse(pair.Access, TypeAccess)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)

	_, err = m.Parse(pair.Access, TypeRefresh)
	assert.ErrorIs(t, err, ErrTokenType)

	id, err := m.ParseRefresh(context.Background(), pair.Refresh)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
}

func TestParseRejectsForeignTokens(t *testing.T) {
	m := newManager()
	pair, err := m.Issue(context.Background(), auth.User{ID: uuid.New()})
	require.NoError(t, err)

	other := NewManager("other-secret", "ai-comparator", time.Hour, time.Hour)
	_, err = other.Parse(pair.Access, TypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)

	otherIssuer := NewManager("test-secret", "someone-else", time.Hour, time.Hour)
	_, err = otherIssuer.Parse(pair.Access, TypeAccess)
	assert.ErrorIs(t, err, ErrIssuer)
}

func TestParseRejectsExpired(t *testing.T) {
	m := newManager()
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	pair, err := m.Issue(context.Background(), auth.User{ID: uuid.New()})
	require.NoError(t, err)

	m.now = func() time.Time { return time.Now().UTC() }
	_, err = m.Parse(pair.Access, TypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer   abc "))
	assert.Equal(t, "abc", bearerToken("abc"))
	assert.Equal(t, "", bearerToken("   "))
}

func newApp(mw fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/whoami", mw, func(c *fiber.Ctx) error {
		id, _ := c.Locals(LocalUserID).(string)
		return c.SendString(id)
	})
	return app
}

func call(t *testing.T, app *fiber.App, header string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestRequiredMiddleware(t *testing.T) {
	m := newManager()
	user := auth.User{ID: uuid.New()}
	pair, err := m.Issue(context.Background(), user)
	require.NoError(t, err)
	app := newApp(NewAuthMiddleware(m))

	status, body := call(t, app, "Bearer "+pair.Access)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, user.ID.String(), body)

	status, _ = call(t, app, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = call(t, app, "Bearer "+pair.Refresh)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = call(t, app, "Bearer not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestOptionalMiddleware(t *testing.T) {
	m := newManager()
	user := auth.User{ID: uuid.New()}
	pair, err := m.Issue(context.Background(), user)
	require.NoError(t, err)
	app := newApp(NewOptionalAuthMiddleware(m))

	status, body := call(t, app, pair.Access)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, user.ID.String(), body)

	status, body = call(t, app, "Bearer garbage")
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, body)

	status, body = call(t, app, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, body)
}
