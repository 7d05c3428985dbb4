package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/event-management/internal/utils"
)

const secret = "test-secret"

func runJWT(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := JWTAuth(secret)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, c, called
}

func TestJWTAuthMissingHeader(t *testing.T) {
	rec, _, called := runJWT(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Access denied. No token provided.")
	assert.False(t, called)
}

func TestJWTAuthWrongScheme(t *testing.T) {
	rec, _, called := runJWT(t, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestJWTAuthInvalidToken(t *testing.T) {
	rec, _, called := runJWT(t, "Bearer garbage")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
	assert.False(t, called)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	tok, err := utils.NewAccessToken(secret, 7, "Alice", "alice@example.com", false, -1)
	require.NoError(t, err)

	rec, _, called := runJWT(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
}

func TestJWTAuthValidToken(t *testing.T) {
	tok, err := utils.NewAccessToken(secret, 7, "Alice", "alice@example.com", true, 60)
	require.NoError(t, err)

	rec, c, called := runJWT(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.Equal(t, uint64(7), c.Get(CtxUserID))
	assert.Equal(t, "Alice", c.Get(CtxUserName))
	assert.Equal(t, "alice@example.com", c.Get(CtxUserEmail))
	assert.Equal(t, true, c.Get(CtxIsAdmin))
}
