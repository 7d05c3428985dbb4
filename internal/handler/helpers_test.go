package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func do(e *echo.Echo, method, target, token string, body any) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, rd)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	m, _ := decode(t, rec)["message"].(string)
	return m
}

// signup registers a user through the API and returns the new user id.
func signup(t *testing.T, e *echo.Echo, name, email string) uint64 {
	t.Helper()
	rec := do(e, http.MethodPost, "/registerUser", "", map[string]any{
		"name": name, "email": email, "password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return uint64(decode(t, rec)["userId"].(float64))
}

// login authenticates through the API and returns the bearer token.
func login(t *testing.T, e *echo.Echo, email string) string {
	t.Helper()
	rec := do(e, http.MethodPost, "/login", "", map[string]any{
		"email": email, "password": "hunter22",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	tok, _ := decode(t, rec)["token"].(string)
	require.NotEmpty(t, tok)
	return tok
}

// adminToken creates a user, promotes it in the fake admins table and
// logs it in.
func adminToken(t *testing.T, e *echo.Echo, st *memStore, email string) string {
	t.Helper()
	uid := signup(t, e, "Admin", email)
	st.mu.Lock()
	st.admins[uid] = true
	st.mu.Unlock()
	return login(t, e, email)
}
