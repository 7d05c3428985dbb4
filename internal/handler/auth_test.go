package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterUser(t *testing.T) {
	st := newMemStore()
	e := newTestServer(st)

	rec := do(e, http.MethodPost, "/registerUser", "", map[string]any{
		"name": "Alice", "email": "Alice@example.com", "password": "hunter22",
		"phoneNumber": "555-0101", "address": "1 Main St",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, "User registered successfully", body["message"])
	assert.NotZero(t, body["userId"])

	// email is normalized, so re-registering with different casing fails
	rec = do(e, http.MethodPost, "/registerUser", "", map[string]any{
		"name": "Alice Again", "email": "alice@example.com", "password": "other",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User with this email already exists", message(t, rec))
}

func TestRegisterUserValidation(t *testing.T) {
	e := newTestServer(newMemStore())

	for _, body := range []map[string]any{
		{"email": "a@example.com", "password": "x"},
		{"name": "A", "password": "x"},
		{"name": "A", "email": "a@example.com"},
		{"name": "   ", "email": "a@example.com", "password": "x"},
	} {
		rec := do(e, http.MethodPost, "/registerUser", "", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Please provide name, email, and password", message(t, rec))
	}
}

func TestLogin(t *testing.T) {
	st := newMemStore()
	e := newTestServer(st)
	uid := signup(t, e, "Alice", "alice@example.com")

	rec := do(e, http.MethodPost, "/login", "", map[string]any{
		"email": "alice@example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.NotEmpty(t, body["token"])
	user := body["user"].(map[string]any)
	assert.Equal(t, float64(uid), user["id"])
	assert.Equal(t, "alice@example.com", user["email"])
	assert.Equal(t, false, user["isAdmin"])

	st.mu.Lock()
	open := st.openLogins[uid]
	st.mu.Unlock()
	assert.Equal(t, 1, open, "login should append an audit record")
}

// Wrong password and unknown email must be indistinguishable.
func TestLoginUniformError(t *testing.T) {
	e := newTestServer(newMemStore())
	signup(t, e, "Alice", "alice@example.com")

	wrongPass := do(e, http.MethodPost, "/login", "", map[string]any{
		"email": "alice@example.com", "password": "nope",
	})
	unknown := do(e, http.MethodPost, "/login", "", map[string]any{
		"email": "ghost@example.com", "password": "nope",
	})

	assert.Equal(t, http.StatusBadRequest, wrongPass.Code)
	assert.Equal(t, http.StatusBadRequest, unknown.Code)
	assert.Equal(t, "Invalid email or password", message(t, wrongPass))
	assert.Equal(t, wrongPass.Body.String(), unknown.Body.String())
}

func TestLogout(t *testing.T) {
	st := newMemStore()
	e := newTestServer(st)
	uid := signup(t, e, "Alice", "alice@example.com")
	tok := login(t, e, "alice@example.com")

	rec := do(e, http.MethodPost, "/logout", tok, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logged out successfully", message(t, rec))

	st.mu.Lock()
	open := st.openLogins[uid]
	st.mu.Unlock()
	assert.Equal(t, 0, open)

	// idempotent: logging out again still succeeds
	rec = do(e, http.MethodPost, "/logout", tok, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodPost, "/logout", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Access denied. No token provided.", message(t, rec))
}
