package server

import (
	"net/http"
	"testing"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	app, _, db := newTestApp(t)

	t.Run("creates a user", func(t *testing.T) {
		resp, envelope := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
			"username":  "alice",
			"email":     "alice@example.com",
			"password":  "s3cret123",
			"password2": "s3cret123",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, true, envelope["success"])
		assert.Equal(t, "User created", envelope["message"])

		user := envelope["user"].(map[string]any)
		assert.Equal(t, "alice", user["username"])
		// The hash never leaves the API.
		assert.NotContains(t, user, "password")

		var stored models.User
		require.NoError(t, db.Where("username = ?", "alice").First(&stored).Error)
		assert.NotEqual(t, "s3cret123", stored.Password)
	})

	t.Run("duplicate username", func(t *testing.T) {
		resp, envelope := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
			"username":  "alice",
			"password":  "other",
			"password2": "other",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, models.CodeValidation, errorCode(t, envelope))
	})

	t.Run("password mismatch", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
			"username":  "bob",
			"password":  "one",
			"password2": "two",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("malformed body", func(t *testing.T) {
		resp, envelope := doJSON(t, app, http.MethodPost, "/api/auth/register", "", "{not json")
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, models.CodeValidation, errorCode(t, envelope))
	})
}

func TestLogin(t *testing.T) {
	app, _, _ := newTestApp(t)
	_ = registerAndLogin(t, app, "alice")

	t.Run("wrong password", func(t *testing.T) {
		resp, envelope := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
			"username": "alice",
			"password": "wrong",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, models.CodeValidation, errorCode(t, envelope))
	})

	t.Run("unknown user gets the same error shape", func(t *testing.T) {
		resp, envelope := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
			"username": "mallory",
			"password": "whatever",
		})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		errObj := envelope["error"].(map[string]any)
		assert.Equal(t, "Invalid credentials", errObj["message"])
	})
}

func TestMe(t *testing.T) {
	app, _, _ := newTestApp(t)
	token := registerAndLogin(t, app, "alice")

	t.Run("authenticated", func(t *testing.T) {
		resp, envelope := doJSON(t, app, http.MethodGet, "/api/auth/me", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		user := envelope["user"].(map[string]any)
		assert.Equal(t, "alice", user["username"])
	})

	t.Run("no token", func(t *testing.T) {
		resp, envelope := doJSON(t, app, http.MethodGet, "/api/auth/me", "", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, models.CodeUnauthorized, errorCode(t, envelope))
	})

	t.Run("garbage token", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/auth/me", "not-a-jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestLogout_RevokesToken(t *testing.T) {
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	defer cache.SetClient(nil)

	app, _, _ := newTestApp(t)
	token := registerAndLogin(t, app, "alice")

	resp, _ := doJSON(t, app, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, envelope := doJSON(t, app, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Logout successful", envelope["message"])

	resp, envelope = doJSON(t, app, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	errObj := envelope["error"].(map[string]any)
	assert.Equal(t, "Token has been revoked", errObj["message"])
}
