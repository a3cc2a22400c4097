package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inkwell/internal/config"
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:      "8080",
		JWTSecret: "test-secret-not-for-production-use",
		Env:       "test",
	}
}

// newTestApp builds a Fiber app with routes wired to an in-memory database.
// The global middleware stack is left off so tests exercise handlers and
// auth, not rate limits.
func newTestApp(t *testing.T) (*fiber.App, *Server, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Category{}, &models.Post{}, &models.Comment{},
	))

	srv := NewServerWithDeps(testConfig(), db, nil)
	app := fiber.New()
	srv.SetupRoutes(app)
	return app, srv, db
}

// doJSON performs a request with an optional JSON body and bearer token and
// decodes the response envelope.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reqBody *bytes.Buffer
	if raw, isRaw := body.(string); isRaw {
		reqBody = bytes.NewBufferString(raw)
	} else if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(encoded)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	_ = resp.Body.Close()
	return resp, envelope
}

// registerAndLogin creates a user through the API and returns a session token.
func registerAndLogin(t *testing.T, app *fiber.App, username string) string {
	t.Helper()

	resp, _ := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"username":  username,
		"email":     username + "@example.com",
		"password":  "s3cret123",
		"password2": "s3cret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, envelope := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": username,
		"password": "s3cret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, ok := envelope["token"].(string)
	require.True(t, ok, "expected token in login response: %v", envelope)
	return token
}

// promoteToStaff flips the staff flag directly; tokens pick it up on the
// next request because the middleware re-resolves the user.
func promoteToStaff(t *testing.T, db *gorm.DB, username string) {
	t.Helper()
	require.NoError(t, db.Model(&models.User{}).
		Where("username = ?", username).
		Update("is_staff", true).Error)
}

func errorCode(t *testing.T, envelope map[string]any) string {
	t.Helper()
	errObj, ok := envelope["error"].(map[string]any)
	require.True(t, ok, "expected error object in envelope: %v", envelope)
	code, _ := errObj["code"].(string)
	return code
}
