package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/shivangi1713/The-Intelligent-Content-API/database"
	"github.com/shivangi1713/The-Intelligent-Content-API/models"
	"github.com/shivangi1713/The-Intelligent-Content-API/services/analyzer"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestApp wires the real routes against a fresh in-memory database.
// The analyzer runs with no providers, so every analysis takes the
// fallback path.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.MigrateUsers(db))
	require.NoError(t, models.MigrateContents(db))
	require.NoError(t, models.MigrateEventLogs(db))
	database.DB = db

	Analyzer = analyzer.NewManagerWith()

	app := fiber.New()
	app.Get("/", HealthCheck)
	app.Post("/signup", Signup)
	app.Post("/login", Login)

	contents := app.Group("/contents", RequireAuth)
	contents.Post("/", CreateContent)
	contents.Get("/", ListContents)
	contents.Get("/:id", GetContent)
	contents.Delete("/:id", DeleteContent)

	app.Get("/events", RequireAuth, ListEvents)

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, 30000)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func signupUser(t *testing.T, app *fiber.App, email, password string) {
	t.Helper()
	resp := doJSON(t, app, "POST", "/signup", "", fiber.Map{"email": email, "password": password})
	require.Equal(t, 201, resp.StatusCode)
	resp.Body.Close()
}

func loginUser(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()

	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, 30000)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	decodeBody(t, resp, &body)
	require.Equal(t, "bearer", body.TokenType)
	require.NotEmpty(t, body.AccessToken)
	return body.AccessToken
}
