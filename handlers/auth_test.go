package handlers

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/shivangi1713/The-Intelligent-Content-API/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	app := setupTestApp(t)

	resp := doJSON(t, app, "GET", "/", "", nil)
	require.Equal(t, 200, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "OK", body["status"])
}

func TestSignupReturnsUser(t *testing.T) {
	app := setupTestApp(t)

	resp := doJSON(t, app, "POST", "/signup", "", fiber.Map{
		"email":    "alice@example.com",
		"password": "strongpassword",
	})
	require.Equal(t, 201, resp.StatusCode)

	var body struct {
		ID    uint   `json:"id"`
		Email string `json:"email"`
	}
	decodeBody(t, resp, &body)
	assert.NotZero(t, body.ID)
	assert.Equal(t, "alice@example.com", body.Email)
}

func TestSignupDuplicateEmail(t *testing.T) {
	app := setupTestApp(t)
	signupUser(t, app, "alice@example.com", "strongpassword")

	// Duplicate fails regardless of the password used
	for _, password := range []string{"strongpassword", "a-different-one"} {
		resp := doJSON(t, app, "POST", "/signup", "", fiber.Map{
			"email":    "alice@example.com",
			"password": password,
		})
		require.Equal(t, 400, resp.StatusCode)

		var body map[string]string
		decodeBody(t, resp, &body)
		assert.Equal(t, "Email already registered.", body["detail"])
	}
}

func TestSignupRejectsMissingFields(t *testing.T) {
	app := setupTestApp(t)

	resp := doJSON(t, app, "POST", "/signup", "", fiber.Map{"email": "alice@example.com"})
	assert.Equal(t, 400, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, "POST", "/signup", "", fiber.Map{"password": "strongpassword"})
	assert.Equal(t, 400, resp.StatusCode)
	resp.Body.Close()
}

func TestLoginIssuesValidToken(t *testing.T) {
	app := setupTestApp(t)
	signupUser(t, app, "alice@example.com", "strongpassword")

	token := loginUser(t, app, "alice@example.com", "strongpassword")

	userID, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.NotZero(t, userID)
}

func TestLoginBadCredentials(t *testing.T) {
	app := setupTestApp(t)
	signupUser(t, app, "alice@example.com", "strongpassword")

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "alice@example.com", "wrongpassword"},
		{"unknown email", "nobody@example.com", "strongpassword"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := url.Values{}
			form.Set("username", tc.username)
			form.Set("password", tc.password)

			req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			resp, err := app.Test(req, 30000)
			require.NoError(t, err)
			assert.Equal(t, 401, resp.StatusCode)
			resp.Body.Close()
		})
	}
}

func TestProtectedEndpointsRequireToken(t *testing.T) {
	app := setupTestApp(t)

	for _, path := range []string{"/contents/", "/events"} {
		resp := doJSON(t, app, "GET", path, "", nil)
		assert.Equal(t, 401, resp.StatusCode, "GET %s without token", path)
		resp.Body.Close()
	}

	resp := doJSON(t, app, "GET", "/contents/", "not-a-token", nil)
	assert.Equal(t, 401, resp.StatusCode)
	resp.Body.Close()
}

func TestExpiredTokenRejected(t *testing.T) {
	app := setupTestApp(t)
	signupUser(t, app, "alice@example.com", "strongpassword")

	claims := jwt.MapClaims{
		"sub": "1",
		"iat": time.Now().Add(-3 * time.Hour).Unix(),
		"exp": time.Now().Add(-1 * time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	resp := doJSON(t, app, "GET", "/contents/", expired, nil)
	assert.Equal(t, 401, resp.StatusCode)
	resp.Body.Close()
}

func TestTokenForDeletedUserRejected(t *testing.T) {
	app := setupTestApp(t)

	// Valid signature, but the subject never existed
	token, err := utils.GenerateToken(999, "ghost@example.com")
	require.NoError(t, err)

	resp := doJSON(t, app, "GET", "/contents/", token, nil)
	assert.Equal(t, 401, resp.StatusCode)
	resp.Body.Close()
}
