package integration_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/models"
	"jobboard_backend/test/helpers"
)

func TestAuthFlow(t *testing.T) {
	ts := GetTestServer(t)

	email := fmt.Sprintf("flow_%d@test.com", time.Now().UnixNano())
	registerBody := map[string]interface{}{
		"username": fmt.Sprintf("flow_%d", time.Now().UnixNano()),
		"email":    email,
		"password": "super_password123",
		"role":     "seeker",
	}

	regRes, regBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)
	assert.Equal(t, http.StatusCreated, regRes.StatusCode)
	assert.Contains(t, regBodyStr, "Registered successfully")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": "super_password123",
	}
	logRes, logBodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, logRes.StatusCode)
	assert.Contains(t, logBodyStr, "access_token")
	assert.NotContains(t, logBodyStr, "password", "response must not leak the password hash")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)

	suffix := time.Now().UnixNano()
	email := fmt.Sprintf("duplicate_%d@test.com", suffix)

	err := helpers.CreateUser(t, ts.DB, &models.User{
		Username:     fmt.Sprintf("user_one_%d", suffix),
		Email:        email,
		PasswordHash: "pass123",
		Role:         models.UserRoleSeeker,
	})
	require.NoError(t, err)

	registerBody := map[string]interface{}{
		"username": fmt.Sprintf("user_two_%d", suffix),
		"email":    email,
		"password": "pass456789",
		"role":     "seeker",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)

	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "Email already exists")
}

func TestRegister_DuplicateUsername(t *testing.T) {
	ts := GetTestServer(t)

	suffix := time.Now().UnixNano()
	username := fmt.Sprintf("taken_name_%d", suffix)

	err := helpers.CreateUser(t, ts.DB, &models.User{
		Username:     username,
		Email:        fmt.Sprintf("first_%d@test.com", suffix),
		PasswordHash: "pass123",
		Role:         models.UserRoleEmployer,
	})
	require.NoError(t, err)

	registerBody := map[string]interface{}{
		"username": username,
		"email":    fmt.Sprintf("second_%d@test.com", suffix),
		"password": "pass456789",
		"role":     "employer",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)

	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "Username already exists")
}

func TestRegister_InvalidRole(t *testing.T) {
	ts := GetTestServer(t)

	suffix := time.Now().UnixNano()
	registerBody := map[string]interface{}{
		"username": fmt.Sprintf("rogue_%d", suffix),
		"email":    fmt.Sprintf("rogue_%d@test.com", suffix),
		"password": "pass456789",
		"role":     "superuser",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid user role")
}

func TestRegister_ShortPassword(t *testing.T) {
	ts := GetTestServer(t)

	suffix := time.Now().UnixNano()
	registerBody := map[string]interface{}{
		"username": fmt.Sprintf("short_%d", suffix),
		"email":    fmt.Sprintf("short_%d@test.com", suffix),
		"password": "123",
		"role":     "seeker",
	}
	res, _ := ts.SendRequest(t, "POST", "/api/v1/auth/register", "", registerBody)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

// Wrong password and unknown email must be indistinguishable to the caller.
func TestLogin_GenericErrorMessage(t *testing.T) {
	ts := GetTestServer(t)

	_, user := helpers.CreateAndLoginSeeker(t, ts, ts.DB)

	wrongPassword := map[string]interface{}{
		"email":    user.Email,
		"password": "not-the-password",
	}
	res1, body1 := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", wrongPassword)

	unknownEmail := map[string]interface{}{
		"email":    fmt.Sprintf("nobody_%d@test.com", time.Now().UnixNano()),
		"password": "whatever123",
	}
	res2, body2 := ts.SendRequest(t, "POST", "/api/v1/auth/login", "", unknownEmail)

	assert.Equal(t, http.StatusUnauthorized, res1.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, res2.StatusCode)
	assert.Contains(t, body1, "Invalid email or password")
	assert.Contains(t, body2, "Invalid email or password")
	assert.Equal(t, body1, body2)
}

func TestGetCurrentUser(t *testing.T) {
	ts := GetTestServer(t)

	token, user := helpers.CreateAndLoginSeeker(t, ts, ts.DB)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/auth/me", token, nil)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, user.Email)
	assert.Contains(t, bodyStr, user.Username)
	assert.NotContains(t, bodyStr, "password_hash")
}

func TestGetCurrentUser_NoToken(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, "GET", "/api/v1/auth/me", "", nil)

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
