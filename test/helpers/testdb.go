package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"jobboard_backend/internal/models"
)

// CreateUser inserts a user directly, hashing the password when a raw one
// was supplied in PasswordHash.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) error {
	if user.PasswordHash != "" && !strings.HasPrefix(user.PasswordHash, "$2a$") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
		if err != nil {
			t.Fatalf("Failed to hash test password: %v", err)
		}
		user.PasswordHash = string(hashedPassword)
	}

	if user.Status == "" {
		user.Status = models.UserStatusActive
	}

	result := db.Create(user)
	if result.Error != nil {
		t.Logf("Failed to create test user %s: %v", user.Email, result.Error)
		return result.Error
	}
	return nil
}

// CreateAndLoginUser creates a user and logs it in through the API,
// returning the access token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, db *gorm.DB, username, email, password string, role models.UserRole) (string, *models.User) {
	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: password,
		Role:         role,
	}
	err := CreateUser(t, db, user)
	require.NoError(t, err, "creating a test user must not fail")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "login must succeed, got: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	err = json.Unmarshal([]byte(bodyStr), &loginResponse)
	require.NoError(t, err)
	require.NotEmpty(t, loginResponse.Token)

	user.PasswordHash = password

	return loginResponse.Token, user
}

// CreateAndLoginEmployer creates an employer with a unique email.
func CreateAndLoginEmployer(t *testing.T, ts *TestServer, db *gorm.DB) (string, *models.User) {
	suffix := time.Now().UnixNano()
	email := fmt.Sprintf("employer_%d@test.com", suffix)
	username := fmt.Sprintf("employer_%d", suffix)
	return CreateAndLoginUser(t, ts, db, username, email, "password123", models.UserRoleEmployer)
}

// CreateAndLoginSeeker creates a seeker with a unique email.
func CreateAndLoginSeeker(t *testing.T, ts *TestServer, db *gorm.DB) (string, *models.User) {
	suffix := time.Now().UnixNano()
	email := fmt.Sprintf("seeker_%d@test.com", suffix)
	username := fmt.Sprintf("seeker_%d", suffix)
	return CreateAndLoginUser(t, ts, db, username, email, "password123", models.UserRoleSeeker)
}

// CreateAndLoginAdmin creates an admin with a unique email.
func CreateAndLoginAdmin(t *testing.T, ts *TestServer, db *gorm.DB) (string, *models.User) {
	suffix := time.Now().UnixNano()
	email := fmt.Sprintf("admin_%d@test.com", suffix)
	username := fmt.Sprintf("admin_%d", suffix)
	return CreateAndLoginUser(t, ts, db, username, email, "password123", models.UserRoleAdmin)
}

// CreateTestJob inserts a listing directly, bypassing the API.
func CreateTestJob(t *testing.T, db *gorm.DB, employerID, title, location, company string) models.Job {
	job := models.Job{
		Title:       title,
		Location:    location,
		Company:     company,
		Salary:      "100000",
		Description: "Test description",
		EmployerID:  employerID,
	}
	if err := db.Create(&job).Error; err != nil {
		t.Fatalf("Failed to create test job: %v", err)
	}
	return job
}
