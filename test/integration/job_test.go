package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/internal/models"
	"jobboard_backend/test/helpers"
)

func TestPostJob_AsEmployer(t *testing.T) {
	ts := GetTestServer(t)

	token, employer := helpers.CreateAndLoginEmployer(t, ts, ts.DB)

	jobBody := map[string]interface{}{
		"title":       "Backend Engineer",
		"location":    "Almaty",
		"company":     "Acme Inc.",
		"salary":      "500000",
		"description": "Build and run services.",
	}
	res, bodyStr := ts.SendRequest(t, "POST", "/api/v1/jobs", token, jobBody)

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, bodyStr, "Backend Engineer")

	var created struct {
		ID         string `json:"id"`
		EmployerID string `json:"employer_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))
	assert.Equal(t, employer.ID, created.EmployerID)
	assert.NotEmpty(t, created.ID)
}

func TestPostJob_AsSeekerForbidden(t *testing.T) {
	ts := GetTestServer(t)

	token, _ := helpers.CreateAndLoginSeeker(t, ts, ts.DB)

	jobBody := map[string]interface{}{
		"title": "Not Allowed",
	}
	res, _ := ts.SendRequest(t, "POST", "/api/v1/jobs", token, jobBody)

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestPostJob_Unauthenticated(t *testing.T) {
	ts := GetTestServer(t)

	jobBody := map[string]interface{}{
		"title": "Anonymous Post",
	}
	res, _ := ts.SendRequest(t, "POST", "/api/v1/jobs", "", jobBody)

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestGetJob_PublicAndMissing(t *testing.T) {
	ts := GetTestServer(t)

	_, employer := helpers.CreateAndLoginEmployer(t, ts, ts.DB)
	job := helpers.CreateTestJob(t, ts.DB, employer.ID, "Visible Job", "Astana", "VisibleCo")

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/jobs/"+job.ID, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Visible Job")

	missingRes, missingBody := ts.SendRequest(t, "GET", "/api/v1/jobs/no-such-id", "", nil)
	assert.Equal(t, http.StatusNotFound, missingRes.StatusCode)
	assert.Contains(t, missingBody, "Job not found")
}

func TestDeleteJob_OwnerOnly(t *testing.T) {
	ts := GetTestServer(t)

	ownerToken, owner := helpers.CreateAndLoginEmployer(t, ts, ts.DB)
	otherToken, _ := helpers.CreateAndLoginEmployer(t, ts, ts.DB)
	job := helpers.CreateTestJob(t, ts.DB, owner.ID, "Contested Job", "Almaty", "OwnerCo")

	// Another employer cannot delete the listing.
	res, _ := ts.SendRequest(t, "DELETE", "/api/v1/jobs/"+job.ID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	var count int64
	ts.DB.Model(&models.Job{}).Where("id = ?", job.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	// The owner can.
	res, bodyStr := ts.SendRequest(t, "DELETE", "/api/v1/jobs/"+job.ID, ownerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Job deleted")

	ts.DB.Model(&models.Job{}).Where("id = ?", job.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDeleteJob_AsSeekerForbidden(t *testing.T) {
	ts := GetTestServer(t)

	_, employer := helpers.CreateAndLoginEmployer(t, ts, ts.DB)
	seekerToken, _ := helpers.CreateAndLoginSeeker(t, ts, ts.DB)
	job := helpers.CreateTestJob(t, ts.DB, employer.ID, "Protected Job", "Almaty", "SafeCo")

	res, _ := ts.SendRequest(t, "DELETE", "/api/v1/jobs/"+job.ID, seekerToken, nil)

	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// Deleting a listing removes its applications in the same transaction.
func TestDeleteJob_CascadesApplications(t *testing.T) {
	ts := GetTestServer(t)

	ownerToken, owner := helpers.CreateAndLoginEmployer(t, ts, ts.DB)
	seekerToken, _ := helpers.CreateAndLoginSeeker(t, ts, ts.DB)
	job := helpers.CreateTestJob(t, ts.DB, owner.ID, "Doomed Job", "Almaty", "GoneCo")

	applyRes, _ := ts.SendRequest(t, "POST", "/api/v1/jobs/"+job.ID+"/apply", seekerToken, nil)
	require.Equal(t, http.StatusCreated, applyRes.StatusCode)

	res, _ := ts.SendRequest(t, "DELETE", "/api/v1/jobs/"+job.ID, ownerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var count int64
	ts.DB.Model(&models.Application{}).Where("job_id = ?", job.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestMyJobs_IncludesApplicationCount(t *testing.T) {
	ts := GetTestServer(t)

	employerToken, employer := helpers.CreateAndLoginEmployer(t, ts, ts.DB)
	seekerToken, _ := helpers.CreateAndLoginSeeker(t, ts, ts.DB)
	job := helpers.CreateTestJob(t, ts.DB, employer.ID, "Popular Job", "Astana", "HotCo")

	applyRes, _ := ts.SendRequest(t, "POST", "/api/v1/jobs/"+job.ID+"/apply", seekerToken, nil)
	require.Equal(t, http.StatusCreated, applyRes.StatusCode)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/jobs/mine", employerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var payload struct {
		Jobs []struct {
			ID               string `json:"id"`
			ApplicationCount int64  `json:"application_count"`
		} `json:"jobs"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &payload))
	require.Len(t, payload.Jobs, 1)
	assert.Equal(t, job.ID, payload.Jobs[0].ID)
	assert.Equal(t, int64(1), payload.Jobs[0].ApplicationCount)
}
