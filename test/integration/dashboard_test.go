package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard_backend/test/helpers"
)

func TestDashboard_RequiresAuth(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, "GET", "/api/v1/dashboard", "", nil)

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestDashboard_Admin(t *testing.T) {
	ts := GetTestServer(t)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, ts.DB)
	_, employer := helpers.CreateAndLoginEmployer(t, ts, ts.DB)
	seekerToken, _ := helpers.CreateAndLoginSeeker(t, ts, ts.DB)
	job := helpers.CreateTestJob(t, ts.DB, employer.ID, "Tracked Job", "Almaty", "StatsCo")

	applyRes, _ := ts.SendRequest(t, "POST", "/api/v1/jobs/"+job.ID+"/apply", seekerToken, nil)
	require.Equal(t, http.StatusCreated, applyRes.StatusCode)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/dashboard", adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var payload struct {
		Role  string `json:"role"`
		Admin *struct {
			Totals struct {
				Seekers      int64 `json:"seekers"`
				Employers    int64 `json:"employers"`
				Admins       int64 `json:"admins"`
				Jobs         int64 `json:"jobs"`
				Applications int64 `json:"applications"`
			} `json:"totals"`
		} `json:"admin"`
		Employer *json.RawMessage `json:"employer"`
		Seeker   *json.RawMessage `json:"seeker"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &payload))
	assert.Equal(t, "admin", payload.Role)
	require.NotNil(t, payload.Admin)
	assert.Nil(t, payload.Employer)
	assert.Nil(t, payload.Seeker)

	// The shared database accumulates across tests, so assert lower bounds.
	assert.GreaterOrEqual(t, payload.Admin.Totals.Admins, int64(1))
	assert.GreaterOrEqual(t, payload.Admin.Totals.Employers, int64(1))
	assert.GreaterOrEqual(t, payload.Admin.Totals.Seekers, int64(1))
	assert.GreaterOrEqual(t, payload.Admin.Totals.Jobs, int64(1))
	assert.GreaterOrEqual(t, payload.Admin.Totals.Applications, int64(1))
}

func TestDashboard_Employer(t *testing.T) {
	ts := GetTestServer(t)

	employerToken, employer := helpers.CreateAndLoginEmployer(t, ts, ts.DB)
	helpers.CreateTestJob(t, ts.DB, employer.ID, "Own Listing", "Astana", "MineCo")

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/dashboard", employerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var payload struct {
		Role     string `json:"role"`
		Employer *struct {
			Jobs []struct {
				Title            string `json:"title"`
				EmployerID       string `json:"employer_id"`
				ApplicationCount int64  `json:"application_count"`
			} `json:"jobs"`
		} `json:"employer"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &payload))
	assert.Equal(t, "employer", payload.Role)
	require.NotNil(t, payload.Employer)
	require.Len(t, payload.Employer.Jobs, 1)
	assert.Equal(t, "Own Listing", payload.Employer.Jobs[0].Title)
	assert.Equal(t, employer.ID, payload.Employer.Jobs[0].EmployerID)
}

// The seeker view marks each listing with whether this seeker applied, and
// honors the same filters as the public search.
func TestDashboard_SeekerAppliedMarking(t *testing.T) {
	ts := GetTestServer(t)

	_, employer := helpers.CreateAndLoginEmployer(t, ts, ts.DB)
	seekerToken, _ := helpers.CreateAndLoginSeeker(t, ts, ts.DB)

	marker := fmt.Sprintf("Dash%dq", time.Now().UnixNano())
	applied := helpers.CreateTestJob(t, ts.DB, employer.ID, marker+" Applied", "Almaty", "DashCo")
	helpers.CreateTestJob(t, ts.DB, employer.ID, marker+" Fresh", "Almaty", "DashCo")

	applyRes, _ := ts.SendRequest(t, "POST", "/api/v1/jobs/"+applied.ID+"/apply", seekerToken, nil)
	require.Equal(t, http.StatusCreated, applyRes.StatusCode)

	res, bodyStr := ts.SendRequest(t, "GET", "/api/v1/dashboard?keyword="+marker, seekerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var payload struct {
		Role   string `json:"role"`
		Seeker *struct {
			Jobs []struct {
				ID      string `json:"id"`
				Applied bool   `json:"applied"`
			} `json:"jobs"`
		} `json:"seeker"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &payload))
	assert.Equal(t, "seeker", payload.Role)
	require.NotNil(t, payload.Seeker)
	require.Len(t, payload.Seeker.Jobs, 2)

	appliedFlags := make(map[string]bool, 2)
	for _, j := range payload.Seeker.Jobs {
		appliedFlags[j.ID] = j.Applied
	}
	assert.True(t, appliedFlags[applied.ID])

	delete(appliedFlags, applied.ID)
	for _, flag := range appliedFlags {
		assert.False(t, flag)
	}
}
