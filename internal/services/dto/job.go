package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

type CreateJobRequest struct {
	Title       string `json:"title" validate:"required,min=2,max=200"`
	Location    string `json:"location" validate:"max=100"`
	Company     string `json:"company" validate:"max=100"`
	Salary      string `json:"salary" validate:"max=100"`
	Description string `json:"description"`
}

type SearchJobsRequest struct {
	Keyword  string `form:"keyword"`
	Location string `form:"location"`
	Company  string `form:"company"`
}

type JobResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Location    string    `json:"location"`
	Company     string    `json:"company"`
	Salary      string    `json:"salary"`
	Description string    `json:"description"`
	EmployerID  string    `json:"employer_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// EmployerJobResponse is a listing as its owner sees it, with the number of
// applications received.
type EmployerJobResponse struct {
	JobResponse
	ApplicationCount int64 `json:"application_count"`
}

// SeekerJobResponse is a listing as a seeker sees it, marked with whether
// the seeker has already applied.
type SeekerJobResponse struct {
	JobResponse
	Applied bool `json:"applied"`
}

func NewJobResponse(job *models.Job) JobResponse {
	return JobResponse{
		ID:          job.ID,
		Title:       job.Title,
		Location:    job.Location,
		Company:     job.Company,
		Salary:      job.Salary,
		Description: job.Description,
		EmployerID:  job.EmployerID,
		CreatedAt:   job.CreatedAt,
	}
}
