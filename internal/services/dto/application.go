package dto

import (
	"time"

	"jobboard_backend/internal/models"
)

type ApplyRequest struct {
	Message string `json:"message" validate:"max=2000"`
}

type ApplicationResponse struct {
	ID        string    `json:"id"`
	JobID     string    `json:"job_id"`
	SeekerID  string    `json:"seeker_id"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ApplyResult distinguishes a fresh application from the idempotent
// "already applied" outcome.
type ApplyResult struct {
	Application    *ApplicationResponse
	AlreadyApplied bool
}

func NewApplicationResponse(app *models.Application) *ApplicationResponse {
	return &ApplicationResponse{
		ID:        app.ID,
		JobID:     app.JobID,
		SeekerID:  app.SeekerID,
		Message:   app.Message,
		CreatedAt: app.CreatedAt,
	}
}
