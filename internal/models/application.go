package models

// Application is a seeker's expressed interest in one job. The composite
// unique index is what makes concurrent duplicate applies lose at the
// storage layer instead of racing past a check-then-insert.
type Application struct {
	BaseModel
	JobID    string `gorm:"type:uuid;not null;uniqueIndex:idx_job_seeker" json:"job_id"`
	SeekerID string `gorm:"type:uuid;not null;uniqueIndex:idx_job_seeker" json:"seeker_id"`
	Message  string `gorm:"type:text" json:"message,omitempty"`
}
