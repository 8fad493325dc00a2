package dto

import "jobboard_backend/internal/models"

// AdminDashboard is the platform-wide aggregate view.
type AdminDashboard struct {
	Users        []UserResponse        `json:"users"`
	Jobs         []JobResponse         `json:"jobs"`
	Applications []ApplicationResponse `json:"applications"`
	Totals       AdminTotals           `json:"totals"`
}

type AdminTotals struct {
	Seekers      int64 `json:"seekers"`
	Employers    int64 `json:"employers"`
	Admins       int64 `json:"admins"`
	Jobs         int64 `json:"jobs"`
	Applications int64 `json:"applications"`
}

type EmployerDashboard struct {
	Jobs []EmployerJobResponse `json:"jobs"`
}

type SeekerDashboard struct {
	Jobs []SeekerJobResponse `json:"jobs"`
}

// DashboardResponse carries exactly one of the three role views.
type DashboardResponse struct {
	Role     models.UserRole    `json:"role"`
	Admin    *AdminDashboard    `json:"admin,omitempty"`
	Employer *EmployerDashboard `json:"employer,omitempty"`
	Seeker   *SeekerDashboard   `json:"seeker,omitempty"`
}
