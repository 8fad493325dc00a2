package services

import (
	"gorm.io/gorm"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// DashboardService composes the role-scoped views. It has no rules of its
// own beyond which role sees which slice of the data.
type DashboardService interface {
	Dashboard(db *gorm.DB, userID string, role models.UserRole, search *dto.SearchJobsRequest) (*dto.DashboardResponse, error)
}

type DashboardServiceImpl struct {
	userRepo        repositories.UserRepository
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
	jobService      JobService
}

func NewDashboardService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
	jobService JobService,
) DashboardService {
	return &DashboardServiceImpl{
		userRepo:        userRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		jobService:      jobService,
	}
}

func (s *DashboardServiceImpl) Dashboard(db *gorm.DB, userID string, role models.UserRole, search *dto.SearchJobsRequest) (*dto.DashboardResponse, error) {
	switch {
	case auth.CanViewAggregate(role):
		admin, err := s.adminDashboard(db)
		if err != nil {
			return nil, err
		}
		return &dto.DashboardResponse{Role: role, Admin: admin}, nil

	case role == models.UserRoleEmployer:
		jobs, err := s.jobService.EmployerJobs(db, userID)
		if err != nil {
			return nil, err
		}
		return &dto.DashboardResponse{Role: role, Employer: &dto.EmployerDashboard{Jobs: jobs}}, nil

	default:
		seeker, err := s.seekerDashboard(db, userID, search)
		if err != nil {
			return nil, err
		}
		return &dto.DashboardResponse{Role: role, Seeker: seeker}, nil
	}
}

func (s *DashboardServiceImpl) adminDashboard(db *gorm.DB) (*dto.AdminDashboard, error) {
	users, err := s.userRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	jobs, err := s.jobRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	apps, err := s.applicationRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	dashboard := &dto.AdminDashboard{
		Users:        make([]dto.UserResponse, 0, len(users)),
		Jobs:         make([]dto.JobResponse, 0, len(jobs)),
		Applications: make([]dto.ApplicationResponse, 0, len(apps)),
	}
	for i := range users {
		dashboard.Users = append(dashboard.Users, *dto.NewUserResponse(&users[i]))
	}
	for i := range jobs {
		dashboard.Jobs = append(dashboard.Jobs, dto.NewJobResponse(&jobs[i]))
	}
	for i := range apps {
		dashboard.Applications = append(dashboard.Applications, *dto.NewApplicationResponse(&apps[i]))
	}

	dashboard.Totals.Jobs = int64(len(jobs))
	dashboard.Totals.Applications = int64(len(apps))
	for _, u := range users {
		switch u.Role {
		case models.UserRoleSeeker:
			dashboard.Totals.Seekers++
		case models.UserRoleEmployer:
			dashboard.Totals.Employers++
		case models.UserRoleAdmin:
			dashboard.Totals.Admins++
		}
	}
	return dashboard, nil
}

// seekerDashboard returns the filtered listings with each one marked by
// whether this seeker already applied, derived from the seeker's own
// application rows.
func (s *DashboardServiceImpl) seekerDashboard(db *gorm.DB, seekerID string, search *dto.SearchJobsRequest) (*dto.SeekerDashboard, error) {
	if search == nil {
		search = &dto.SearchJobsRequest{}
	}

	jobs, err := s.jobRepo.Search(db, repositories.JobFilter{
		Keyword:  search.Keyword,
		Location: search.Location,
		Company:  search.Company,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	apps, err := s.applicationRepo.FindBySeeker(db, seekerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	applied := make(map[string]bool, len(apps))
	for _, a := range apps {
		applied[a.JobID] = true
	}

	dashboard := &dto.SeekerDashboard{Jobs: make([]dto.SeekerJobResponse, 0, len(jobs))}
	for i := range jobs {
		dashboard.Jobs = append(dashboard.Jobs, dto.SeekerJobResponse{
			JobResponse: dto.NewJobResponse(&jobs[i]),
			Applied:     applied[jobs[i].ID],
		})
	}
	return dashboard, nil
}
