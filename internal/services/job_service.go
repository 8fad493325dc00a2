package services

import (
	"gorm.io/gorm"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type JobService interface {
	PostJob(db *gorm.DB, employerID string, role models.UserRole, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	GetJob(db *gorm.DB, jobID string) (*dto.JobResponse, error)
	DeleteJob(db *gorm.DB, jobID, requesterID string, role models.UserRole) error
	Search(db *gorm.DB, req *dto.SearchJobsRequest) ([]dto.JobResponse, error)
	EmployerJobs(db *gorm.DB, employerID string) ([]dto.EmployerJobResponse, error)
}

type JobServiceImpl struct {
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
}

func NewJobService(jobRepo repositories.JobRepository, applicationRepo repositories.ApplicationRepository) JobService {
	return &JobServiceImpl{
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
	}
}

// PostJob creates an active listing owned by the caller. The permission
// check runs before any storage access.
func (s *JobServiceImpl) PostJob(db *gorm.DB, employerID string, role models.UserRole, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	if !auth.CanPostJob(role) {
		return nil, apperrors.NewForbiddenError("Only employers can post jobs")
	}

	job := &models.Job{
		Title:       req.Title,
		Location:    req.Location,
		Company:     req.Company,
		Salary:      req.Salary,
		Description: req.Description,
		EmployerID:  employerID,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return s.jobRepo.Create(tx, job)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewJobResponse(job)
	return &resp, nil
}

func (s *JobServiceImpl) GetJob(db *gorm.DB, jobID string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewJobResponse(job)
	return &resp, nil
}

// DeleteJob removes a listing iff the requester is its owning employer.
// The ownership check is evaluated against the listing's current owner, and
// the delete cascades to the listing's applications in one transaction.
func (s *JobServiceImpl) DeleteJob(db *gorm.DB, jobID, requesterID string, role models.UserRole) error {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}

	if !auth.CanDeleteJob(role, job.EmployerID, requesterID) {
		return apperrors.NewForbiddenError("Only the owning employer can delete this job")
	}

	if err := s.jobRepo.Delete(db, jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobServiceImpl) Search(db *gorm.DB, req *dto.SearchJobsRequest) ([]dto.JobResponse, error) {
	jobs, err := s.jobRepo.Search(db, repositories.JobFilter{
		Keyword:  req.Keyword,
		Location: req.Location,
		Company:  req.Company,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		result = append(result, dto.NewJobResponse(&jobs[i]))
	}
	return result, nil
}

func (s *JobServiceImpl) EmployerJobs(db *gorm.DB, employerID string) ([]dto.EmployerJobResponse, error) {
	jobs, err := s.jobRepo.FindByEmployer(db, employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.EmployerJobResponse, 0, len(jobs))
	for i := range jobs {
		count, err := s.applicationRepo.CountByJob(db, jobs[i].ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		result = append(result, dto.EmployerJobResponse{
			JobResponse:      dto.NewJobResponse(&jobs[i]),
			ApplicationCount: count,
		})
	}
	return result, nil
}
