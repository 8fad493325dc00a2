package services

import (
	"gorm.io/gorm"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type ApplicationService interface {
	Apply(db *gorm.DB, jobID, seekerID string, role models.UserRole, req *dto.ApplyRequest) (*dto.ApplyResult, error)
	SeekerApplications(db *gorm.DB, seekerID string) ([]dto.ApplicationResponse, error)
	JobApplications(db *gorm.DB, jobID, requesterID string, role models.UserRole) ([]dto.ApplicationResponse, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
}

func NewApplicationService(applicationRepo repositories.ApplicationRepository, jobRepo repositories.JobRepository) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
	}
}

// Apply records a seeker's interest in a job at most once. A repeat apply is
// a no-op reported as AlreadyApplied; the storage-level unique constraint
// covers the race between the existence check and the insert, so two
// concurrent identical requests still produce exactly one row.
func (s *ApplicationServiceImpl) Apply(db *gorm.DB, jobID, seekerID string, role models.UserRole, req *dto.ApplyRequest) (*dto.ApplyResult, error) {
	if !auth.CanApply(role) {
		return nil, apperrors.NewForbiddenError("Only job seekers can apply")
	}

	if _, err := s.jobRepo.FindByID(db, jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	existing, err := s.applicationRepo.FindByJobAndSeeker(db, jobID, seekerID)
	if err == nil {
		return &dto.ApplyResult{
			Application:    dto.NewApplicationResponse(existing),
			AlreadyApplied: true,
		}, nil
	}
	if !apperrors.Is(err, repositories.ErrApplicationNotFound) {
		return nil, apperrors.InternalError(err)
	}

	app := &models.Application{
		JobID:    jobID,
		SeekerID: seekerID,
		Message:  req.Message,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return s.applicationRepo.Create(tx, app)
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationExists) {
			// Lost the race against an identical request; report the same
			// outcome as the existence check above.
			won, findErr := s.applicationRepo.FindByJobAndSeeker(db, jobID, seekerID)
			if findErr != nil {
				return nil, apperrors.InternalError(findErr)
			}
			return &dto.ApplyResult{
				Application:    dto.NewApplicationResponse(won),
				AlreadyApplied: true,
			}, nil
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.ApplyResult{
		Application:    dto.NewApplicationResponse(app),
		AlreadyApplied: false,
	}, nil
}

func (s *ApplicationServiceImpl) SeekerApplications(db *gorm.DB, seekerID string) ([]dto.ApplicationResponse, error) {
	apps, err := s.applicationRepo.FindBySeeker(db, seekerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		result = append(result, *dto.NewApplicationResponse(&apps[i]))
	}
	return result, nil
}

// JobApplications lists a listing's applications for its owning employer.
func (s *ApplicationServiceImpl) JobApplications(db *gorm.DB, jobID, requesterID string, role models.UserRole) ([]dto.ApplicationResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if role != models.UserRoleAdmin && job.EmployerID != requesterID {
		return nil, apperrors.NewForbiddenError("Only the owning employer can view applications")
	}

	apps, err := s.applicationRepo.FindByJob(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		result = append(result, *dto.NewApplicationResponse(&apps[i]))
	}
	return result, nil
}
