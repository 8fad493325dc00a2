package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"jobboard_backend/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter holds the optional substring filters for listing search.
// Empty fields impose no constraint.
type JobFilter struct {
	Keyword  string // matched against title
	Location string
	Company  string
}

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	Delete(db *gorm.DB, id string) error
	FindByEmployer(db *gorm.DB, employerID string) ([]models.Job, error)
	Search(db *gorm.DB, filter JobFilter) ([]models.Job, error)
	FindAll(db *gorm.DB) ([]models.Job, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// Delete removes the listing and its applications in one transaction, so a
// deleted listing never leaves dangling application rows behind.
func (r *JobRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Job{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobNotFound
		}
		return nil
	})
}

func (r *JobRepositoryImpl) FindByEmployer(db *gorm.DB, employerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Where("employer_id = ?", employerID).Order("created_at").Find(&jobs).Error
	return jobs, err
}

// Search applies each supplied filter as a case-insensitive substring match.
// LOWER(...) LIKE keeps the query portable between postgres and the sqlite
// test database.
func (r *JobRepositoryImpl) Search(db *gorm.DB, filter JobFilter) ([]models.Job, error) {
	query := db.Model(&models.Job{})

	if filter.Keyword != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.Keyword)+"%")
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if filter.Company != "" {
		query = query.Where("LOWER(company) LIKE ?", "%"+strings.ToLower(filter.Company)+"%")
	}

	var jobs []models.Job
	err := query.Order("created_at").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindAll(db *gorm.DB) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Order("created_at").Find(&jobs).Error
	return jobs, err
}
