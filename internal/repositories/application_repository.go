package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"jobboard_backend/internal/models"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrApplicationExists   = errors.New("application already exists")
)

type ApplicationRepository interface {
	Create(db *gorm.DB, app *models.Application) error
	FindByJobAndSeeker(db *gorm.DB, jobID, seekerID string) (*models.Application, error)
	FindBySeeker(db *gorm.DB, seekerID string) ([]models.Application, error)
	FindByJob(db *gorm.DB, jobID string) ([]models.Application, error)
	FindAll(db *gorm.DB) ([]models.Application, error)
	CountByJob(db *gorm.DB, jobID string) (int64, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

// Create inserts an application. The (job_id, seeker_id) unique index is the
// arbiter under concurrent identical requests: the losing insert surfaces as
// ErrApplicationExists, never as a second row.
func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, app *models.Application) error {
	if err := db.Create(app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return ErrApplicationExists
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByJobAndSeeker(db *gorm.DB, jobID, seekerID string) (*models.Application, error) {
	var app models.Application
	err := db.Where("job_id = ? AND seeker_id = ?", jobID, seekerID).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindBySeeker(db *gorm.DB, seekerID string) ([]models.Application, error) {
	var apps []models.Application
	err := db.Where("seeker_id = ?", seekerID).Order("created_at").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindByJob(db *gorm.DB, jobID string) ([]models.Application, error) {
	var apps []models.Application
	err := db.Where("job_id = ?", jobID).Order("created_at").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindAll(db *gorm.DB) ([]models.Application, error) {
	var apps []models.Application
	err := db.Order("created_at").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) CountByJob(db *gorm.DB, jobID string) (int64, error) {
	var count int64
	err := db.Model(&models.Application{}).Where("job_id = ?", jobID).Count(&count).Error
	return count, err
}

// isUniqueViolation is the fallback for drivers that do not translate
// constraint errors to gorm.ErrDuplicatedKey.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate key")
}
