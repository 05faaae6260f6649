package services

import (
	"context"

	"gorm.io/gorm"

	"jobportal/internal/dtos"
	"jobportal/internal/models"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Create records an application. The caller is responsible for checking
// that the job exists first; the table itself does not enforce it.
func (s *ApplicationService) Create(ctx context.Context, jobID uint, name, email, message string) (*models.Application, error) {
	app := &models.Application{
		JobID:   jobID,
		Name:    name,
		Email:   email,
		Message: message,
	}
	if err := s.DB.WithContext(ctx).Create(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}

// ListWithJobTitles returns every application joined with the title of
// the job it targets, newest application first.
func (s *ApplicationService) ListWithJobTitles(ctx context.Context) ([]dtos.ApplicationRow, error) {
	var rows []dtos.ApplicationRow
	err := s.DB.WithContext(ctx).
		Table("applications").
		Select("applications.*, jobs.title AS job_title").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Order("applications.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *ApplicationService) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&models.Application{}).Count(&n).Error
	return n, err
}
