package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jobportal/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

func (s *JobService) Create(ctx context.Context, title, description string) (*models.Job, error) {
	job := &models.Job{
		Title:       title,
		Description: description,
	}
	if err := s.DB.WithContext(ctx).Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// List returns all jobs, newest first.
func (s *JobService) List(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := s.DB.WithContext(ctx).Order("id DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *JobService) Get(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	if err := s.DB.WithContext(ctx).First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (s *JobService) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&models.Job{}).Count(&n).Error
	return n, err
}
