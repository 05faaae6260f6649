package services

import (
	"context"

	"gorm.io/gorm"

	"jobportal/internal/dtos"
	"jobportal/internal/models"
)

type NotificationService struct {
	DB *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{DB: db}
}

// Create inserts an unread notification for the target role.
func (s *NotificationService) Create(ctx context.Context, userType, message string) error {
	n := &models.Notification{
		UserType: userType,
		Message:  message,
	}
	return s.DB.WithContext(ctx).Create(n).Error
}

// ListByRole returns all notifications for a role, read and unread,
// newest first.
func (s *NotificationService) ListByRole(ctx context.Context, userType string) ([]models.Notification, error) {
	var notes []models.Notification
	err := s.DB.WithContext(ctx).
		Where("user_type = ?", userType).
		Order("id DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// ListUnread returns a role's unread notifications, newest first.
func (s *NotificationService) ListUnread(ctx context.Context, userType string) ([]models.Notification, error) {
	var notes []models.Notification
	err := s.DB.WithContext(ctx).
		Where("user_type = ? AND is_read = ?", userType, false).
		Order("id DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// UnreadCounts does two fresh COUNTs, one per role. Called on every
// page render; nothing is cached.
func (s *NotificationService) UnreadCounts(ctx context.Context) (dtos.UnreadCounts, error) {
	var counts dtos.UnreadCounts
	err := s.DB.WithContext(ctx).Model(&models.Notification{}).
		Where("user_type = ? AND is_read = ?", models.RoleHR, false).
		Count(&counts.HRUnread).Error
	if err != nil {
		return counts, err
	}
	err = s.DB.WithContext(ctx).Model(&models.Notification{}).
		Where("user_type = ? AND is_read = ?", models.RoleEmployee, false).
		Count(&counts.EmployeeUnread).Error
	return counts, err
}

// MarkRead flips is_read for the given id. Marking an unknown or
// already-read notification is a no-op, not an error.
func (s *NotificationService) MarkRead(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}
