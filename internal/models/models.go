package models

import (
	"time"
)

// Role targets for notifications and session identity.
const (
	RoleHR       = "hr"
	RoleEmployee = "employee"
)

type Job struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type Application struct {
	ID    uint `gorm:"primaryKey" json:"id"`
	JobID uint `gorm:"not null;index" json:"job_id"`

	Name    string `gorm:"not null" json:"name"`
	Email   string `json:"email"`
	Message string `gorm:"type:text" json:"message"`

	AppliedAt time.Time `gorm:"autoCreateTime" json:"applied_at"`
}

// Notification is a one-way, role-targeted record. UserType is one of
// RoleHR or RoleEmployee; IsRead only ever flips false -> true.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserType  string    `gorm:"not null;index" json:"user_type"`
	Message   string    `gorm:"not null" json:"message"`
	IsRead    bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
