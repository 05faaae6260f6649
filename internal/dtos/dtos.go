package dtos

import "time"

// UnreadCounts is the per-role unread notification badge data rendered
// on every page.
type UnreadCounts struct {
	HRUnread       int64 `json:"hr_unread"`
	EmployeeUnread int64 `json:"emp_unread"`
}

// DashboardStats feeds the HR dashboard header.
type DashboardStats struct {
	JobsCount         int64 `json:"jobs_count"`
	ApplicationsCount int64 `json:"applications_count"`
}

// ApplicationRow is an application joined with the title of the job it
// targets, for the HR applications page.
type ApplicationRow struct {
	ID        uint      `json:"id"`
	JobID     uint      `json:"job_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	AppliedAt time.Time `json:"applied_at"`
	JobTitle  string    `json:"job_title"`
}
