package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobportal/internal/auth"
	"jobportal/internal/dtos"
	"jobportal/internal/models"
	"jobportal/internal/services"
	"jobportal/internal/session"
)

type HRHandler struct {
	Jobs          *services.JobService
	Applications  *services.ApplicationService
	Notifications *services.NotificationService
}

func NewHRHandler(jobs *services.JobService, applications *services.ApplicationService, notifications *services.NotificationService) *HRHandler {
	return &HRHandler{
		Jobs:          jobs,
		Applications:  applications,
		Notifications: notifications,
	}
}

// LoginForm is GET /login_hr
func (h *HRHandler) LoginForm(c *gin.Context) {
	render(c, h.Notifications, http.StatusOK, "login_hr.html", nil)
}

// Login is POST /login_hr. The credential pair is the hardcoded demo
// account; there is nothing else to match against.
func (h *HRHandler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := strings.TrimSpace(c.PostForm("password"))

	if username == auth.HRUsername && password == auth.HRPassword {
		session.LoginHR(c)
		session.AddFlash(c, "success", "Logged in as HR")
		if err := session.Save(c); err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Redirect(http.StatusFound, "/hr_dashboard")
		return
	}

	session.AddFlash(c, "danger", "Invalid HR credentials")
	render(c, h.Notifications, http.StatusOK, "login_hr.html", nil)
}

// Dashboard is GET /hr_dashboard
func (h *HRHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	jobs, err := h.Jobs.List(ctx)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	applicationsCount, err := h.Applications.Count(ctx)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	render(c, h.Notifications, http.StatusOK, "hr_dashboard.html", gin.H{
		"Jobs": jobs,
		"Stats": dtos.DashboardStats{
			JobsCount:         int64(len(jobs)),
			ApplicationsCount: applicationsCount,
		},
	})
}

// AddJobForm is GET /hr_add_job
func (h *HRHandler) AddJobForm(c *gin.Context) {
	render(c, h.Notifications, http.StatusOK, "hr_add_job.html", nil)
}

// AddJob is POST /hr_add_job. A successful post also notifies the
// employee side.
func (h *HRHandler) AddJob(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	description := strings.TrimSpace(c.PostForm("description"))

	if title == "" || description == "" {
		session.AddFlash(c, "warning", "All fields are required")
		render(c, h.Notifications, http.StatusOK, "hr_add_job.html", nil)
		return
	}

	ctx := c.Request.Context()
	if _, err := h.Jobs.Create(ctx, title, description); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if err := h.Notifications.Create(ctx, models.RoleEmployee, fmt.Sprintf("New job posted: %s", title)); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	session.AddFlash(c, "success", "Job posted and employees notified")
	if err := session.Save(c); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, "/hr_dashboard")
}

// ApplicationsList is GET /hr_applications
func (h *HRHandler) ApplicationsList(c *gin.Context) {
	rows, err := h.Applications.ListWithJobTitles(c.Request.Context())
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	render(c, h.Notifications, http.StatusOK, "hr_applications.html", gin.H{
		"Applications": rows,
	})
}

// NotificationsList is GET /hr_notifications. Shows read and unread;
// read state is informational here.
func (h *HRHandler) NotificationsList(c *gin.Context) {
	notes, err := h.Notifications.ListByRole(c.Request.Context(), models.RoleHR)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	render(c, h.Notifications, http.StatusOK, "hr_notifications.html", gin.H{
		"Notifications": notes,
	})
}

// Logout is GET /hr_logout
func (h *HRHandler) Logout(c *gin.Context) {
	session.Logout(c)
	session.AddFlash(c, "info", "Logged out (HR)")
	if err := session.Save(c); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, "/login_hr")
}
