package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"jobportal/internal/models"
	"jobportal/internal/services"
	"jobportal/internal/session"
)

type EmployeeHandler struct {
	Jobs          *services.JobService
	Applications  *services.ApplicationService
	Notifications *services.NotificationService
}

func NewEmployeeHandler(jobs *services.JobService, applications *services.ApplicationService, notifications *services.NotificationService) *EmployeeHandler {
	return &EmployeeHandler{
		Jobs:          jobs,
		Applications:  applications,
		Notifications: notifications,
	}
}

// LoginForm serves GET / and GET /login_employee
func (h *EmployeeHandler) LoginForm(c *gin.Context) {
	render(c, h.Notifications, http.StatusOK, "login_employee.html", nil)
}

// Login serves POST / and POST /login_employee. Any non-empty name is
// accepted; there is no password and no uniqueness check.
func (h *EmployeeHandler) Login(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		session.AddFlash(c, "warning", "Enter your name")
		render(c, h.Notifications, http.StatusOK, "login_employee.html", nil)
		return
	}

	session.LoginEmployee(c, name)
	session.AddFlash(c, "success", fmt.Sprintf("Welcome %s", name))
	if err := session.Save(c); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, "/employee_home")
}

// Home is GET /employee_home
func (h *EmployeeHandler) Home(c *gin.Context) {
	jobs, err := h.Jobs.List(c.Request.Context())
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	render(c, h.Notifications, http.StatusOK, "employee_home.html", gin.H{
		"Jobs": jobs,
		"Name": session.Current(c).Name,
	})
}

// AddSkillsForm is GET /add_skills
func (h *EmployeeHandler) AddSkillsForm(c *gin.Context) {
	render(c, h.Notifications, http.StatusOK, "add_skills.html", nil)
}

// AddSkills is POST /add_skills. Deliberately a no-op: the form is
// accepted and acknowledged but nothing is stored.
func (h *EmployeeHandler) AddSkills(c *gin.Context) {
	session.AddFlash(c, "success", "Skills saved (demo)")
	if err := session.Save(c); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, "/employee_home")
}

// ApplyForm is GET /apply/:id
func (h *EmployeeHandler) ApplyForm(c *gin.Context) {
	job, ok := h.lookupJob(c)
	if !ok {
		return
	}
	render(c, h.Notifications, http.StatusOK, "apply.html", gin.H{
		"Job": job,
	})
}

// Apply is POST /apply/:id. The applicant name comes from the session;
// email and message are optional form fields.
func (h *EmployeeHandler) Apply(c *gin.Context) {
	job, ok := h.lookupJob(c)
	if !ok {
		return
	}

	name := session.Current(c).Name
	email := strings.TrimSpace(c.PostForm("email"))
	message := strings.TrimSpace(c.PostForm("message"))

	ctx := c.Request.Context()
	if _, err := h.Applications.Create(ctx, job.ID, name, email, message); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if err := h.Notifications.Create(ctx, models.RoleHR, fmt.Sprintf("%s applied for '%s'", name, job.Title)); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	session.AddFlash(c, "success", "Application submitted. HR notified.")
	if err := session.Save(c); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, "/confirmation")
}

// lookupJob resolves the :id path parameter. A missing job sends the
// user back home with a flash; a malformed id is a plain 404.
func (h *EmployeeHandler) lookupJob(c *gin.Context) (*models.Job, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.AbortWithStatus(http.StatusNotFound)
		return nil, false
	}
	job, err := h.Jobs.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			session.AddFlash(c, "danger", "Job not found")
			if err := session.Save(c); err != nil {
				c.AbortWithStatus(http.StatusInternalServerError)
				return nil, false
			}
			c.Redirect(http.StatusFound, "/employee_home")
			c.Abort()
			return nil, false
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return nil, false
	}
	return job, true
}

// NotificationsList is GET /employee_notifications
func (h *EmployeeHandler) NotificationsList(c *gin.Context) {
	notes, err := h.Notifications.ListByRole(c.Request.Context(), models.RoleEmployee)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	render(c, h.Notifications, http.StatusOK, "employee_notifications.html", gin.H{
		"Notifications": notes,
	})
}

// Logout is GET /employee_logout
func (h *EmployeeHandler) Logout(c *gin.Context) {
	session.Logout(c)
	session.AddFlash(c, "info", "Logged out (Employee)")
	if err := session.Save(c); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.Redirect(http.StatusFound, "/login_employee")
}

// Confirmation is GET /confirmation, the stateless post-application page.
func (h *EmployeeHandler) Confirmation(c *gin.Context) {
	render(c, h.Notifications, http.StatusOK, "confirmation.html", nil)
}
