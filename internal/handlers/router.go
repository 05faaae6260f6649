package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"jobportal/internal/auth"
	"jobportal/internal/models"
	"jobportal/internal/services"
	"jobportal/internal/session"
)

// NewRouter wires every route of the portal onto a gin engine. Tests
// drive the same router the server runs.
func NewRouter(sessionSecret string, jobs *services.JobService, applications *services.ApplicationService, notifications *services.NotificationService) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(pageTemplates())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))
	r.Use(session.Middleware(sessionSecret))

	hr := NewHRHandler(jobs, applications, notifications)
	employee := NewEmployeeHandler(jobs, applications, notifications)
	api := NewNotificationAPIHandler(notifications)

	r.GET("/health", HealthCheck)

	// HR side
	r.GET("/login_hr", hr.LoginForm)
	r.POST("/login_hr", hr.Login)
	hrPages := r.Group("", auth.RequireHR())
	{
		hrPages.GET("/hr_dashboard", hr.Dashboard)
		hrPages.GET("/hr_add_job", hr.AddJobForm)
		hrPages.POST("/hr_add_job", hr.AddJob)
		hrPages.GET("/hr_applications", hr.ApplicationsList)
		hrPages.GET("/hr_notifications", hr.NotificationsList)
		hrPages.GET("/hr_logout", hr.Logout)
	}

	// Employee side; the root path aliases the login form.
	r.GET("/", employee.LoginForm)
	r.POST("/", employee.Login)
	r.GET("/login_employee", employee.LoginForm)
	r.POST("/login_employee", employee.Login)
	employeePages := r.Group("", auth.RequireEmployee())
	{
		employeePages.GET("/employee_home", employee.Home)
		employeePages.GET("/add_skills", employee.AddSkillsForm)
		employeePages.POST("/add_skills", employee.AddSkills)
		employeePages.GET("/apply/:id", employee.ApplyForm)
		employeePages.POST("/apply/:id", employee.Apply)
		employeePages.GET("/employee_notifications", employee.NotificationsList)
		employeePages.GET("/employee_logout", employee.Logout)
	}

	r.GET("/confirmation", employee.Confirmation)

	// JSON API for the notification badge
	apiRoutes := r.Group("/api")
	{
		apiRoutes.GET("/hr_unread_notifications", auth.RequireRoleJSON(models.RoleHR), api.HRUnread)
		apiRoutes.GET("/employee_unread_notifications", auth.RequireRoleJSON(models.RoleEmployee), api.EmployeeUnread)
		apiRoutes.POST("/notifications/mark_read/:id", auth.RequireAny(), api.MarkRead)
	}

	return r
}
