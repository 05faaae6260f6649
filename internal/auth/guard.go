package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobportal/internal/session"
)

// Demo HR credentials. Single shared account, checked verbatim.
const (
	HRUsername = "hr"
	HRPassword = "hr123"
)

// RequireHR redirects to the HR login page unless the session identity is HR.
func RequireHR() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.Current(c).IsHR() {
			c.Redirect(http.StatusFound, "/login_hr")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireEmployee redirects to the employee login page unless the session
// identity is an employee.
func RequireEmployee() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.Current(c).IsEmployee() {
			c.Redirect(http.StatusFound, "/login_employee")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAny rejects anonymous callers with 401. Used by the JSON API,
// where a redirect to a login form makes no sense.
func RequireAny() gin.HandlerFunc {
	return func(c *gin.Context) {
		if session.Current(c).Role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		c.Next()
	}
}

// RequireRoleJSON rejects callers whose identity is not the given role
// with 401. Used by the per-role unread feeds.
func RequireRoleJSON(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if session.Current(c).Role != role {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		c.Next()
	}
}
