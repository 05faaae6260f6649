package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobportal/internal/services"
	"jobportal/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

func pageTemplates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// render draws a page with the ambient data every template expects:
// fresh unread counts, pending flashes, and the session identity.
func render(c *gin.Context, notifications *services.NotificationService, status int, name string, data gin.H) {
	unread, err := notifications.UnreadCounts(c.Request.Context())
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if data == nil {
		data = gin.H{}
	}
	data["Unread"] = unread
	data["Flashes"] = session.TakeFlashes(c)
	data["Identity"] = session.Current(c)
	c.HTML(status, name, data)
}
