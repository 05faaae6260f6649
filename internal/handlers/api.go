package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobportal/internal/models"
	"jobportal/internal/services"
)

// NotificationAPIHandler serves the JSON notification endpoints used by
// the pages' notification badge.
type NotificationAPIHandler struct {
	Notifications *services.NotificationService
}

func NewNotificationAPIHandler(notifications *services.NotificationService) *NotificationAPIHandler {
	return &NotificationAPIHandler{Notifications: notifications}
}

// HRUnread is GET /api/hr_unread_notifications
func (h *NotificationAPIHandler) HRUnread(c *gin.Context) {
	h.listUnread(c, models.RoleHR)
}

// EmployeeUnread is GET /api/employee_unread_notifications
func (h *NotificationAPIHandler) EmployeeUnread(c *gin.Context) {
	h.listUnread(c, models.RoleEmployee)
}

func (h *NotificationAPIHandler) listUnread(c *gin.Context, role string) {
	notes, err := h.Notifications.ListUnread(c.Request.Context(), role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load notifications"})
		return
	}
	if notes == nil {
		notes = []models.Notification{}
	}
	c.JSON(http.StatusOK, notes)
}

// MarkRead is POST /api/notifications/mark_read/:id. The update is
// unconditional, so re-marking a read notification succeeds quietly.
func (h *NotificationAPIHandler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification id"})
		return
	}
	if err := h.Notifications.MarkRead(c.Request.Context(), uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notification read"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
