package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck is a plain liveness probe.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
