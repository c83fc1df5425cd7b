package handler

import (
	"net/http"

	"songbox/backend/common"

	"github.com/gin-gonic/gin"
)

// GetStatus reports liveness and build information.
func GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"version":    common.Version,
		"start_time": common.StartTime,
	})
}
