package handlers

import (
	"net/http"

	"quickserve/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest stored dependency health snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"deps":   status,
	})
}
