package system_healthcheck

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthcheckController struct {
	healthcheckService *HealthcheckService
}

func (c *HealthcheckController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/system/health", c.GetSystemStatus)
}

// GetSystemStatus
// @Summary Get system status
// @Description Get a snapshot of host memory and CPU usage
// @Tags health
// @Produce json
// @Success 200 {object} SystemStatus
// @Failure 500 {object} map[string]string
// @Router /system/health [get]
func (c *HealthcheckController) GetSystemStatus(ctx *gin.Context) {
	status, err := c.healthcheckService.GetSystemStatus()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, status)
}
