package dashboard

import (
	"net/http"

	users_middleware "teamhub/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	dashboardService *DashboardService
}

func (c *DashboardController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard/overview", c.GetOverview)
}

// GetOverview
// @Summary Get dashboard overview
// @Description Get the caller's teams, recent projects and recent tasks
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} OverviewResponseDTO
// @Failure 401 {object} map[string]string
// @Router /dashboard/overview [get]
func (c *DashboardController) GetOverview(ctx *gin.Context) {
	caller, ok := users_middleware.GetCallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	overview, err := c.dashboardService.GetOverview(caller)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard overview"})
		return
	}

	ctx.JSON(http.StatusOK, overview)
}
