package users_controllers

import (
	"net/http"

	users_dto "teamhub/internal/features/users/dto"
	users_middleware "teamhub/internal/features/users/middleware"
	users_services "teamhub/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

type PreferenceController struct {
	preferenceService *users_services.PreferenceService
}

func (c *PreferenceController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.GET("/users/preferences", c.GetPreferences)
	router.PUT("/users/preferences", c.UpdatePreferences)
}

// GetPreferences
// @Summary Get user preferences
// @Description Get preferences of the currently authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users_models.UserPreference
// @Failure 401 {object} map[string]string
// @Router /users/preferences [get]
func (c *PreferenceController) GetPreferences(ctx *gin.Context) {
	caller, ok := users_middleware.GetCallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	preferences, err := c.preferenceService.GetPreferences(caller.ID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, preferences)
}

// UpdatePreferences
// @Summary Update user preferences
// @Description Update preferences of the currently authenticated user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body users_dto.UpdatePreferencesRequestDTO true "Preference updates"
// @Success 200 {object} users_models.UserPreference
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /users/preferences [put]
func (c *PreferenceController) UpdatePreferences(ctx *gin.Context) {
	caller, ok := users_middleware.GetCallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request users_dto.UpdatePreferencesRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	preferences, err := c.preferenceService.UpdatePreferences(caller.ID, &request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, preferences)
}
