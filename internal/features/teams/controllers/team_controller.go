package teams_controllers

import (
	"net/http"

	"teamhub/internal/features/access"
	teams_dto "teamhub/internal/features/teams/dto"
	teams_services "teamhub/internal/features/teams/services"
	users_middleware "teamhub/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TeamController struct {
	teamService       *teams_services.TeamService
	membershipService *teams_services.MembershipService
}

func (c *TeamController) RegisterRoutes(router *gin.RouterGroup) {
	teamRoutes := router.Group("/teams")

	teamRoutes.POST("", c.CreateTeam)
	teamRoutes.GET("", c.ListTeams)
	teamRoutes.GET("/my", c.GetMyTeam)
	teamRoutes.GET("/:teamId", c.GetTeam)
	teamRoutes.PUT("/:teamId", c.UpdateTeam)
	teamRoutes.GET("/:teamId/members", c.ListMembers)
	teamRoutes.PUT("/:teamId/members/:userId/role", c.ChangeMemberRole)
	teamRoutes.DELETE("/:teamId/members/:userId", c.RemoveMember)
}

// CreateTeam
// @Summary Create a team
// @Description Create a new team with the caller as its owner
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body teams_dto.CreateTeamRequestDTO true "Team data"
// @Success 201 {object} teams_models.Team
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /teams [post]
func (c *TeamController) CreateTeam(ctx *gin.Context) {
	caller, ok := users_middleware.GetCallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request teams_dto.CreateTeamRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	team, err := c.teamService.CreateTeam(caller, &request)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, team)
}

// ListTeams
// @Summary List teams
// @Description List all teams the caller belongs to
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Success 200 {object} teams_dto.ListTeamsResponseDTO
// @Failure 401 {object} map[string]string
// @Router /teams [get]
func (c *TeamController) ListTeams(ctx *gin.Context) {
	caller, ok := users_middleware.GetCallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.teamService.ListTeams(caller)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetMyTeam
// @Summary Get current team
// @Description Get the caller's current team with its members
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Success 200 {object} teams_dto.GetMyTeamResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/my [get]
func (c *TeamController) GetMyTeam(ctx *gin.Context) {
	caller, ok := users_middleware.GetCallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.teamService.GetMyTeam(caller)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetTeam
// @Summary Get a team
// @Description Get a team by ID (members only)
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param teamId path string true "Team ID"
// @Success 200 {object} teams_models.Team
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{teamId} [get]
func (c *TeamController) GetTeam(ctx *gin.Context) {
	caller, ok := users_middleware.GetCallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	teamID, err := uuid.Parse(ctx.Param("teamId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	team, err := c.teamService.GetTeam(caller, teamID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, team)
}

// UpdateTeam
// @Summary Update a team
// @Description Update team name, description or avatar (admin or owner)
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param teamId path string true "Team ID"
// @Param request body teams_dto.UpdateTeamRequestDTO true "Team updates"
// @Success 200 {object} teams_models.Team
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{teamId} [put]
func (c *TeamController) UpdateTeam(ctx *gin.Context) {
	caller, ok := users_middleware.GetCallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	teamID, err := uuid.Parse(ctx.Param("teamId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	var request teams_dto.UpdateTeamRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	team, err := c.teamService.UpdateTeam(caller, teamID, &request)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, team)
}

// ListMembers
// @Summary List team members
// @Description List all members of a team with user info (members only)
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param teamId path string true "Team ID"
// @Success 200 {object} teams_dto.ListMembersResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{teamId}/members [get]
func (c *TeamController) ListMembers(ctx *gin.Context) {
	caller, ok := users_middleware.GetCallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	teamID, err := uuid.Parse(ctx.Param("teamId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	response, err := c.membershipService.ListMembers(caller, teamID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ChangeMemberRole
// @Summary Change a member's role
// @Description Change the role of a team member (admin or owner; owner transitions require owner)
// @Tags teams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param teamId path string true "Team ID"
// @Param userId path string true "Target user ID"
// @Param request body teams_dto.ChangeMemberRoleRequestDTO true "New role"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{teamId}/members/{userId}/role [put]
func (c *TeamController) ChangeMemberRole(ctx *gin.Context) {
	caller, ok := users_middleware.GetCallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	teamID, err := uuid.Parse(ctx.Param("teamId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	targetUserID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var request teams_dto.ChangeMemberRoleRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := c.membershipService.ChangeMemberRole(caller, teamID, targetUserID, request.Role); err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Member role changed successfully"})
}

// RemoveMember
// @Summary Remove a team member
// @Description Remove a member from a team (admin or owner; owners cannot be removed)
// @Tags teams
// @Produce json
// @Security BearerAuth
// @Param teamId path string true "Team ID"
// @Param userId path string true "Target user ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{teamId}/members/{userId} [delete]
func (c *TeamController) RemoveMember(ctx *gin.Context) {
	caller, ok := users_middleware.GetCallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	teamID, err := uuid.Parse(ctx.Param("teamId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID"})
		return
	}

	targetUserID, err := uuid.Parse(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := c.membershipService.RemoveMember(caller, teamID, targetUserID); err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Member removed successfully"})
}

func respondWithError(ctx *gin.Context, err error) {
	if access.IsAccessError(err) {
		ctx.JSON(access.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
