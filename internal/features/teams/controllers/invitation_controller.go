package teams_controllers

import (
	"net/http"

	teams_dto "teamhub/internal/features/teams/dto"
	teams_services "teamhub/internal/features/teams/services"
	users_middleware "teamhub/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvitationController struct {
	invitationService *teams_services.InvitationService
}

func (c *InvitationController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/teams/:teamId/invitations", c.InviteMember)

	invitationRoutes := router.Group("/invitations")
	invitationRoutes.GET("", c.ListMyInvitations)
	invitationRoutes.POST("/:invitationId/accept", c.AcceptInvitation)
	invitationRoutes.POST("/:invitationId/decline", c.DeclineInvitation)
}

// InviteMember
// @Summary Invite a member
// @Description Create a pending invitation to join a team (admin or owner)
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param teamId path string true "Team ID"
// @Param request body teams_dto.InviteMemberRequestDTO true "Invitation data"
// @Success 201 {object} teams_models.TeamInvitation
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /teams/{teamId}/invitations [post]
func (c *InvitationController) InviteMember(ctx *gin.Context) {
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

	var request teams_dto.InviteMemberRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	invitation, err := c.invitationService.InviteMember(caller, teamID, &request)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, invitation)
}

// ListMyInvitations
// @Summary List my invitations
// @Description List pending, non-expired invitations addressed to the caller's email
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} teams_dto.ListInvitationsResponseDTO
// @Failure 401 {object} map[string]string
// @Router /invitations [get]
func (c *InvitationController) ListMyInvitations(ctx *gin.Context) {
	caller, ok := users_middleware.GetCallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.invitationService.ListMyInvitations(caller)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// AcceptInvitation
// @Summary Accept an invitation
// @Description Accept a pending invitation addressed to the caller and join the team
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param invitationId path string true "Invitation ID"
// @Success 200 {object} teams_models.TeamMember
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /invitations/{invitationId}/accept [post]
func (c *InvitationController) AcceptInvitation(ctx *gin.Context) {
	caller, ok := users_middleware.GetCallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	invitationID, err := uuid.Parse(ctx.Param("invitationId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation ID"})
		return
	}

	member, err := c.invitationService.AcceptInvitation(caller, invitationID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, member)
}

// DeclineInvitation
// @Summary Decline an invitation
// @Description Decline a pending invitation addressed to the caller
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Param invitationId path string true "Invitation ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /invitations/{invitationId}/decline [post]
func (c *InvitationController) DeclineInvitation(ctx *gin.Context) {
	caller, ok := users_middleware.GetCallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	invitationID, err := uuid.Parse(ctx.Param("invitationId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation ID"})
		return
	}

	if err := c.invitationService.DeclineInvitation(caller, invitationID); err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Invitation declined"})
}
