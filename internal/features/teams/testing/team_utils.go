package teams_testing

import (
	"net/http"

	teams_dto "teamhub/internal/features/teams/dto"
	teams_models "teamhub/internal/features/teams/models"
	users_dto "teamhub/internal/features/users/dto"
	users_enums "teamhub/internal/features/users/enums"
	users_middleware "teamhub/internal/features/users/middleware"
	users_services "teamhub/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

type ControllerInterface interface {
	RegisterRoutes(router *gin.RouterGroup)
}

func CreateTestRouter(controllers ...ControllerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))

	for _, controller := range controllers {
		if routerGroup, ok := protected.(*gin.RouterGroup); ok {
			controller.RegisterRoutes(routerGroup)
		}
	}

	return router
}

func CreateTestTeam(
	name string,
	owner *users_dto.SignInResponseDTO,
	router *gin.Engine,
) *teams_models.Team {
	request := teams_dto.CreateTeamRequestDTO{
		Name: name,
	}

	var team teams_models.Team
	makePostAndUnmarshal(router, "/api/v1/teams", owner.Token, request, http.StatusCreated, &team)

	return &team
}

func InviteToTeam(
	team *teams_models.Team,
	inviter *users_dto.SignInResponseDTO,
	request *teams_dto.InviteMemberRequestDTO,
	router *gin.Engine,
) *teams_models.TeamInvitation {
	var invitation teams_models.TeamInvitation
	makePostAndUnmarshal(
		router,
		"/api/v1/teams/"+team.ID.String()+"/invitations",
		inviter.Token,
		request,
		http.StatusCreated,
		&invitation,
	)

	return &invitation
}

func AcceptInvitation(
	invitation *teams_models.TeamInvitation,
	invitee *users_dto.SignInResponseDTO,
	router *gin.Engine,
) *teams_models.TeamMember {
	var member teams_models.TeamMember
	makePostAndUnmarshal(
		router,
		"/api/v1/invitations/"+invitation.ID.String()+"/accept",
		invitee.Token,
		nil,
		http.StatusOK,
		&member,
	)

	return &member
}

// JoinTeam invites the user with the given role and accepts the
// invitation, producing an established membership for tests.
func JoinTeam(
	team *teams_models.Team,
	inviter *users_dto.SignInResponseDTO,
	invitee *users_dto.SignInResponseDTO,
	role users_enums.TeamRole,
	router *gin.Engine,
) *teams_models.TeamMember {
	invitation := InviteToTeam(team, inviter, &teams_dto.InviteMemberRequestDTO{
		Email: invitee.Email,
		Role:  role,
	}, router)

	return AcceptInvitation(invitation, invitee, router)
}
