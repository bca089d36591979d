package teams_controllers

import (
	teams_services "teamhub/internal/features/teams/services"
)

var teamController = TeamController{
	teamService:       teams_services.GetTeamService(),
	membershipService: teams_services.GetMembershipService(),
}

var invitationController = InvitationController{
	invitationService: teams_services.GetInvitationService(),
}

func GetTeamController() *TeamController {
	return &teamController
}

func GetInvitationController() *InvitationController {
	return &invitationController
}
