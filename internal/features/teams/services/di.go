package teams_services

import (
	"teamhub/internal/features/access"
	teams_repositories "teamhub/internal/features/teams/repositories"
	users_repositories "teamhub/internal/features/users/repositories"
	"teamhub/internal/util/logger"
)

var teamRepository = &teams_repositories.TeamRepository{}
var memberRepository = &teams_repositories.MemberRepository{}
var invitationRepository = &teams_repositories.InvitationRepository{}
var userRepository = &users_repositories.UserRepository{}

var teamService = &TeamService{
	teamRepository:   teamRepository,
	memberRepository: memberRepository,
	userRepository:   userRepository,
	accessService:    access.GetAccessService(),
	logger:           logger.GetLogger(),
}

var membershipService = &MembershipService{
	memberRepository: memberRepository,
	userRepository:   userRepository,
	accessService:    access.GetAccessService(),
	logger:           logger.GetLogger(),
}

var invitationService = &InvitationService{
	invitationRepository: invitationRepository,
	memberRepository:     memberRepository,
	teamRepository:       teamRepository,
	userRepository:       userRepository,
	accessService:        access.GetAccessService(),
	logger:               logger.GetLogger(),
}

func GetTeamService() *TeamService {
	return teamService
}

func GetMembershipService() *MembershipService {
	return membershipService
}

func GetInvitationService() *InvitationService {
	return invitationService
}
