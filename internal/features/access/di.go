package access

import (
	projects_repositories "teamhub/internal/features/projects/repositories"
	teams_repositories "teamhub/internal/features/teams/repositories"
)

var accessService = &Service{
	teamRepository:    &teams_repositories.TeamRepository{},
	memberRepository:  &teams_repositories.MemberRepository{},
	projectRepository: &projects_repositories.ProjectRepository{},
}

func GetAccessService() *Service {
	return accessService
}
