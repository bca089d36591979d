package projects_services

import (
	"teamhub/internal/cache"
	"teamhub/internal/features/access"
	projects_models "teamhub/internal/features/projects/models"
	projects_repositories "teamhub/internal/features/projects/repositories"
	teams_repositories "teamhub/internal/features/teams/repositories"
	cache_utils "teamhub/internal/util/cache"

	"golang.org/x/sync/singleflight"
)

var projectRepository = &projects_repositories.ProjectRepository{}

var projectService = &ProjectService{
	projectRepository: projectRepository,
	memberRepository:  &teams_repositories.MemberRepository{},
	accessService:     access.GetAccessService(),
	projectCacheUtil:  cache_utils.NewCacheUtil[projects_models.Project](cache.GetCache(), "th_project:"),
	singleflight:      singleflight.Group{},
}

func GetProjectService() *ProjectService {
	return projectService
}
