package dashboard

import (
	projects_repositories "teamhub/internal/features/projects/repositories"
	tasks_repositories "teamhub/internal/features/tasks/repositories"
	teams_repositories "teamhub/internal/features/teams/repositories"
)

var dashboardService = &DashboardService{
	teamRepository:    &teams_repositories.TeamRepository{},
	memberRepository:  &teams_repositories.MemberRepository{},
	projectRepository: &projects_repositories.ProjectRepository{},
	taskRepository:    &tasks_repositories.TaskRepository{},
}

var dashboardController = &DashboardController{
	dashboardService: dashboardService,
}

func GetDashboardService() *DashboardService {
	return dashboardService
}

func GetDashboardController() *DashboardController {
	return dashboardController
}
