package dashboard

import (
	projects_repositories "teamhub/internal/features/projects/repositories"
	tasks_repositories "teamhub/internal/features/tasks/repositories"
	teams_repositories "teamhub/internal/features/teams/repositories"
	users_models "teamhub/internal/features/users/models"

	"github.com/google/uuid"
)

const (
	recentProjectsLimit = 10
	recentTasksLimit    = 5
)

type DashboardService struct {
	teamRepository    *teams_repositories.TeamRepository
	memberRepository  *teams_repositories.MemberRepository
	projectRepository *projects_repositories.ProjectRepository
	taskRepository    *tasks_repositories.TaskRepository
}

// GetOverview aggregates the caller's teams with their most recent
// projects and tasks. Everything is filtered through the caller's
// memberships, so no extra gating is needed.
func (s *DashboardService) GetOverview(caller *users_models.Caller) (*OverviewResponseDTO, error) {
	teams, err := s.teamRepository.GetTeamsByUserID(caller.ID)
	if err != nil {
		return nil, err
	}

	teamIDs, err := s.memberRepository.GetTeamIDsByUser(caller.ID)
	if err != nil {
		return nil, err
	}

	projects, err := s.projectRepository.GetRecentProjectsByTeams(teamIDs, recentProjectsLimit)
	if err != nil {
		return nil, err
	}

	projectIDs := make([]uuid.UUID, 0, len(projects))
	for _, project := range projects {
		projectIDs = append(projectIDs, project.ID)
	}

	tasks, err := s.taskRepository.GetRecentTasksByProjects(projectIDs, recentTasksLimit)
	if err != nil {
		return nil, err
	}

	return &OverviewResponseDTO{
		Teams:          teams,
		RecentProjects: projects,
		RecentTasks:    tasks,
	}, nil
}
