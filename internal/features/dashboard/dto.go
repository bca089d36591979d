package dashboard

import (
	projects_models "teamhub/internal/features/projects/models"
	tasks_models "teamhub/internal/features/tasks/models"
	teams_dto "teamhub/internal/features/teams/dto"
)

type OverviewResponseDTO struct {
	Teams          []*teams_dto.TeamWithRoleDTO `json:"teams"`
	RecentProjects []*projects_models.Project   `json:"recentProjects"`
	RecentTasks    []*tasks_models.Task         `json:"recentTasks"`
}
