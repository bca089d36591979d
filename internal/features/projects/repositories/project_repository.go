package projects_repositories

import (
	"errors"

	projects_models "teamhub/internal/features/projects/models"
	"teamhub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository struct{}

func (r *ProjectRepository) CreateProject(project *projects_models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}

	return storage.GetDb().Create(project).Error
}

func (r *ProjectRepository) GetProjectByID(projectID uuid.UUID) (*projects_models.Project, error) {
	var project projects_models.Project

	err := storage.GetDb().Where("id = ?", projectID).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &project, nil
}

func (r *ProjectRepository) GetProjectsByTeamIDs(teamIDs []uuid.UUID) ([]*projects_models.Project, error) {
	var projects = make([]*projects_models.Project, 0)

	if len(teamIDs) == 0 {
		return projects, nil
	}

	err := storage.GetDb().
		Where("team_id IN ?", teamIDs).
		Order("created_at DESC").
		Find(&projects).Error

	return projects, err
}

func (r *ProjectRepository) GetRecentProjectsByTeams(
	teamIDs []uuid.UUID,
	limit int,
) ([]*projects_models.Project, error) {
	var projects = make([]*projects_models.Project, 0)

	if len(teamIDs) == 0 {
		return projects, nil
	}

	err := storage.GetDb().
		Where("team_id IN ?", teamIDs).
		Order("created_at DESC").
		Limit(limit).
		Find(&projects).Error

	return projects, err
}

// GetProjectsVisibleToUser returns projects owned by the user's teams
// plus ungated projects the user created.
func (r *ProjectRepository) GetProjectsVisibleToUser(
	teamIDs []uuid.UUID,
	userID uuid.UUID,
) ([]*projects_models.Project, error) {
	var projects = make([]*projects_models.Project, 0)

	query := storage.GetDb().Order("created_at DESC")
	if len(teamIDs) > 0 {
		query = query.Where("team_id IN ? OR (team_id IS NULL AND created_by = ?)", teamIDs, userID)
	} else {
		query = query.Where("team_id IS NULL AND created_by = ?", userID)
	}

	err := query.Find(&projects).Error

	return projects, err
}

func (r *ProjectRepository) GetProjectsByIDs(projectIDs []uuid.UUID) ([]*projects_models.Project, error) {
	var projects = make([]*projects_models.Project, 0)

	if len(projectIDs) == 0 {
		return projects, nil
	}

	err := storage.GetDb().
		Where("id IN ?", projectIDs).
		Find(&projects).Error

	return projects, err
}

func (r *ProjectRepository) UpdateProject(projectID uuid.UUID, updates map[string]any) error {
	return storage.GetDb().
		Model(&projects_models.Project{}).
		Where("id = ?", projectID).
		Updates(updates).Error
}

func (r *ProjectRepository) DeleteProject(projectID uuid.UUID) error {
	return storage.GetDb().
		Where("id = ?", projectID).
		Delete(&projects_models.Project{}).Error
}
