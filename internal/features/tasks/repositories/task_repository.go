package tasks_repositories

import (
	"errors"

	tasks_dto "teamhub/internal/features/tasks/dto"
	tasks_models "teamhub/internal/features/tasks/models"
	"teamhub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskRepository struct{}

func (r *TaskRepository) CreateTask(task *tasks_models.Task) error {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}

	return storage.GetDb().Create(task).Error
}

func (r *TaskRepository) GetTaskByID(taskID uuid.UUID) (*tasks_models.Task, error) {
	var task tasks_models.Task

	err := storage.GetDb().Where("id = ?", taskID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &task, nil
}

func (r *TaskRepository) GetTasksByProject(projectID uuid.UUID) ([]*tasks_models.Task, error) {
	var tasks = make([]*tasks_models.Task, 0)

	err := storage.GetDb().
		Where("project_id = ?", projectID).
		Order("position ASC, created_at ASC").
		Find(&tasks).Error

	return tasks, err
}

func (r *TaskRepository) GetRecentTasksByProjects(
	projectIDs []uuid.UUID,
	limit int,
) ([]*tasks_models.Task, error) {
	var tasks = make([]*tasks_models.Task, 0)

	if len(projectIDs) == 0 {
		return tasks, nil
	}

	err := storage.GetDb().
		Where("project_id IN ?", projectIDs).
		Order("created_at DESC").
		Limit(limit).
		Find(&tasks).Error

	return tasks, err
}

func (r *TaskRepository) UpdateTask(taskID uuid.UUID, updates map[string]any) error {
	return storage.GetDb().
		Model(&tasks_models.Task{}).
		Where("id = ?", taskID).
		Updates(updates).Error
}

func (r *TaskRepository) DeleteTask(taskID uuid.UUID) error {
	return storage.GetDb().
		Where("id = ?", taskID).
		Delete(&tasks_models.Task{}).Error
}

// CountByStatus aggregates task counts per (project, status) for the
// given projects in one query.
func (r *TaskRepository) CountByStatus(projectIDs []uuid.UUID) ([]*tasks_dto.TaskStatusCountDTO, error) {
	var counts = make([]*tasks_dto.TaskStatusCountDTO, 0)

	if len(projectIDs) == 0 {
		return counts, nil
	}

	sql := `
		SELECT
			project_id,
			status,
			COUNT(*) as count
		FROM tasks
		WHERE project_id IN ?
		GROUP BY project_id, status`

	err := storage.GetDb().Raw(sql, projectIDs).Scan(&counts).Error

	return counts, err
}
