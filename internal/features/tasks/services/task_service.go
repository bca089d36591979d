package tasks_services

import (
	"fmt"
	"time"

	"teamhub/internal/features/access"
	projects_services "teamhub/internal/features/projects/services"
	tasks_dto "teamhub/internal/features/tasks/dto"
	tasks_models "teamhub/internal/features/tasks/models"
	tasks_repositories "teamhub/internal/features/tasks/repositories"
	users_models "teamhub/internal/features/users/models"
	time_parser "teamhub/internal/util/time"

	"github.com/google/uuid"
)

type TaskService struct {
	taskRepository *tasks_repositories.TaskRepository
	projectService *projects_services.ProjectService
	accessService  *access.Service
}

func (s *TaskService) CreateTask(
	caller *users_models.Caller,
	request *tasks_dto.CreateTaskRequestDTO,
) (*tasks_models.Task, error) {
	if err := s.requireProject(caller, request.ProjectID); err != nil {
		return nil, err
	}

	status := request.Status
	if status == "" {
		status = tasks_models.TaskStatusTodo
	}

	priority := request.Priority
	if priority == "" {
		priority = tasks_models.DefaultTaskPriority
	}

	now := time.Now().UTC()
	task := &tasks_models.Task{
		ID:          uuid.New(),
		ProjectID:   request.ProjectID,
		Title:       request.Title,
		Description: request.Description,
		Status:      status,
		Priority:    priority,
		Position:    request.Position,
		DueDate:     time_parser.ParseDueDate(request.DueDate),
		AssignedTo:  request.AssignedTo,
		CreatedBy:   caller.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.taskRepository.CreateTask(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

func (s *TaskService) ListTasks(
	caller *users_models.Caller,
	projectID uuid.UUID,
) (*tasks_dto.ListTasksResponseDTO, error) {
	if err := s.requireProject(caller, projectID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepository.GetTasksByProject(projectID)
	if err != nil {
		return nil, err
	}

	return &tasks_dto.ListTasksResponseDTO{Tasks: tasks}, nil
}

func (s *TaskService) GetTask(
	caller *users_models.Caller,
	taskID uuid.UUID,
) (*tasks_models.Task, error) {
	task, err := s.taskRepository.GetTaskByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, access.ErrNotFound
	}

	if err := s.requireProject(caller, task.ProjectID); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) UpdateTask(
	caller *users_models.Caller,
	taskID uuid.UUID,
	request *tasks_dto.UpdateTaskRequestDTO,
) (*tasks_models.Task, error) {
	task, err := s.GetTask(caller, taskID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{"updated_at": time.Now().UTC()}
	if request.Title != nil {
		updates["title"] = *request.Title
	}
	if request.Description != nil {
		updates["description"] = *request.Description
	}
	if request.Status != nil {
		updates["status"] = *request.Status
	}
	if request.Priority != nil {
		updates["priority"] = *request.Priority
	}
	if request.Position != nil {
		updates["position"] = *request.Position
	}
	if request.DueDate != nil {
		updates["due_date"] = time_parser.ParseDueDate(request.DueDate)
	}
	if request.AssignedTo != nil {
		updates["assigned_to"] = *request.AssignedTo
	}

	if err := s.taskRepository.UpdateTask(task.ID, updates); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.taskRepository.GetTaskByID(task.ID)
}

func (s *TaskService) DeleteTask(
	caller *users_models.Caller,
	taskID uuid.UUID,
) error {
	task, err := s.GetTask(caller, taskID)
	if err != nil {
		return err
	}

	if err := s.taskRepository.DeleteTask(task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

// GetTaskCounts aggregates per-status counts for the requested
// projects. The caller must be able to access every project in the
// request, so the check runs against the owning team of each.
func (s *TaskService) GetTaskCounts(
	caller *users_models.Caller,
	projectIDs []uuid.UUID,
) (*tasks_dto.TaskCountsResponseDTO, error) {
	checkedTeams := make(map[uuid.UUID]bool)

	for _, projectID := range projectIDs {
		project, err := s.projectService.GetProjectWithCache(projectID)
		if err != nil {
			return nil, err
		}
		if project == nil {
			return nil, access.ErrNotFound
		}
		if project.TeamID == nil || checkedTeams[*project.TeamID] {
			continue
		}

		if err := s.accessService.RequireProjectTeamAccess(project, caller.ID); err != nil {
			return nil, err
		}
		checkedTeams[*project.TeamID] = true
	}

	counts, err := s.taskRepository.CountByStatus(projectIDs)
	if err != nil {
		return nil, err
	}

	return &tasks_dto.TaskCountsResponseDTO{Counts: counts}, nil
}

func (s *TaskService) requireProject(caller *users_models.Caller, projectID uuid.UUID) error {
	project, err := s.projectService.GetProjectWithCache(projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return access.ErrNotFound
	}

	return s.accessService.RequireProjectTeamAccess(project, caller.ID)
}
