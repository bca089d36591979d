package tasks_services

import (
	"teamhub/internal/features/access"
	projects_services "teamhub/internal/features/projects/services"
	tasks_repositories "teamhub/internal/features/tasks/repositories"
)

var taskRepository = &tasks_repositories.TaskRepository{}

var taskService = &TaskService{
	taskRepository: taskRepository,
	projectService: projects_services.GetProjectService(),
	accessService:  access.GetAccessService(),
}

func GetTaskService() *TaskService {
	return taskService
}
