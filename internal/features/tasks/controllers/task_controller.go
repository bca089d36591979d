package tasks_controllers

import (
	"net/http"
	"strings"

	"teamhub/internal/features/access"
	tasks_dto "teamhub/internal/features/tasks/dto"
	tasks_services "teamhub/internal/features/tasks/services"
	users_middleware "teamhub/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskController struct {
	taskService *tasks_services.TaskService
}

func (c *TaskController) RegisterRoutes(router *gin.RouterGroup) {
	taskRoutes := router.Group("/tasks")

	taskRoutes.POST("", c.CreateTask)
	taskRoutes.GET("", c.ListTasks)
	taskRoutes.GET("/counts", c.GetTaskCounts)
	taskRoutes.GET("/:taskId", c.GetTask)
	taskRoutes.PUT("/:taskId", c.UpdateTask)
	taskRoutes.DELETE("/:taskId", c.DeleteTask)
}

// CreateTask
// @Summary Create a task
// @Description Create a task in a project the caller can access
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body tasks_dto.CreateTaskRequestDTO true "Task data"
// @Success 201 {object} tasks_models.Task
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tasks [post]
func (c *TaskController) CreateTask(ctx *gin.Context) {
	caller, ok := users_middleware.GetCallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request tasks_dto.CreateTaskRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	task, err := c.taskService.CreateTask(caller, &request)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, task)
}

// ListTasks
// @Summary List project tasks
// @Description List tasks of a project ordered by position
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param projectId query string true "Project ID"
// @Success 200 {object} tasks_dto.ListTasksResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tasks [get]
func (c *TaskController) ListTasks(ctx *gin.Context) {
	caller, ok := users_middleware.GetCallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := uuid.Parse(ctx.Query("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing projectId"})
		return
	}

	response, err := c.taskService.ListTasks(caller, projectID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetTaskCounts
// @Summary Get task counts
// @Description Get per-status task counts for the given projects
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param projectIds query string true "Comma-separated project IDs"
// @Success 200 {object} tasks_dto.TaskCountsResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tasks/counts [get]
func (c *TaskController) GetTaskCounts(ctx *gin.Context) {
	caller, ok := users_middleware.GetCallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectIDs, err := parseUUIDList(ctx.Query("projectIds"))
	if err != nil || len(projectIDs) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or missing projectIds"})
		return
	}

	response, err := c.taskService.GetTaskCounts(caller, projectIDs)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetTask
// @Summary Get a task
// @Description Get a task by ID
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param taskId path string true "Task ID"
// @Success 200 {object} tasks_models.Task
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tasks/{taskId} [get]
func (c *TaskController) GetTask(ctx *gin.Context) {
	caller, ok := users_middleware.GetCallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	taskID, err := uuid.Parse(ctx.Param("taskId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	task, err := c.taskService.GetTask(caller, taskID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, task)
}

// UpdateTask
// @Summary Update a task
// @Description Update task fields; unset fields are left untouched
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param taskId path string true "Task ID"
// @Param request body tasks_dto.UpdateTaskRequestDTO true "Task updates"
// @Success 200 {object} tasks_models.Task
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tasks/{taskId} [put]
func (c *TaskController) UpdateTask(ctx *gin.Context) {
	caller, ok := users_middleware.GetCallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	taskID, err := uuid.Parse(ctx.Param("taskId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var request tasks_dto.UpdateTaskRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	task, err := c.taskService.UpdateTask(caller, taskID, &request)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, task)
}

// DeleteTask
// @Summary Delete a task
// @Description Delete a task by ID
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param taskId path string true "Task ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tasks/{taskId} [delete]
func (c *TaskController) DeleteTask(ctx *gin.Context) {
	caller, ok := users_middleware.GetCallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	taskID, err := uuid.Parse(ctx.Param("taskId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	if err := c.taskService.DeleteTask(caller, taskID); err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

func parseUUIDList(raw string) ([]uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := uuid.Parse(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func respondWithError(ctx *gin.Context, err error) {
	if access.IsAccessError(err) {
		ctx.JSON(access.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
