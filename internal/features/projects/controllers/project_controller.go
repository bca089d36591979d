package projects_controllers

import (
	"net/http"
	"strings"

	"teamhub/internal/features/access"
	projects_dto "teamhub/internal/features/projects/dto"
	projects_services "teamhub/internal/features/projects/services"
	users_middleware "teamhub/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProjectController struct {
	projectService *projects_services.ProjectService
}

func (c *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	projectRoutes := router.Group("/projects")

	projectRoutes.POST("", c.CreateProject)
	projectRoutes.GET("", c.ListProjects)
	projectRoutes.GET("/:projectId", c.GetProject)
	projectRoutes.PUT("/:projectId", c.UpdateProject)
	projectRoutes.DELETE("/:projectId", c.DeleteProject)
}

// CreateProject
// @Summary Create a project
// @Description Create a project, optionally owned by one of the caller's teams
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body projects_dto.CreateProjectRequestDTO true "Project data"
// @Success 201 {object} projects_models.Project
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /projects [post]
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	caller, ok := users_middleware.GetCallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request projects_dto.CreateProjectRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	project, err := c.projectService.CreateProject(caller, &request)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, project)
}

// ListProjects
// @Summary List projects
// @Description List projects visible to the caller, optionally filtered by team IDs
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param teamIds query string false "Comma-separated team IDs"
// @Success 200 {object} projects_dto.ListProjectsResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /projects [get]
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	caller, ok := users_middleware.GetCallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	teamIDs, err := parseUUIDList(ctx.Query("teamIds"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid team ID in teamIds"})
		return
	}

	response, err := c.projectService.ListProjects(caller, teamIDs)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetProject
// @Summary Get a project
// @Description Get a project by ID; team projects require membership
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Success 200 {object} projects_models.Project
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{projectId} [get]
func (c *ProjectController) GetProject(ctx *gin.Context) {
	caller, ok := users_middleware.GetCallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	project, err := c.projectService.GetProject(caller, projectID)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// UpdateProject
// @Summary Update a project
// @Description Update project fields; team projects require membership
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Param request body projects_dto.UpdateProjectRequestDTO true "Project updates"
// @Success 200 {object} projects_models.Project
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{projectId} [put]
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	caller, ok := users_middleware.GetCallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var request projects_dto.UpdateProjectRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	project, err := c.projectService.UpdateProject(caller, projectID, &request)
	if err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// DeleteProject
// @Summary Delete a project
// @Description Delete a project; team projects require membership
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{projectId} [delete]
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	caller, ok := users_middleware.GetCallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	if err := c.projectService.DeleteProject(caller, projectID); err != nil {
		respondWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
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
