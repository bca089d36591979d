package projects_services

import (
	"fmt"
	"time"

	"teamhub/internal/features/access"
	projects_dto "teamhub/internal/features/projects/dto"
	projects_models "teamhub/internal/features/projects/models"
	projects_repositories "teamhub/internal/features/projects/repositories"
	teams_repositories "teamhub/internal/features/teams/repositories"
	users_interfaces "teamhub/internal/features/users/interfaces"
	users_models "teamhub/internal/features/users/models"
	cache_utils "teamhub/internal/util/cache"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const DefaultProjectStatus = "active"

type ProjectService struct {
	projectRepository *projects_repositories.ProjectRepository
	memberRepository  *teams_repositories.MemberRepository
	accessService     *access.Service
	auditLogWriter    users_interfaces.AuditLogWriter

	projectCacheUtil *cache_utils.CacheUtil[projects_models.Project]
	singleflight     singleflight.Group // Prevents thundering herd on DB calls
}

func (s *ProjectService) SetAuditLogWriter(writer users_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

func (s *ProjectService) CreateProject(
	caller *users_models.Caller,
	request *projects_dto.CreateProjectRequestDTO,
) (*projects_models.Project, error) {
	if request.TeamID != nil {
		if _, err := s.accessService.RequireTeamMember(*request.TeamID, caller.ID); err != nil {
			return nil, err
		}
	}

	status := request.Status
	if status == "" {
		status = DefaultProjectStatus
	}

	now := time.Now().UTC()
	project := &projects_models.Project{
		ID:          uuid.New(),
		Name:        request.Name,
		Description: request.Description,
		Status:      status,
		TeamID:      request.TeamID,
		CreatedBy:   caller.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.projectRepository.CreateProject(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	// Pre-warm cache with new project for immediate availability
	s.projectCacheUtil.Set(project.ID.String(), project)

	if s.auditLogWriter != nil {
		s.auditLogWriter.WriteAuditLog(
			fmt.Sprintf("Project created: %s", project.Name),
			&caller.ID,
			project.TeamID,
		)
	}

	return project, nil
}

func (s *ProjectService) GetProject(
	caller *users_models.Caller,
	projectID uuid.UUID,
) (*projects_models.Project, error) {
	project, err := s.GetProjectWithCache(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, access.ErrNotFound
	}

	if err := s.accessService.RequireProjectTeamAccess(project, caller.ID); err != nil {
		return nil, err
	}

	return project, nil
}

func (s *ProjectService) ListProjects(
	caller *users_models.Caller,
	teamIDs []uuid.UUID,
) (*projects_dto.ListProjectsResponseDTO, error) {
	if len(teamIDs) > 0 {
		for _, teamID := range teamIDs {
			if _, err := s.accessService.RequireTeamMember(teamID, caller.ID); err != nil {
				return nil, err
			}
		}

		projects, err := s.projectRepository.GetProjectsByTeamIDs(teamIDs)
		if err != nil {
			return nil, err
		}

		return &projects_dto.ListProjectsResponseDTO{Projects: projects}, nil
	}

	memberTeamIDs, err := s.memberRepository.GetTeamIDsByUser(caller.ID)
	if err != nil {
		return nil, err
	}

	projects, err := s.projectRepository.GetProjectsVisibleToUser(memberTeamIDs, caller.ID)
	if err != nil {
		return nil, err
	}

	return &projects_dto.ListProjectsResponseDTO{Projects: projects}, nil
}

func (s *ProjectService) UpdateProject(
	caller *users_models.Caller,
	projectID uuid.UUID,
	request *projects_dto.UpdateProjectRequestDTO,
) (*projects_models.Project, error) {
	if _, err := s.accessService.RequireProjectAccess(projectID, caller.ID); err != nil {
		return nil, err
	}

	updates := map[string]any{"updated_at": time.Now().UTC()}
	if request.Name != nil {
		updates["name"] = *request.Name
	}
	if request.Description != nil {
		updates["description"] = *request.Description
	}
	if request.Status != nil {
		updates["status"] = *request.Status
	}

	if err := s.projectRepository.UpdateProject(projectID, updates); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	s.projectCacheUtil.Invalidate(projectID.String())

	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, err
	}

	if s.auditLogWriter != nil && project != nil {
		s.auditLogWriter.WriteAuditLog(
			fmt.Sprintf("Project updated: %s", project.Name),
			&caller.ID,
			project.TeamID,
		)
	}

	return project, nil
}

func (s *ProjectService) DeleteProject(
	caller *users_models.Caller,
	projectID uuid.UUID,
) error {
	project, err := s.accessService.RequireProjectAccess(projectID, caller.ID)
	if err != nil {
		return err
	}

	if err := s.projectRepository.DeleteProject(projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	s.projectCacheUtil.Invalidate(projectID.String())

	if s.auditLogWriter != nil {
		s.auditLogWriter.WriteAuditLog(
			fmt.Sprintf("Project deleted: %s", project.Name),
			&caller.ID,
			project.TeamID,
		)
	}

	return nil
}

// GetProjectWithCache serves the hot gating path for tasks and
// messages. Misses go through singleflight and missing projects are
// cached negatively so repeated lookups stay off the database.
func (s *ProjectService) GetProjectWithCache(projectID uuid.UUID) (*projects_models.Project, error) {
	projectIDStr := projectID.String()

	if cachedProject := s.projectCacheUtil.Get(projectIDStr); cachedProject != nil {
		if cachedProject.IsNotExists {
			return nil, nil
		}

		return cachedProject, nil
	}

	result, err, _ := s.singleflight.Do(projectIDStr, func() (any, error) {
		return s.projectRepository.GetProjectByID(projectID)
	})
	if err != nil {
		return nil, err
	}

	project, ok := result.(*projects_models.Project)
	if !ok {
		return nil, fmt.Errorf("failed to cast result to Project")
	}

	if project == nil {
		s.projectCacheUtil.Set(projectIDStr, &projects_models.Project{
			ID:          projectID,
			IsNotExists: true,
		})
		return nil, nil
	}

	s.projectCacheUtil.Set(projectIDStr, project)

	return project, nil
}
