package access

import (
	projects_models "teamhub/internal/features/projects/models"
	projects_repositories "teamhub/internal/features/projects/repositories"
	teams_models "teamhub/internal/features/teams/models"
	teams_repositories "teamhub/internal/features/teams/repositories"
	users_enums "teamhub/internal/features/users/enums"

	"github.com/google/uuid"
)

// Service resolves whether a caller may touch a team- or
// project-scoped resource. It reads repositories directly so every
// feature service shares one set of gate semantics.
type Service struct {
	teamRepository    *teams_repositories.TeamRepository
	memberRepository  *teams_repositories.MemberRepository
	projectRepository *projects_repositories.ProjectRepository
}

// RequireTeamMember returns the caller's membership in the team.
// A missing team is ErrNotFound; an existing team without the caller
// is ErrAccessDenied.
func (s *Service) RequireTeamMember(teamID, userID uuid.UUID) (*teams_models.TeamMember, error) {
	team, err := s.teamRepository.GetTeamByID(teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, ErrNotFound
	}

	member, err := s.memberRepository.GetMember(teamID, userID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrAccessDenied
	}

	return member, nil
}

// RequireTeamRole additionally checks the membership rank against
// minimum. Non-membership stays ErrAccessDenied; a member below the
// bar gets ErrInsufficientRole.
func (s *Service) RequireTeamRole(
	teamID, userID uuid.UUID,
	minimum users_enums.TeamRole,
) (*teams_models.TeamMember, error) {
	member, err := s.RequireTeamMember(teamID, userID)
	if err != nil {
		return nil, err
	}

	if !member.Role.AtLeast(minimum) {
		return nil, ErrInsufficientRole
	}

	return member, nil
}

// RequireProjectAccess resolves the project and gates it through its
// owning team. Projects without a team pass on authentication alone.
func (s *Service) RequireProjectAccess(projectID, userID uuid.UUID) (*projects_models.Project, error) {
	project, err := s.projectRepository.GetProjectByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrNotFound
	}

	if err := s.RequireProjectTeamAccess(project, userID); err != nil {
		return nil, err
	}

	return project, nil
}

// RequireProjectTeamAccess gates an already-resolved project, so
// callers holding a cached copy skip the extra lookup.
func (s *Service) RequireProjectTeamAccess(project *projects_models.Project, userID uuid.UUID) error {
	if project.TeamID == nil {
		return nil
	}

	member, err := s.memberRepository.GetMember(*project.TeamID, userID)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrAccessDenied
	}

	return nil
}
