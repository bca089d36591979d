package teams_services

import (
	"fmt"
	"log/slog"

	"teamhub/internal/features/access"
	teams_dto "teamhub/internal/features/teams/dto"
	teams_repositories "teamhub/internal/features/teams/repositories"
	users_enums "teamhub/internal/features/users/enums"
	users_interfaces "teamhub/internal/features/users/interfaces"
	users_models "teamhub/internal/features/users/models"
	users_repositories "teamhub/internal/features/users/repositories"

	"github.com/google/uuid"
)

type MembershipService struct {
	memberRepository *teams_repositories.MemberRepository
	userRepository   *users_repositories.UserRepository
	accessService    *access.Service
	auditLogWriter   users_interfaces.AuditLogWriter
	logger           *slog.Logger
}

func (s *MembershipService) SetAuditLogWriter(writer users_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

func (s *MembershipService) ListMembers(
	caller *users_models.Caller,
	teamID uuid.UUID,
) (*teams_dto.ListMembersResponseDTO, error) {
	if _, err := s.accessService.RequireTeamMember(teamID, caller.ID); err != nil {
		return nil, err
	}

	members, err := s.memberRepository.GetMembersWithUsers(teamID)
	if err != nil {
		return nil, err
	}

	return &teams_dto.ListMembersResponseDTO{Members: members}, nil
}

// ChangeMemberRole moves a member to a new role. Transitions touching
// the owner role in either direction need an owner caller, and the team
// can never be left without an owner.
func (s *MembershipService) ChangeMemberRole(
	caller *users_models.Caller,
	teamID, targetUserID uuid.UUID,
	newRole users_enums.TeamRole,
) error {
	if !newRole.IsValid() {
		return fmt.Errorf("invalid role: %s", newRole)
	}

	callerMember, err := s.accessService.RequireTeamRole(teamID, caller.ID, users_enums.TeamRoleAdmin)
	if err != nil {
		return err
	}

	if targetUserID == caller.ID {
		return fmt.Errorf("%w: cannot change your own role", access.ErrConflict)
	}

	target, err := s.memberRepository.GetMember(teamID, targetUserID)
	if err != nil {
		return err
	}
	if target == nil {
		return access.ErrNotFound
	}

	touchesOwner := target.Role == users_enums.TeamRoleOwner || newRole == users_enums.TeamRoleOwner
	if touchesOwner && callerMember.Role != users_enums.TeamRoleOwner {
		return access.ErrInsufficientRole
	}

	if target.Role == users_enums.TeamRoleOwner && newRole != users_enums.TeamRoleOwner {
		owners, err := s.memberRepository.CountOwners(teamID)
		if err != nil {
			return err
		}
		if owners <= 1 {
			return fmt.Errorf("%w: team must keep at least one owner", access.ErrConflict)
		}
	}

	if err := s.memberRepository.UpdateMemberRole(teamID, targetUserID, newRole); err != nil {
		return fmt.Errorf("failed to change member role: %w", err)
	}

	if err := s.syncUserRole(teamID, targetUserID, newRole); err != nil {
		s.logger.Error("failed to sync user profile role", "error", err, "userId", targetUserID)
	}

	if s.auditLogWriter != nil {
		s.auditLogWriter.WriteAuditLog(
			fmt.Sprintf("Member role changed to %s", newRole),
			&caller.ID,
			&teamID,
		)
	}

	return nil
}

// RemoveMember removes a non-owner member. Owners are never removable,
// which also covers the sole-owner case.
func (s *MembershipService) RemoveMember(
	caller *users_models.Caller,
	teamID, targetUserID uuid.UUID,
) error {
	if _, err := s.accessService.RequireTeamRole(teamID, caller.ID, users_enums.TeamRoleAdmin); err != nil {
		return err
	}

	target, err := s.memberRepository.GetMember(teamID, targetUserID)
	if err != nil {
		return err
	}
	if target == nil {
		return access.ErrNotFound
	}

	if target.Role == users_enums.TeamRoleOwner {
		return fmt.Errorf("%w: team owners cannot be removed", access.ErrConflict)
	}

	if err := s.memberRepository.DeleteMember(teamID, targetUserID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	user, err := s.userRepository.GetUserByID(targetUserID)
	if err == nil && user != nil && user.TeamID != nil && *user.TeamID == teamID {
		if err := s.userRepository.ClearUserTeam(targetUserID); err != nil {
			s.logger.Error("failed to clear user team assignment", "error", err, "userId", targetUserID)
		}
	}

	if s.auditLogWriter != nil {
		s.auditLogWriter.WriteAuditLog(
			"Member removed from team",
			&caller.ID,
			&teamID,
		)
	}

	return nil
}

func (s *MembershipService) syncUserRole(
	teamID, userID uuid.UUID,
	role users_enums.TeamRole,
) error {
	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return err
	}
	if user == nil || user.TeamID == nil || *user.TeamID != teamID {
		return nil
	}

	return s.userRepository.UpdateUserTeam(userID, user.TeamID, role)
}
