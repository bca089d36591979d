package teams_services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"teamhub/internal/features/access"
	teams_dto "teamhub/internal/features/teams/dto"
	teams_enums "teamhub/internal/features/teams/enums"
	teams_models "teamhub/internal/features/teams/models"
	teams_repositories "teamhub/internal/features/teams/repositories"
	users_enums "teamhub/internal/features/users/enums"
	users_interfaces "teamhub/internal/features/users/interfaces"
	users_models "teamhub/internal/features/users/models"
	users_repositories "teamhub/internal/features/users/repositories"
	"teamhub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvitationService struct {
	invitationRepository *teams_repositories.InvitationRepository
	memberRepository     *teams_repositories.MemberRepository
	teamRepository       *teams_repositories.TeamRepository
	userRepository       *users_repositories.UserRepository
	accessService        *access.Service
	auditLogWriter       users_interfaces.AuditLogWriter
	logger               *slog.Logger
}

func (s *InvitationService) SetAuditLogWriter(writer users_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

// InviteMember creates a pending invitation. Duplicate membership,
// an outstanding pending invitation and a full team are all conflicts.
func (s *InvitationService) InviteMember(
	caller *users_models.Caller,
	teamID uuid.UUID,
	request *teams_dto.InviteMemberRequestDTO,
) (*teams_models.TeamInvitation, error) {
	if !request.Role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", request.Role)
	}

	callerMember, err := s.accessService.RequireTeamRole(teamID, caller.ID, users_enums.TeamRoleAdmin)
	if err != nil {
		return nil, err
	}

	if request.Role == users_enums.TeamRoleOwner && callerMember.Role != users_enums.TeamRoleOwner {
		return nil, access.ErrInsufficientRole
	}

	team, err := s.teamRepository.GetTeamByID(teamID)
	if err != nil {
		return nil, err
	}

	memberCount, err := s.memberRepository.CountMembers(teamID)
	if err != nil {
		return nil, err
	}
	if memberCount >= int64(team.MaxMembers) {
		return nil, fmt.Errorf("%w: team has reached its member limit", access.ErrConflict)
	}

	email := strings.ToLower(strings.TrimSpace(request.Email))

	existingUser, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		member, err := s.memberRepository.GetMember(teamID, existingUser.ID)
		if err != nil {
			return nil, err
		}
		if member != nil {
			return nil, fmt.Errorf("%w: user is already a member of this team", access.ErrConflict)
		}
	}

	pending, err := s.invitationRepository.GetPendingByTeamAndEmail(teamID, email)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, fmt.Errorf("%w: a pending invitation for this email already exists", access.ErrConflict)
	}

	now := time.Now().UTC()
	invitation := &teams_models.TeamInvitation{
		ID:        uuid.New(),
		TeamID:    teamID,
		Email:     email,
		Role:      request.Role,
		Status:    teams_enums.InvitationStatusPending,
		InvitedBy: caller.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(teams_models.InvitationLifetime),
	}

	if err := s.invitationRepository.CreateInvitation(invitation); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	if s.auditLogWriter != nil {
		s.auditLogWriter.WriteAuditLog(
			fmt.Sprintf("Invitation sent to %s as %s", email, request.Role),
			&caller.ID,
			&teamID,
		)
	}

	return invitation, nil
}

// ListMyInvitations returns pending, non-expired invitations addressed
// to the caller's email.
func (s *InvitationService) ListMyInvitations(
	caller *users_models.Caller,
) (*teams_dto.ListInvitationsResponseDTO, error) {
	invitations, err := s.invitationRepository.GetPendingByEmail(caller.Email, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	return &teams_dto.ListInvitationsResponseDTO{Invitations: invitations}, nil
}

// AcceptInvitation turns a pending invitation into a membership. The
// pending->accepted flip is a conditional UPDATE and the membership
// insert only happens when that flip actually changed the row, so a
// concurrent double-accept ends with exactly one membership.
func (s *InvitationService) AcceptInvitation(
	caller *users_models.Caller,
	invitationID uuid.UUID,
) (*teams_models.TeamMember, error) {
	invitation, err := s.resolveOwnInvitation(caller, invitationID)
	if err != nil {
		return nil, err
	}

	member := &teams_models.TeamMember{
		ID:       uuid.New(),
		TeamID:   invitation.TeamID,
		UserID:   caller.ID,
		Role:     invitation.Role,
		JoinedAt: time.Now().UTC(),
	}

	err = storage.GetDb().Transaction(func(tx *gorm.DB) error {
		affected, err := s.invitationRepository.UpdateStatusIfPendingTx(
			tx, invitation.ID, teams_enums.InvitationStatusAccepted)
		if err != nil {
			return err
		}
		if affected == 0 {
			return access.ErrInvalidState
		}

		if err := s.memberRepository.CreateMemberTx(tx, member); err != nil {
			if errors.Is(err, teams_repositories.ErrDuplicateMember) {
				return fmt.Errorf("%w: already a member of this team", access.ErrConflict)
			}
			return err
		}

		return s.userRepository.UpdateUserTeamTx(tx, caller.ID, &invitation.TeamID, invitation.Role)
	})
	if err != nil {
		if access.IsAccessError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to accept invitation: %w", err)
	}

	if s.auditLogWriter != nil {
		s.auditLogWriter.WriteAuditLog(
			fmt.Sprintf("Invitation accepted by %s", caller.Email),
			&caller.ID,
			&invitation.TeamID,
		)
	}

	return member, nil
}

// DeclineInvitation resolves a pending invitation without any
// membership side effect.
func (s *InvitationService) DeclineInvitation(
	caller *users_models.Caller,
	invitationID uuid.UUID,
) error {
	invitation, err := s.resolveOwnInvitation(caller, invitationID)
	if err != nil {
		return err
	}

	affected, err := s.invitationRepository.UpdateStatusIfPending(
		invitation.ID, teams_enums.InvitationStatusDeclined)
	if err != nil {
		return fmt.Errorf("failed to decline invitation: %w", err)
	}
	if affected == 0 {
		return access.ErrInvalidState
	}

	if s.auditLogWriter != nil {
		s.auditLogWriter.WriteAuditLog(
			fmt.Sprintf("Invitation declined by %s", caller.Email),
			&caller.ID,
			&invitation.TeamID,
		)
	}

	return nil
}

// resolveOwnInvitation loads the invitation and checks the shared
// accept/decline preconditions: addressee identity, pending state,
// lazy expiry.
func (s *InvitationService) resolveOwnInvitation(
	caller *users_models.Caller,
	invitationID uuid.UUID,
) (*teams_models.TeamInvitation, error) {
	invitation, err := s.invitationRepository.GetInvitationByID(invitationID)
	if err != nil {
		return nil, err
	}
	if invitation == nil {
		return nil, access.ErrNotFound
	}

	if !strings.EqualFold(invitation.Email, caller.Email) {
		return nil, access.ErrAccessDenied
	}

	if invitation.Status != teams_enums.InvitationStatusPending {
		return nil, access.ErrInvalidState
	}

	if invitation.IsExpired(time.Now().UTC()) {
		return nil, access.ErrExpired
	}

	return invitation, nil
}
