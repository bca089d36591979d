package teams_services

import (
	"fmt"
	"log/slog"
	"time"

	"teamhub/internal/features/access"
	teams_dto "teamhub/internal/features/teams/dto"
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

type TeamService struct {
	teamRepository   *teams_repositories.TeamRepository
	memberRepository *teams_repositories.MemberRepository
	userRepository   *users_repositories.UserRepository
	accessService    *access.Service
	auditLogWriter   users_interfaces.AuditLogWriter
	logger           *slog.Logger
}

func (s *TeamService) SetAuditLogWriter(writer users_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

// CreateTeam creates the team, the creator's owner membership and the
// profile denormalization in one transaction.
func (s *TeamService) CreateTeam(
	caller *users_models.Caller,
	request *teams_dto.CreateTeamRequestDTO,
) (*teams_models.Team, error) {
	now := time.Now().UTC()

	team := &teams_models.Team{
		ID:               uuid.New(),
		Name:             request.Name,
		Description:      request.Description,
		AvatarURL:        request.AvatarURL,
		SubscriptionTier: teams_models.DefaultSubscriptionTier,
		MaxMembers:       teams_models.DefaultMaxMembers,
		CreatedBy:        caller.ID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	member := &teams_models.TeamMember{
		ID:       uuid.New(),
		TeamID:   team.ID,
		UserID:   caller.ID,
		Role:     users_enums.TeamRoleOwner,
		JoinedAt: now,
	}

	err := storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}

		if err := s.memberRepository.CreateMemberTx(tx, member); err != nil {
			return err
		}

		return s.userRepository.UpdateUserTeamTx(tx, caller.ID, &team.ID, users_enums.TeamRoleOwner)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	if s.auditLogWriter != nil {
		s.auditLogWriter.WriteAuditLog(
			fmt.Sprintf("Team created: %s", team.Name),
			&caller.ID,
			&team.ID,
		)
	}

	return team, nil
}

// GetMyTeam resolves the caller's current team from the profile
// denormalization and returns it with its member list.
func (s *TeamService) GetMyTeam(caller *users_models.Caller) (*teams_dto.GetMyTeamResponseDTO, error) {
	user, err := s.userRepository.GetUserByID(caller.ID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.TeamID == nil {
		return nil, access.ErrNotFound
	}

	team, err := s.teamRepository.GetTeamByID(*user.TeamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, access.ErrNotFound
	}

	members, err := s.memberRepository.GetMembersWithUsers(team.ID)
	if err != nil {
		return nil, err
	}

	return &teams_dto.GetMyTeamResponseDTO{
		Team:    team,
		Members: members,
	}, nil
}

func (s *TeamService) ListTeams(caller *users_models.Caller) (*teams_dto.ListTeamsResponseDTO, error) {
	teams, err := s.teamRepository.GetTeamsByUserID(caller.ID)
	if err != nil {
		return nil, err
	}

	return &teams_dto.ListTeamsResponseDTO{Teams: teams}, nil
}

func (s *TeamService) GetTeam(
	caller *users_models.Caller,
	teamID uuid.UUID,
) (*teams_models.Team, error) {
	if _, err := s.accessService.RequireTeamMember(teamID, caller.ID); err != nil {
		return nil, err
	}

	return s.teamRepository.GetTeamByID(teamID)
}

func (s *TeamService) UpdateTeam(
	caller *users_models.Caller,
	teamID uuid.UUID,
	request *teams_dto.UpdateTeamRequestDTO,
) (*teams_models.Team, error) {
	if _, err := s.accessService.RequireTeamRole(teamID, caller.ID, users_enums.TeamRoleAdmin); err != nil {
		return nil, err
	}

	updates := map[string]any{"updated_at": time.Now().UTC()}
	if request.Name != nil {
		updates["name"] = *request.Name
	}
	if request.Description != nil {
		updates["description"] = *request.Description
	}
	if request.AvatarURL != nil {
		updates["avatar_url"] = *request.AvatarURL
	}

	if err := s.teamRepository.UpdateTeam(teamID, updates); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	team, err := s.teamRepository.GetTeamByID(teamID)
	if err != nil {
		return nil, err
	}

	if s.auditLogWriter != nil {
		s.auditLogWriter.WriteAuditLog(
			fmt.Sprintf("Team updated: %s", team.Name),
			&caller.ID,
			&teamID,
		)
	}

	return team, nil
}
