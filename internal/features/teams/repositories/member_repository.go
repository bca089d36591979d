package teams_repositories

import (
	"errors"

	teams_dto "teamhub/internal/features/teams/dto"
	teams_models "teamhub/internal/features/teams/models"
	users_enums "teamhub/internal/features/users/enums"
	"teamhub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrDuplicateMember surfaces the (team_id, user_id) unique index.
var ErrDuplicateMember = errors.New("user is already a member of this team")

type MemberRepository struct{}

func (r *MemberRepository) CreateMember(member *teams_models.TeamMember) error {
	return r.CreateMemberTx(storage.GetDb(), member)
}

func (r *MemberRepository) CreateMemberTx(tx *gorm.DB, member *teams_models.TeamMember) error {
	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}

	err := tx.Create(member).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateMember
	}

	return err
}

func (r *MemberRepository) GetMember(teamID, userID uuid.UUID) (*teams_models.TeamMember, error) {
	var member teams_models.TeamMember

	err := storage.GetDb().
		Where("team_id = ? AND user_id = ?", teamID, userID).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &member, nil
}

func (r *MemberRepository) GetMembersWithUsers(teamID uuid.UUID) ([]*teams_dto.MemberWithUserDTO, error) {
	var members = make([]*teams_dto.MemberWithUserDTO, 0)

	sql := `
		SELECT
			tm.id,
			tm.team_id,
			tm.user_id,
			tm.role,
			tm.joined_at,
			u.email,
			u.full_name,
			u.avatar_url
		FROM team_members tm
		INNER JOIN users u ON u.id = tm.user_id
		WHERE tm.team_id = ?
		ORDER BY tm.joined_at ASC`

	err := storage.GetDb().Raw(sql, teamID).Scan(&members).Error

	return members, err
}

func (r *MemberRepository) GetTeamIDsByUser(userID uuid.UUID) ([]uuid.UUID, error) {
	var teamIDs = make([]uuid.UUID, 0)

	err := storage.GetDb().
		Model(&teams_models.TeamMember{}).
		Where("user_id = ?", userID).
		Pluck("team_id", &teamIDs).Error

	return teamIDs, err
}

func (r *MemberRepository) UpdateMemberRole(teamID, userID uuid.UUID, role users_enums.TeamRole) error {
	return storage.GetDb().
		Model(&teams_models.TeamMember{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Update("role", role).Error
}

func (r *MemberRepository) DeleteMember(teamID, userID uuid.UUID) error {
	return storage.GetDb().
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&teams_models.TeamMember{}).Error
}

func (r *MemberRepository) CountMembers(teamID uuid.UUID) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&teams_models.TeamMember{}).
		Where("team_id = ?", teamID).
		Count(&count).Error

	return count, err
}

func (r *MemberRepository) CountOwners(teamID uuid.UUID) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&teams_models.TeamMember{}).
		Where("team_id = ? AND role = ?", teamID, users_enums.TeamRoleOwner).
		Count(&count).Error

	return count, err
}
