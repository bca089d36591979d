package teams_repositories

import (
	"errors"
	"strings"
	"time"

	teams_dto "teamhub/internal/features/teams/dto"
	teams_enums "teamhub/internal/features/teams/enums"
	teams_models "teamhub/internal/features/teams/models"
	"teamhub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvitationRepository struct{}

func (r *InvitationRepository) CreateInvitation(invitation *teams_models.TeamInvitation) error {
	if invitation.ID == uuid.Nil {
		invitation.ID = uuid.New()
	}

	return storage.GetDb().Create(invitation).Error
}

func (r *InvitationRepository) GetInvitationByID(invitationID uuid.UUID) (*teams_models.TeamInvitation, error) {
	var invitation teams_models.TeamInvitation

	err := storage.GetDb().Where("id = ?", invitationID).First(&invitation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &invitation, nil
}

func (r *InvitationRepository) GetPendingByTeamAndEmail(
	teamID uuid.UUID,
	email string,
) (*teams_models.TeamInvitation, error) {
	var invitation teams_models.TeamInvitation

	err := storage.GetDb().
		Where("team_id = ? AND LOWER(email) = ? AND status = ?",
			teamID, strings.ToLower(email), teams_enums.InvitationStatusPending).
		First(&invitation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &invitation, nil
}

func (r *InvitationRepository) GetPendingByEmail(
	email string,
	notExpiredAt time.Time,
) ([]*teams_dto.InvitationWithTeamDTO, error) {
	var invitations = make([]*teams_dto.InvitationWithTeamDTO, 0)

	sql := `
		SELECT
			ti.id,
			ti.team_id,
			ti.email,
			ti.role,
			ti.status,
			ti.created_at,
			ti.expires_at,
			t.name as team_name,
			t.avatar_url as team_avatar_url,
			u.full_name as inviter_name
		FROM team_invitations ti
		INNER JOIN teams t ON t.id = ti.team_id
		LEFT JOIN users u ON u.id = ti.invited_by
		WHERE LOWER(ti.email) = ? AND ti.status = ? AND ti.expires_at > ?
		ORDER BY ti.created_at DESC`

	err := storage.GetDb().
		Raw(sql, strings.ToLower(email), teams_enums.InvitationStatusPending, notExpiredAt).
		Scan(&invitations).Error

	return invitations, err
}

// UpdateStatusIfPendingTx performs the pending-only transition as a
// conditional UPDATE. RowsAffected == 0 means another request already
// resolved the invitation.
func (r *InvitationRepository) UpdateStatusIfPendingTx(
	tx *gorm.DB,
	invitationID uuid.UUID,
	status teams_enums.InvitationStatus,
) (int64, error) {
	result := tx.
		Model(&teams_models.TeamInvitation{}).
		Where("id = ? AND status = ?", invitationID, teams_enums.InvitationStatusPending).
		Update("status", status)

	return result.RowsAffected, result.Error
}

func (r *InvitationRepository) UpdateStatusIfPending(
	invitationID uuid.UUID,
	status teams_enums.InvitationStatus,
) (int64, error) {
	return r.UpdateStatusIfPendingTx(storage.GetDb(), invitationID, status)
}
