package teams_repositories

import (
	"errors"

	teams_dto "teamhub/internal/features/teams/dto"
	teams_models "teamhub/internal/features/teams/models"
	"teamhub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamRepository struct{}

func (r *TeamRepository) CreateTeam(team *teams_models.Team) error {
	if team.ID == uuid.Nil {
		team.ID = uuid.New()
	}

	return storage.GetDb().Create(team).Error
}

func (r *TeamRepository) GetTeamByID(teamID uuid.UUID) (*teams_models.Team, error) {
	var team teams_models.Team

	err := storage.GetDb().Where("id = ?", teamID).First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &team, nil
}

func (r *TeamRepository) UpdateTeam(teamID uuid.UUID, updates map[string]any) error {
	return storage.GetDb().
		Model(&teams_models.Team{}).
		Where("id = ?", teamID).
		Updates(updates).Error
}

func (r *TeamRepository) GetTeamsByUserID(userID uuid.UUID) ([]*teams_dto.TeamWithRoleDTO, error) {
	var teams = make([]*teams_dto.TeamWithRoleDTO, 0)

	sql := `
		SELECT
			t.id,
			t.name,
			t.description,
			t.avatar_url,
			tm.role,
			t.created_at
		FROM teams t
		INNER JOIN team_members tm ON tm.team_id = t.id
		WHERE tm.user_id = ?
		ORDER BY t.created_at DESC`

	err := storage.GetDb().Raw(sql, userID).Scan(&teams).Error

	return teams, err
}
