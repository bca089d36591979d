package users_repositories

import (
	users_models "teamhub/internal/features/users/models"
	"teamhub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PreferenceRepository struct{}

func (r *PreferenceRepository) GetByUserID(userID uuid.UUID) (*users_models.UserPreference, error) {
	var preference users_models.UserPreference

	if err := storage.GetDb().Where("user_id = ?", userID).First(&preference).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &preference, nil
}

func (r *PreferenceRepository) Upsert(preference *users_models.UserPreference) error {
	return storage.GetDb().Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email_notifications",
			"push_notifications",
			"task_reminders",
			"team_updates",
			"theme",
			"language",
			"timezone",
			"updated_at",
		}),
	}).Create(preference).Error
}
