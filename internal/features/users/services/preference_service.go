package users_services

import (
	"fmt"
	"time"

	users_dto "teamhub/internal/features/users/dto"
	users_models "teamhub/internal/features/users/models"
	users_repositories "teamhub/internal/features/users/repositories"

	"github.com/google/uuid"
)

type PreferenceService struct {
	preferenceRepository *users_repositories.PreferenceRepository
}

// GetPreferences returns stored preferences, falling back to defaults
// for users who never saved any.
func (s *PreferenceService) GetPreferences(userID uuid.UUID) (*users_models.UserPreference, error) {
	preference, err := s.preferenceRepository.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	if preference == nil {
		return users_models.DefaultPreferences(userID), nil
	}

	return preference, nil
}

func (s *PreferenceService) UpdatePreferences(
	userID uuid.UUID,
	request *users_dto.UpdatePreferencesRequestDTO,
) (*users_models.UserPreference, error) {
	preference, err := s.GetPreferences(userID)
	if err != nil {
		return nil, err
	}

	if request.EmailNotifications != nil {
		preference.EmailNotifications = *request.EmailNotifications
	}
	if request.PushNotifications != nil {
		preference.PushNotifications = *request.PushNotifications
	}
	if request.TaskReminders != nil {
		preference.TaskReminders = *request.TaskReminders
	}
	if request.TeamUpdates != nil {
		preference.TeamUpdates = *request.TeamUpdates
	}
	if request.Theme != nil {
		preference.Theme = *request.Theme
	}
	if request.Language != nil {
		preference.Language = *request.Language
	}
	if request.Timezone != nil {
		preference.Timezone = *request.Timezone
	}

	preference.UpdatedAt = time.Now().UTC()

	if err := s.preferenceRepository.Upsert(preference); err != nil {
		return nil, fmt.Errorf("failed to update preferences: %w", err)
	}

	return preference, nil
}
