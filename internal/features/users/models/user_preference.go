package users_models

import (
	"time"

	"github.com/google/uuid"
)

type UserPreference struct {
	ID                 uuid.UUID `json:"id"`
	UserID             uuid.UUID `json:"userId"             gorm:"column:user_id"`
	EmailNotifications bool      `json:"emailNotifications" gorm:"column:email_notifications"`
	PushNotifications  bool      `json:"pushNotifications"  gorm:"column:push_notifications"`
	TaskReminders      bool      `json:"taskReminders"      gorm:"column:task_reminders"`
	TeamUpdates        bool      `json:"teamUpdates"        gorm:"column:team_updates"`
	Theme              string    `json:"theme"`
	Language           string    `json:"language"`
	Timezone           string    `json:"timezone"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func (UserPreference) TableName() string {
	return "user_preferences"
}

func DefaultPreferences(userID uuid.UUID) *UserPreference {
	now := time.Now().UTC()

	return &UserPreference{
		ID:                 uuid.New(),
		UserID:             userID,
		EmailNotifications: true,
		PushNotifications:  true,
		TaskReminders:      true,
		TeamUpdates:        true,
		Theme:              "dark",
		Language:           "en",
		Timezone:           "UTC",
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
