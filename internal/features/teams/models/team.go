package teams_models

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultSubscriptionTier = "free"
	DefaultMaxMembers       = 5
)

type Team struct {
	ID               uuid.UUID `json:"id"               gorm:"column:id;primaryKey"`
	Name             string    `json:"name"             gorm:"column:name"`
	Description      string    `json:"description"      gorm:"column:description"`
	AvatarURL        string    `json:"avatarUrl"        gorm:"column:avatar_url"`
	SubscriptionTier string    `json:"subscriptionTier" gorm:"column:subscription_tier"`
	MaxMembers       int       `json:"maxMembers"       gorm:"column:max_members"`
	CreatedBy        uuid.UUID `json:"createdBy"        gorm:"column:created_by"`
	CreatedAt        time.Time `json:"createdAt"        gorm:"column:created_at"`
	UpdatedAt        time.Time `json:"updatedAt"        gorm:"column:updated_at"`
}

func (Team) TableName() string {
	return "teams"
}
