package projects_models

import (
	"time"

	"github.com/google/uuid"
)

// Project belongs to at most one team. A nil TeamID means the project
// is not team-gated and any authenticated user may touch it.
type Project struct {
	ID          uuid.UUID  `json:"id"          gorm:"column:id;primaryKey"`
	Name        string     `json:"name"        gorm:"column:name"`
	Description string     `json:"description" gorm:"column:description"`
	Status      string     `json:"status"      gorm:"column:status"`
	TeamID      *uuid.UUID `json:"teamId"      gorm:"column:team_id"`
	CreatedBy   uuid.UUID  `json:"createdBy"   gorm:"column:created_by"`
	CreatedAt   time.Time  `json:"createdAt"   gorm:"column:created_at"`
	UpdatedAt   time.Time  `json:"updatedAt"   gorm:"column:updated_at"`

	IsNotExists bool `json:"isNotExists,omitempty" gorm:"-"` // Used for caching non-existent projects
}

func (Project) TableName() string {
	return "projects"
}
