package teams_models

import (
	"time"

	users_enums "teamhub/internal/features/users/enums"

	"github.com/google/uuid"
)

// TeamMember rows are unique per (team_id, user_id); the index is the
// backstop for concurrent joins, application checks run first.
type TeamMember struct {
	ID       uuid.UUID            `json:"id"       gorm:"column:id;primaryKey"`
	TeamID   uuid.UUID            `json:"teamId"   gorm:"column:team_id"`
	UserID   uuid.UUID            `json:"userId"   gorm:"column:user_id"`
	Role     users_enums.TeamRole `json:"role"     gorm:"column:role"`
	JoinedAt time.Time            `json:"joinedAt" gorm:"column:joined_at"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
