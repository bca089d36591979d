package teams_models

import (
	"time"

	teams_enums "teamhub/internal/features/teams/enums"
	users_enums "teamhub/internal/features/users/enums"

	"github.com/google/uuid"
)

const InvitationLifetime = 7 * 24 * time.Hour

type TeamInvitation struct {
	ID        uuid.UUID                    `json:"id"        gorm:"column:id;primaryKey"`
	TeamID    uuid.UUID                    `json:"teamId"    gorm:"column:team_id"`
	Email     string                       `json:"email"     gorm:"column:email"`
	Role      users_enums.TeamRole         `json:"role"      gorm:"column:role"`
	Status    teams_enums.InvitationStatus `json:"status"    gorm:"column:status"`
	InvitedBy uuid.UUID                    `json:"invitedBy" gorm:"column:invited_by"`
	CreatedAt time.Time                    `json:"createdAt" gorm:"column:created_at"`
	ExpiresAt time.Time                    `json:"expiresAt" gorm:"column:expires_at"`
}

func (TeamInvitation) TableName() string {
	return "team_invitations"
}

// IsExpired reports lazy expiry: a pending row past its deadline.
// The stored status stays "pending", no sweeper rewrites it.
func (i *TeamInvitation) IsExpired(now time.Time) bool {
	return i.Status == teams_enums.InvitationStatusPending && now.After(i.ExpiresAt)
}
