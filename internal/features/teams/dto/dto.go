package teams_dto

import (
	"time"

	teams_enums "teamhub/internal/features/teams/enums"
	teams_models "teamhub/internal/features/teams/models"
	users_enums "teamhub/internal/features/users/enums"

	"github.com/google/uuid"
)

type CreateTeamRequestDTO struct {
	Name        string `json:"name"        binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=500"`
	AvatarURL   string `json:"avatarUrl"`
}

type UpdateTeamRequestDTO struct {
	Name        *string `json:"name"        binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	AvatarURL   *string `json:"avatarUrl"`
}

type TeamWithRoleDTO struct {
	ID          uuid.UUID            `json:"id"          gorm:"column:id"`
	Name        string               `json:"name"        gorm:"column:name"`
	Description string               `json:"description" gorm:"column:description"`
	AvatarURL   string               `json:"avatarUrl"   gorm:"column:avatar_url"`
	Role        users_enums.TeamRole `json:"role"        gorm:"column:role"`
	CreatedAt   time.Time            `json:"createdAt"   gorm:"column:created_at"`
}

type ListTeamsResponseDTO struct {
	Teams []*TeamWithRoleDTO `json:"teams"`
}

type MemberWithUserDTO struct {
	ID        uuid.UUID            `json:"id"        gorm:"column:id"`
	TeamID    uuid.UUID            `json:"teamId"    gorm:"column:team_id"`
	UserID    uuid.UUID            `json:"userId"    gorm:"column:user_id"`
	Role      users_enums.TeamRole `json:"role"      gorm:"column:role"`
	JoinedAt  time.Time            `json:"joinedAt"  gorm:"column:joined_at"`
	Email     string               `json:"email"     gorm:"column:email"`
	FullName  string               `json:"fullName"  gorm:"column:full_name"`
	AvatarURL string               `json:"avatarUrl" gorm:"column:avatar_url"`
}

type GetMyTeamResponseDTO struct {
	Team    *teams_models.Team   `json:"team"`
	Members []*MemberWithUserDTO `json:"members"`
}

type ListMembersResponseDTO struct {
	Members []*MemberWithUserDTO `json:"members"`
}

type ChangeMemberRoleRequestDTO struct {
	Role users_enums.TeamRole `json:"role" binding:"required"`
}

type InviteMemberRequestDTO struct {
	Email string               `json:"email" binding:"required,email"`
	Role  users_enums.TeamRole `json:"role"  binding:"required"`
}

type InvitationWithTeamDTO struct {
	ID            uuid.UUID                    `json:"id"            gorm:"column:id"`
	TeamID        uuid.UUID                    `json:"teamId"        gorm:"column:team_id"`
	Email         string                       `json:"email"         gorm:"column:email"`
	Role          users_enums.TeamRole         `json:"role"          gorm:"column:role"`
	Status        teams_enums.InvitationStatus `json:"status"        gorm:"column:status"`
	CreatedAt     time.Time                    `json:"createdAt"     gorm:"column:created_at"`
	ExpiresAt     time.Time                    `json:"expiresAt"     gorm:"column:expires_at"`
	TeamName      string                       `json:"teamName"      gorm:"column:team_name"`
	TeamAvatarURL string                       `json:"teamAvatarUrl" gorm:"column:team_avatar_url"`
	InviterName   string                       `json:"inviterName"   gorm:"column:inviter_name"`
}

type ListInvitationsResponseDTO struct {
	Invitations []*InvitationWithTeamDTO `json:"invitations"`
}
