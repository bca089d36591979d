package users_models

import (
	"time"

	users_enums "teamhub/internal/features/users/enums"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"fullName"  gorm:"column:full_name"`
	AvatarURL      string    `json:"avatarUrl" gorm:"column:avatar_url"`
	Bio            string    `json:"bio"`
	HashedPassword *string   `json:"-"         gorm:"column:hashed_password"`

	// Denormalized team assignment, kept in sync by team creation,
	// invitation accept and member removal.
	TeamID *uuid.UUID          `json:"teamId" gorm:"column:team_id"`
	Role   users_enums.TeamRole `json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) HasPassword() bool {
	return u.HashedPassword != nil && *u.HashedPassword != ""
}
