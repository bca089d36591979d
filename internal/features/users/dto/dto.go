package users_dto

import (
	"time"

	users_enums "teamhub/internal/features/users/enums"

	"github.com/google/uuid"
)

type SignUpRequestDTO struct {
	Email     string `json:"email"     binding:"required,email"`
	Password  string `json:"password"  binding:"required,min=8"`
	FullName  string `json:"fullName"`
	AvatarURL string `json:"avatarUrl"`
}

type SignInRequestDTO struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignInResponseDTO struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	Token  string    `json:"token"`
}

type UserProfileResponseDTO struct {
	ID        uuid.UUID            `json:"id"`
	Email     string               `json:"email"`
	FullName  string               `json:"fullName"`
	AvatarURL string               `json:"avatarUrl"`
	Bio       string               `json:"bio"`
	TeamID    *uuid.UUID           `json:"teamId"`
	Role      users_enums.TeamRole `json:"role"`
	CreatedAt time.Time            `json:"createdAt"`
}

type UpdateProfileRequestDTO struct {
	FullName  *string `json:"fullName"`
	AvatarURL *string `json:"avatarUrl"`
	Bio       *string `json:"bio"`
}

type ChangePasswordRequestDTO struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword"     binding:"required,min=8"`
}

type UpdatePreferencesRequestDTO struct {
	EmailNotifications *bool   `json:"emailNotifications"`
	PushNotifications  *bool   `json:"pushNotifications"`
	TaskReminders      *bool   `json:"taskReminders"`
	TeamUpdates        *bool   `json:"teamUpdates"`
	Theme              *string `json:"theme"`
	Language           *string `json:"language"`
	Timezone           *string `json:"timezone"`
}
