package projects_dto

import (
	projects_models "teamhub/internal/features/projects/models"

	"github.com/google/uuid"
)

type CreateProjectRequestDTO struct {
	Name        string     `json:"name"        binding:"required,min=1,max=100"`
	Description string     `json:"description" binding:"max=500"`
	Status      string     `json:"status"      binding:"omitempty,oneof=active on_hold completed archived"`
	TeamID      *uuid.UUID `json:"teamId"`
}

type UpdateProjectRequestDTO struct {
	Name        *string `json:"name"        binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Status      *string `json:"status"      binding:"omitempty,oneof=active on_hold completed archived"`
}

type ListProjectsResponseDTO struct {
	Projects []*projects_models.Project `json:"projects"`
}
