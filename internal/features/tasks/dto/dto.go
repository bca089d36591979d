package tasks_dto

import (
	tasks_models "teamhub/internal/features/tasks/models"

	"github.com/google/uuid"
)

type CreateTaskRequestDTO struct {
	ProjectID  uuid.UUID  `json:"projectId"  binding:"required"`
	Title      string     `json:"title"      binding:"required,min=1,max=200"`
	Description string    `json:"description" binding:"max=2000"`
	Status     string     `json:"status"     binding:"omitempty,oneof=todo in_progress done"`
	Priority   string     `json:"priority"   binding:"omitempty,oneof=low medium high urgent"`
	Position   int        `json:"position"`
	DueDate    any        `json:"dueDate"`
	AssignedTo *uuid.UUID `json:"assignedTo"`
}

type UpdateTaskRequestDTO struct {
	Title       *string    `json:"title"       binding:"omitempty,min=1,max=200"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	Status      *string    `json:"status"      binding:"omitempty,oneof=todo in_progress done"`
	Priority    *string    `json:"priority"    binding:"omitempty,oneof=low medium high urgent"`
	Position    *int       `json:"position"`
	DueDate     any        `json:"dueDate"`
	AssignedTo  *uuid.UUID `json:"assignedTo"`
}

type ListTasksResponseDTO struct {
	Tasks []*tasks_models.Task `json:"tasks"`
}

type TaskStatusCountDTO struct {
	ProjectID uuid.UUID `json:"projectId" gorm:"column:project_id"`
	Status    string    `json:"status"    gorm:"column:status"`
	Count     int64     `json:"count"     gorm:"column:count"`
}

type TaskCountsResponseDTO struct {
	Counts []*TaskStatusCountDTO `json:"counts"`
}
