package tasks_models

import (
	"time"

	"github.com/google/uuid"
)

const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"

	DefaultTaskPriority = "medium"
)

type Task struct {
	ID          uuid.UUID  `json:"id"          gorm:"column:id;primaryKey"`
	ProjectID   uuid.UUID  `json:"projectId"   gorm:"column:project_id"`
	Title       string     `json:"title"       gorm:"column:title"`
	Description string     `json:"description" gorm:"column:description"`
	Status      string     `json:"status"      gorm:"column:status"`
	Priority    string     `json:"priority"    gorm:"column:priority"`
	Position    int        `json:"position"    gorm:"column:position"`
	DueDate     *time.Time `json:"dueDate"     gorm:"column:due_date"`
	AssignedTo  *uuid.UUID `json:"assignedTo"  gorm:"column:assigned_to"`
	CreatedBy   uuid.UUID  `json:"createdBy"   gorm:"column:created_by"`
	CreatedAt   time.Time  `json:"createdAt"   gorm:"column:created_at"`
	UpdatedAt   time.Time  `json:"updatedAt"   gorm:"column:updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}
