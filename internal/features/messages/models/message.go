package messages_models

import (
	"time"

	"github.com/google/uuid"
)

const (
	MessageTypeText = "text"
	MessageTypeFile = "file"
)

type Message struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id;primaryKey"`
	ProjectID   uuid.UUID `json:"projectId"   gorm:"column:project_id"`
	UserID      uuid.UUID `json:"userId"      gorm:"column:user_id"`
	Content     string    `json:"content"     gorm:"column:content"`
	MessageType string    `json:"messageType" gorm:"column:message_type"`
	FileURL     string    `json:"fileUrl"     gorm:"column:file_url"`
	FileName    string    `json:"fileName"    gorm:"column:file_name"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"column:created_at"`
}

func (Message) TableName() string {
	return "messages"
}
