package messages_dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMessageRequestDTO struct {
	ProjectID   uuid.UUID `json:"projectId"   binding:"required"`
	Content     string    `json:"content"     binding:"max=4000"`
	MessageType string    `json:"messageType" binding:"omitempty,oneof=text file"`
	FileURL     string    `json:"fileUrl"`
	FileName    string    `json:"fileName"`
}

type MessageWithAuthorDTO struct {
	ID              uuid.UUID `json:"id"              gorm:"column:id"`
	ProjectID       uuid.UUID `json:"projectId"       gorm:"column:project_id"`
	UserID          uuid.UUID `json:"userId"          gorm:"column:user_id"`
	Content         string    `json:"content"         gorm:"column:content"`
	MessageType     string    `json:"messageType"     gorm:"column:message_type"`
	FileURL         string    `json:"fileUrl"         gorm:"column:file_url"`
	FileName        string    `json:"fileName"        gorm:"column:file_name"`
	CreatedAt       time.Time `json:"createdAt"       gorm:"column:created_at"`
	AuthorName      string    `json:"authorName"      gorm:"column:author_name"`
	AuthorAvatarURL string    `json:"authorAvatarUrl" gorm:"column:author_avatar_url"`
}

type ListMessagesResponseDTO struct {
	Messages []*MessageWithAuthorDTO `json:"messages"`
}
