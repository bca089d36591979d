package messages_repositories

import (
	messages_dto "teamhub/internal/features/messages/dto"
	messages_models "teamhub/internal/features/messages/models"
	"teamhub/internal/storage"

	"github.com/google/uuid"
)

type MessageRepository struct{}

func (r *MessageRepository) CreateMessage(message *messages_models.Message) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}

	return storage.GetDb().Create(message).Error
}

func (r *MessageRepository) GetMessagesByProject(
	projectID uuid.UUID,
) ([]*messages_dto.MessageWithAuthorDTO, error) {
	var messages = make([]*messages_dto.MessageWithAuthorDTO, 0)

	sql := `
		SELECT
			m.id,
			m.project_id,
			m.user_id,
			m.content,
			m.message_type,
			m.file_url,
			m.file_name,
			m.created_at,
			u.full_name as author_name,
			u.avatar_url as author_avatar_url
		FROM messages m
		LEFT JOIN users u ON u.id = m.user_id
		WHERE m.project_id = ?
		ORDER BY m.created_at ASC`

	err := storage.GetDb().Raw(sql, projectID).Scan(&messages).Error

	return messages, err
}
