package messages_services

import (
	"teamhub/internal/features/access"
	messages_repositories "teamhub/internal/features/messages/repositories"
	projects_services "teamhub/internal/features/projects/services"
	"teamhub/internal/util/logger"
	rate_limit "teamhub/internal/util/rate_limit"
)

var messageRepository = &messages_repositories.MessageRepository{}

var messageService = &MessageService{
	messageRepository: messageRepository,
	projectService:    projects_services.GetProjectService(),
	accessService:     access.GetAccessService(),
	rateLimiter:       rate_limit.NewRateLimiter(),
	logger:            logger.GetLogger(),
}

func GetMessageService() *MessageService {
	return messageService
}
