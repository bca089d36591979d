package messages_services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"teamhub/internal/features/access"
	messages_dto "teamhub/internal/features/messages/dto"
	messages_models "teamhub/internal/features/messages/models"
	messages_repositories "teamhub/internal/features/messages/repositories"
	projects_services "teamhub/internal/features/projects/services"
	users_models "teamhub/internal/features/users/models"
	rate_limit "teamhub/internal/util/rate_limit"

	"github.com/google/uuid"
)

// Per-project posting throttle. Burst soaks short spikes, the rps
// limit holds the sustained rate down.
const (
	messagesPerSecondLimit = 20
	messagesBurstLimit     = 100
)

var ErrRateLimited = errors.New("message rate limit exceeded for this project")

type MessageService struct {
	messageRepository *messages_repositories.MessageRepository
	projectService    *projects_services.ProjectService
	accessService     *access.Service
	rateLimiter       *rate_limit.RateLimiter
	logger            *slog.Logger
}

func (s *MessageService) ListMessages(
	caller *users_models.Caller,
	projectID uuid.UUID,
) (*messages_dto.ListMessagesResponseDTO, error) {
	if err := s.requireProject(caller, projectID); err != nil {
		return nil, err
	}

	messages, err := s.messageRepository.GetMessagesByProject(projectID)
	if err != nil {
		return nil, err
	}

	return &messages_dto.ListMessagesResponseDTO{Messages: messages}, nil
}

func (s *MessageService) CreateMessage(
	caller *users_models.Caller,
	request *messages_dto.CreateMessageRequestDTO,
) (*messages_models.Message, error) {
	if err := s.requireProject(caller, request.ProjectID); err != nil {
		return nil, err
	}

	messageType := request.MessageType
	if messageType == "" {
		messageType = messages_models.MessageTypeText
	}

	if messageType == messages_models.MessageTypeText && request.Content == "" {
		return nil, errors.New("message content is required")
	}
	if messageType == messages_models.MessageTypeFile && request.FileURL == "" {
		return nil, errors.New("file URL is required for file messages")
	}

	result, err := s.rateLimiter.CheckRateLimit(
		request.ProjectID, messagesPerSecondLimit, messagesBurstLimit)
	if err != nil {
		// Rate limiter unavailability must not block messaging
		s.logger.Error("rate limit check failed", "error", err, "projectId", request.ProjectID)
	} else if !result.Allowed {
		return nil, ErrRateLimited
	}

	message := &messages_models.Message{
		ID:          uuid.New(),
		ProjectID:   request.ProjectID,
		UserID:      caller.ID,
		Content:     request.Content,
		MessageType: messageType,
		FileURL:     request.FileURL,
		FileName:    request.FileName,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.messageRepository.CreateMessage(message); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return message, nil
}

func (s *MessageService) requireProject(caller *users_models.Caller, projectID uuid.UUID) error {
	project, err := s.projectService.GetProjectWithCache(projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return access.ErrNotFound
	}

	return s.accessService.RequireProjectTeamAccess(project, caller.ID)
}
